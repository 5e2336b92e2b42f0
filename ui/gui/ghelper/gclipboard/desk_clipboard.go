package gclipboard

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
)

func WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// FormatValues renders knob values as "name=value" lines sorted by name
func FormatValues(values map[string]int) string {
	names := make([]string, 0, len(values))
	for n := range values {
		names = append(names, n)
	}
	sort.Strings(names)
	var b strings.Builder
	for _, n := range names {
		fmt.Fprintf(&b, "%s=%d\n", n, values[n])
	}
	return b.String()
}
