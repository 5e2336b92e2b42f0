package main

import (
	"evilknob/ui"
	"fmt"
)

func main() {
	if err := ui.RunEvilKnob(); err != nil {
		fmt.Println(err)
	}
}
