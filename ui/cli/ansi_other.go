//go:build !windows

package cli

// EnableANSI is a no-op, terminals outside windows speak ANSI already
func EnableANSI() {}
