//go:build windows

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "termsync is not supported on Windows. It needs a POSIX terminal.")
	os.Exit(1)
}
