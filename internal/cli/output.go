package cli

import (
	"fmt"
	"os"
)

// PrintError prints an error message to stderr.
func PrintError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

// PrintInfo prints an informational message to stdout.
func PrintInfo(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}
