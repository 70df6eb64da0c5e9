// Command graphtrace runs graph algorithms with step-by-step traces, from the
// command line or as an HTTP service.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "graphtrace:", err)
		os.Exit(1)
	}
}
