// Package main provides the workbench binary entry point.
// Workbench is a design-system toolchain: a component contract registry,
// deterministic install plans, theme token management, and provenance
// auditing for target projects.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/studiokit/workbench/commands"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := commands.NewRoot(Version + " (build: " + BuildTime + ")").Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
