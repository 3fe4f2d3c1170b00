// Package main provides the modelspec binary entry point.
// Modelspec validates domain model trees: structured YAML documents
// describing entities, behaviors, shared types, enumerations, and
// validation profiles.
package main

import (
	"fmt"
	"os"
	"runtime"
)

const (
	// Version is the binary version.
	Version = "0.1.0"
	// BuildTime is injected at build time.
	BuildTime = "dev"

	appName = "modelspec"
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

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
