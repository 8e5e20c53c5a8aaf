// Command matchcheck evaluates values against matcher
// definitions and prints a verification report.
//
// Usage:
//
//	matchcheck run --file suite.yaml --value body="hello" --value status=200
//	matchcheck check "hello world" contains:hello min_length:5
//
// The exit code is non-zero when any check fails.
package main

import (
	"fmt"
	"os"

	"digital.vasic.matchers/pkg/logging"
)

func main() {
	cmd := newRootCmd(func(verbose bool) (logging.Logger, error) {
		logger, err := logging.NewZapLogger(verbose)
		if err != nil {
			return nil, err
		}
		return logger, nil
	})
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
