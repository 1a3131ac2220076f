// Command wick evaluates vacuum expectation values of normal-ordered
// second-quantized operators with Wick's theorem.
//
// Usage:
//
//	wick run input.inp
//	wick run doubles.yaml --workers 4 --quiet
//	WICK_LOG_LEVEL=debug wick run input.inp
//	wick count 8
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
