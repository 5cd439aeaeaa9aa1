// Command balancedforest solves and generates balanced-forest cases.
//
//	balancedforest solve    [--input FILE] [--output FILE] [--workers N] [--max-cuts N] [--metrics none|stdout]
//	balancedforest generate [--shape path|star|spider|caterpillar|random] [--count N] [--nodes N] ...
//
// Answers go to --output, else $OUTPUT_PATH, else stdout. Logs and metrics
// go to stderr.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
