// Package main provides the csv-adui-converter command.
//
// It turns a CSV form definition (Seq, Field Name, Component, Input columns) into
// an ADUI JSON document, and can check existing documents for broken
// cross-references:
//
//	csv-adui-converter ProjectPlan.csv
//	csv-adui-converter ProjectPlan.csv --format yaml -o plan.yaml
//	csv-adui-converter check ProjectPlan_enhanced.json
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/afero"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	a := &app{fs: afero.NewOsFs(), stdout: os.Stdout, stderr: os.Stderr}

	err := a.rootCmd().Execute()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
