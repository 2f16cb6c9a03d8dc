// main is the entry point for the epicycles CLI.
package main

import (
	"github.com/olivier-w/epicycles/cmd"
	"github.com/olivier-w/epicycles/internal"
)

func main() {
	if err := cmd.Execute(); err != nil {
		internal.FatalError("Error", err)
	}
}
