package main

import (
	"fmt"
	"os"
)

var app drawctl

func main() {
	app.loadApp()

	if err := app.cli.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "drawctl:", err)
		os.Exit(1)
	}
}
