// Package main is the entry point for the strata CLI.
package main

import "strata.dev/pkg/strata/cmd"

func main() {
	cmd.Execute()
}
