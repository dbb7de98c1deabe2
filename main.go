// Package main is the entry point for the pragmacheck CLI.
package main

import "pragmacheck.dev/pkg/pragmacheck/cmd"

func main() {
	cmd.Execute()
}
