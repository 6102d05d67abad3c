// Package main is the entry point for the memoprof CLI.
package main

import "memoprof.dev/pkg/memoprof/cmd"

func main() {
	cmd.Execute()
}
