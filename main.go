package main

import "github.com/commtower/commtower/cmd"

// main is the entry point of the commtower CLI application.
// It executes the root command which handles argument parsing and subcommand dispatch.
func main() {
	cmd.Execute()
}
