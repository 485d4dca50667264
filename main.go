package main

import "github.com/site2c/site2c/cmd"

// main is the entry point of the site2c CLI application.
// It executes the root command which handles argument parsing and subcommand dispatch.
func main() {
	cmd.Execute()
}
