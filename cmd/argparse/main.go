// Package main provides the argparse binary that shell scripts eval to
// define and resolve their command-line arguments.
package main

import argparse "github.com/Hounshell/argparse-sh"

func main() {
	argparse.Run()
}
