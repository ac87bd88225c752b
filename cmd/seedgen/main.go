/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Command-line entry point for the Akaylee seed generator.
*/

package main

import (
	"fmt"
	"os"

	"github.com/kleascm/akaylee-seedgen/cmd/seedgen/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
