package main

import (
	"os"

	"revquiz/cmd/revquiz/commands"
)

func main() {
	root := commands.NewRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
