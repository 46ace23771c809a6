package main

import (
	"os"

	"bookdesk/cmd/bookdesk/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
