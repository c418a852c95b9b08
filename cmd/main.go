package main

import (
	"os"

	"github.com/crmkit/go-crm-timeline/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
