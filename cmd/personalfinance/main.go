package main

import (
	"os"

	"github.com/JerBouma/PersonalFinance/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
