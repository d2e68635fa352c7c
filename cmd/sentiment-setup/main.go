package main

import (
	"os"

	"github.com/bnema/sentiment-setup/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
