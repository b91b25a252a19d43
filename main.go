package main

import (
	"os"

	"github.com/wagnert/meta/cmd"
	"github.com/wagnert/meta/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
