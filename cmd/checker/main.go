package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/harrison/checker/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	err := rootCmd.Execute()
	var exitErr *cmd.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(cmd.ExitCode(err))
}
