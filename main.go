package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dhabedank/teardown/cmd"
	"github.com/dhabedank/teardown/internal/version"
)

var buildVersion = "0.1.0"

func main() {
	// Load .env if present; API keys may live there during development.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:     "teardown",
		Short:   "AI product teardowns: strategy, growth loops, UX, KPIs, SWOT",
		Version: buildVersion,
	}
	rootCmd.AddCommand(cmd.RunCmd, cmd.CompareCmd, cmd.SetupCmd)

	if version.IsFirstRun() {
		version.PrintFirstRunNotice()
	}

	err := rootCmd.Execute()

	version.PrintUpdateNotice(version.CheckForUpdate(buildVersion))

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
