package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sentinelhq/sentinel/logx"
)

var rootCmd = &cobra.Command{
	Use:   "sentinel",
	Short: "Sentinel risk verifier CLI",
	Long:  "Command line interface for running and managing a Sentinel risk verifier node.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logx.Error("CMD", "Command execution failed:", err)
		os.Exit(1)
	}
}
