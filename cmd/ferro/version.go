package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ferro/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		name := color.New(color.FgCyan, color.Bold)
		fmt.Printf("%s %s\n", name.Sprint("ferro"), version.Version)
		if version.GitCommit != "" {
			fmt.Printf("  commit: %s\n", version.GitCommit)
		}
		if version.BuildDate != "" {
			fmt.Printf("  built:  %s\n", version.BuildDate)
		}
	},
}
