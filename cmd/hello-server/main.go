package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "hello-server",
	Short:         "Single-line HTTP responder backed by a fixed worker pool",
	Long:          `Answers "GET /" and "GET /sleep" with a canned page, handling every connection on a fixed-size worker pool.`,
	Run:           func(cmd *cobra.Command, args []string) { _ = cmd.Help() },
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
