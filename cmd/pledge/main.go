// Command pledge runs the integrity pledge system.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pledge",
	Short: "Integrity pledge certificate service",
	Long:  `Accepts pledge submissions, issues personalized certificates and records each pledge.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
