/*
Copyright © 2025 tranvd
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "askbot-be",
	Short: "Knowledge-base question answering bot backend",
	Long: `askbot-be answers user questions by combining a local document
corpus with an LLM completion call, memoized through an external cache.

Run "askbot-be start" to serve the slash-command endpoints, or
"askbot-be warm" to pre-extract the corpus text.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (optional, environment variables win)")
}
