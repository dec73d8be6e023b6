// Command emotionctl classifies text from the command line.
//
// Usage:
//
//	emotionctl classify "I miss my childhood home"
//	emotionctl classify --variant extended "nothing to do today"
//	emotionctl variants
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "emotionctl",
		Short: "Classify text into an emotion label",
		Long: `emotionctl sends text to the completion service and prints the emotion label,
using the same configuration as the HTTP server (EMOTION_* and OPENAI_API_KEY).`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newClassifyCmd(),
		newVariantsCmd(),
	)

	return rootCmd
}
