package cmd

import (
	"github.com/spf13/cobra"

	"github.com/SFrav/ai4boundaries/config"
)

var (
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "ai4boundaries",
	Short: "Downloader for the AI4Boundaries field boundary dataset",
	Long: `ai4boundaries mirrors the AI4Boundaries open dataset from the JRC
open data archive to a local directory, optionally filtered by sensor
and country, and can sync a downloaded tree to an S3-compatible bucket.
Configuration is loaded from .env file or environment variables`,
}

func Execute(config *config.Config) error {
	cfg = config
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(syncCmd)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
}

func isVerbose(cmd *cobra.Command) bool {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return verbose
}
