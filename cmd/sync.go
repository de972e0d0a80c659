package cmd

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SFrav/ai4boundaries/internal/s3client"
	"github.com/SFrav/ai4boundaries/pkg/utils"
)

var syncCmd = &cobra.Command{
	Use:   "sync [directory]",
	Short: "Upload a downloaded dataset tree to an S3 bucket",
	Long: `Upload a previously downloaded dataset directory to an S3-compatible
bucket, preserving the directory structure.

The bucket and credentials are taken from the configuration (.env file
or environment variables: BUCKET_NAME, REGION, API_URL, ACCESS_KEY,
SECRET_KEY). The destination prefix inside the bucket can be set with
the --destination flag.`,
	Example: `  # Sync a downloaded tree to the configured bucket
  ai4boundaries sync /data/ai4boundaries

  # Sync under a prefix
  ai4boundaries sync /data/ai4boundaries --destination "datasets/ai4boundaries"

  # Skip the confirmation prompt
  ai4boundaries sync /data/ai4boundaries --confirm`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runSync(cmd, args)
	},
}

func runSync(cmd *cobra.Command, args []string) {
	localDir := args[0]
	destination, _ := cmd.Flags().GetString("destination")
	confirm, _ := cmd.Flags().GetBool("confirm")

	if cfg.BucketName == "" {
		utils.PrintError(fmt.Errorf("no bucket configured, set BUCKET_NAME"), "sync")
		return
	}

	if !confirm {
		fmt.Printf("Sync operation summary:\n")
		fmt.Printf("Bucket: %s\n", cfg.BucketName)
		fmt.Printf("Source: %s\n", localDir)
		fmt.Printf("Destination: %s\n", getDestinationDisplay(destination))

		fmt.Print("Continue with sync? (y/N): ")
		var response string
		_, err := fmt.Scanln(&response)
		if err != nil {
			utils.PrintError(err, "sync")
			return
		}
		if !slices.Contains([]string{"y", "yes"}, strings.ToLower(response)) {
			fmt.Println("Sync cancelled.")
			return
		}
	}

	client, err := s3client.New(cfg)
	if err != nil {
		utils.PrintError(err, "sync")
		return
	}

	timeout, _ := cmd.Flags().GetInt("timeout")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	if isVerbose(cmd) {
		cmd.Printf("Starting sync operation...\n")
		cmd.Printf("  Source: %s\n", localDir)
		cmd.Printf("  Destination: %s\n", getDestinationDisplay(destination))
	}

	result, err := client.SyncDataset(ctx, localDir, destination)
	if err != nil {
		utils.PrintError(err, "sync")
		return
	}

	if err := utils.PrintJSON(result); err != nil {
		utils.PrintError(err, "sync")
		return
	}

	if isVerbose(cmd) {
		cmd.Println("Sync operation completed successfully")
	}
}

func getDestinationDisplay(destination string) string {
	if destination == "" {
		return "bucket root"
	}
	return destination
}

func init() {
	syncCmd.Flags().StringP("destination", "d", "", "Destination prefix in the S3 bucket (optional)")
	syncCmd.Flags().Bool("confirm", false, "Skip confirmation prompt")
	syncCmd.Flags().Int("timeout", 3600, "Timeout in seconds for the operation (default: 1 hour)")
}
