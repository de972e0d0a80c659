package cmd

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SFrav/ai4boundaries/internal/catalog"
	"github.com/SFrav/ai4boundaries/internal/dataset"
	"github.com/SFrav/ai4boundaries/pkg/utils"
)

var downloadCmd = &cobra.Command{
	Use:   "download [directory]",
	Short: "Download the dataset to a local directory",
	Long: `Download the AI4Boundaries dataset to a local directory.

The command scrapes the archive's directory listings, recreates the
directory structure locally, and downloads every GeoTIFF and NetCDF
file it finds. Files that fail to download are retried once at the end
of the run; anything that still fails is listed in the result.

The selection can be narrowed with --sensor (ortho, s2) and --country
(AT, ES, FR, LU, NL, SE, SI). A country filter requires a sensor.`,
	Example: `  # Download the whole catalog
  ai4boundaries download /data/ai4boundaries

  # Only the orthophoto sub-tree
  ai4boundaries download /data/ai4boundaries --sensor ortho

  # Sentinel-2 images and masks for Austria
  ai4boundaries download /data/ai4boundaries --sensor s2 --country AT

  # Skip the confirmation prompt
  ai4boundaries download /data/ai4boundaries --sensor s2 --country AT --confirm`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runDownload(cmd, args)
	},
}

func runDownload(cmd *cobra.Command, args []string) {
	rootDir := args[0]
	sensor, _ := cmd.Flags().GetString("sensor")
	country, _ := cmd.Flags().GetString("country")
	confirm, _ := cmd.Flags().GetBool("confirm")

	// Validate the selection before prompting; no point confirming an
	// operation that cannot start.
	seeds, err := catalog.SeedURLs(cfg.BaseURL, catalog.Sensor(sensor), catalog.Country(country))
	if err != nil {
		utils.PrintError(err, "download")
		return
	}

	if !confirm {
		fmt.Printf("Download operation summary:\n")
		fmt.Printf("Archive: %s\n", cfg.BaseURL)
		fmt.Printf("Sensor: %s\n", sensor)
		fmt.Printf("Country: %s\n", country)
		fmt.Printf("Destination: %s\n", rootDir)

		fmt.Print("Continue with download? (y/N): ")
		var response string
		_, err := fmt.Scanln(&response)
		if err != nil {
			utils.PrintError(err, "download")
			return
		}
		if !slices.Contains([]string{"y", "yes"}, strings.ToLower(response)) {
			fmt.Println("Download cancelled.")
			return
		}
	}

	timeout, _ := cmd.Flags().GetInt("timeout")
	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
		defer cancel()
	}

	if isVerbose(cmd) {
		cmd.Printf("Starting download operation...\n")
		cmd.Printf("  Seeds: %v\n", seeds)
		cmd.Printf("  Destination: %s\n", rootDir)
	}

	svc := dataset.New(cfg)
	svc.Progress = true
	result, err := svc.Download(ctx, rootDir, catalog.Sensor(sensor), catalog.Country(country))
	if err != nil {
		utils.PrintError(err, "download")
		return
	}

	if err := utils.PrintJSON(result); err != nil {
		utils.PrintError(err, "download")
		return
	}

	fmt.Println("Cite the data set:")
	fmt.Println(dataset.Citation)

	if isVerbose(cmd) {
		cmd.Println("Download operation completed successfully")
		cmd.Printf("Downloaded %d of %d files\n", result.FilesDownloaded, result.FilesDiscovered)
	}
}

func init() {
	downloadCmd.Flags().StringP("sensor", "s", "All", "Sensor to download (All, ortho, s2)")
	downloadCmd.Flags().StringP("country", "c", "All", "Country to download (All, AT, ES, FR, LU, NL, SE, SI)")
	downloadCmd.Flags().Bool("confirm", false, "Skip confirmation prompt")
	downloadCmd.Flags().Int("timeout", 0, "Overall timeout in seconds for the operation (0 = no limit)")
}
