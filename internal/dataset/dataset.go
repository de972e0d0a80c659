// Package dataset orchestrates the download pipeline: seed selection,
// listing scrape, local tree creation, and the file download passes.
package dataset

import (
	"context"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/log"

	"github.com/SFrav/ai4boundaries/config"
	"github.com/SFrav/ai4boundaries/internal/catalog"
	"github.com/SFrav/ai4boundaries/internal/downloader"
	"github.com/SFrav/ai4boundaries/internal/mirror"
	"github.com/SFrav/ai4boundaries/internal/models"
	"github.com/SFrav/ai4boundaries/internal/scraper"
	"github.com/SFrav/ai4boundaries/pkg/utils"
)

// Citation is the reference the archive asks users of the dataset to
// cite. It is printed at the end of every successful download run.
const Citation = "d'Andrimont, R., Claverie, M., Kempeneers, P., Muraro, D., Yordanov, M., " +
	"Peressutti, D., Batič, M., and Waldner, F.: AI4Boundaries: an open AI-ready dataset " +
	"to map field boundaries with Sentinel-2 and aerial photography, Earth Syst. Sci. " +
	"Data Discuss. [preprint], https://doi.org/10.5194/essd-2022-298, in review, 2022."

type Service struct {
	cfg     *config.Config
	scraper *scraper.Scraper
	engine  *downloader.Engine

	// Progress enables the terminal spinner during the scrape stage.
	Progress bool
}

func New(cfg *config.Config) *Service {
	timeout := time.Duration(cfg.HTTPTimeoutSec) * time.Second
	return &Service{
		cfg:     cfg,
		scraper: scraper.New(timeout, cfg.UserAgent),
		engine:  downloader.New(timeout, time.Duration(cfg.RetryCooldownSec)*time.Second, cfg.UserAgent),
	}
}

// Download mirrors the selected slice of the archive under rootDir and
// reports what happened. Selection errors surface before any network
// traffic; a broken directory listing aborts the run.
func (s *Service) Download(ctx context.Context, rootDir string, sensor catalog.Sensor, country catalog.Country) (*models.DownloadResult, error) {
	startTime := time.Now()

	seeds, err := catalog.SeedURLs(s.cfg.BaseURL, sensor, country)
	if err != nil {
		return nil, err
	}

	log.Info("Scraping data", "seeds", len(seeds))
	var spin *spinner.Spinner
	if s.Progress {
		spin = spinner.New(spinner.CharSets[9], 100*time.Millisecond)
		spin.Suffix = " scraping " + s.cfg.BaseURL
		spin.Start()
	}
	tree, err := s.scraper.Scrape(ctx, seeds)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return nil, err
	}

	log.Info("Creating folder architecture", "directories", len(tree.Dirs))
	dirs := mirror.DirPaths(tree.Dirs, rootDir, s.cfg.BaseURL)
	if err := mirror.Materialize(dirs); err != nil {
		return nil, err
	}

	report := s.engine.DownloadAll(ctx, tree.Files, rootDir, s.cfg.BaseURL)
	log.Info("Download finished", "downloaded", report.Downloaded, "failed", len(report.Failed))

	return &models.DownloadResult{
		Sensor:             string(sensor),
		Country:            string(country),
		RootDir:            rootDir,
		SeedURLs:           seeds,
		DirectoriesCreated: len(dirs),
		FilesDiscovered:    len(tree.Files),
		FilesDownloaded:    report.Downloaded,
		FilesRetried:       len(report.Retried),
		FailedURLs:         report.Failed,
		TotalSizeBytes:     report.Bytes,
		TotalSizeHuman:     utils.FormatBytes(report.Bytes),
		OperationTime:      utils.FormatTime(startTime),
		DownloadDuration:   time.Since(startTime).String(),
	}, nil
}
