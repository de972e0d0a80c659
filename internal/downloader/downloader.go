// Package downloader fetches the discovered data files sequentially
// and writes them under the local mirror root.
package downloader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/SFrav/ai4boundaries/internal/mirror"
)

// Engine downloads files one at a time. A file that fails its first
// attempt is put on a retry list after waiting Cooldown; the retry pass
// runs once, without cooldown, and anything still failing is reported
// in the result rather than retried again.
type Engine struct {
	Client    *http.Client
	UserAgent string
	Cooldown  time.Duration
}

func New(timeout, cooldown time.Duration, userAgent string) *Engine {
	return &Engine{
		Client:    &http.Client{Timeout: timeout},
		UserAgent: userAgent,
		Cooldown:  cooldown,
	}
}

// Report summarizes a download run.
type Report struct {
	Downloaded int
	Bytes      int64
	Retried    []string
	Failed     []string
}

// DownloadAll fetches every file URL in order, writing each to its
// translated local path. Destination files are overwritten. The
// returned report lists the URLs that failed both passes.
func (e *Engine) DownloadAll(ctx context.Context, fileURLs []string, rootDir, baseURL string) *Report {
	report := &Report{}

	log.Info("Downloading data", "files", len(fileURLs))
	for i, u := range fileURLs {
		n, err := e.download(ctx, u, mirror.LocalPath(u, rootDir, baseURL))
		if err != nil {
			log.Warn("download failed, queued for retry", "url", u, "err", err)
			report.Retried = append(report.Retried, u)
			time.Sleep(e.Cooldown)
			continue
		}
		report.Downloaded++
		report.Bytes += n
		log.Debug("downloaded", "url", u, "bytes", n, "progress", fmt.Sprintf("%d/%d", i+1, len(fileURLs)))
	}

	if len(report.Retried) > 0 {
		log.Info("Reprocessing failed downloads", "files", len(report.Retried))
	}
	for _, u := range report.Retried {
		n, err := e.download(ctx, u, mirror.LocalPath(u, rootDir, baseURL))
		if err != nil {
			log.Warn("retry failed, giving up", "url", u, "err", err)
			report.Failed = append(report.Failed, u)
			continue
		}
		report.Downloaded++
		report.Bytes += n
	}

	return report
}

// download reads the whole body into memory before touching the
// destination, so a failed fetch never leaves a partial file behind.
func (e *Engine) download(ctx context.Context, url, dst string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", e.UserAgent)

	resp, err := e.Client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}

	if err := os.WriteFile(filepath.FromSlash(dst), data, 0o644); err != nil {
		return 0, err
	}
	return int64(len(data)), nil
}
