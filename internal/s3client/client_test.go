package s3client

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/SFrav/ai4boundaries/config"
)

func TestBuildRemotePath(t *testing.T) {
	c := &Client{config: &config.Config{}}

	tests := []struct {
		destination string
		filename    string
		want        string
	}{
		{"", "sentinel2/images/AT/a.tif", "sentinel2/images/AT/a.tif"},
		{"datasets/ai4b", "a.tif", "datasets/ai4b/a.tif"},
		{"datasets/ai4b/", "a.tif", "datasets/ai4b/a.tif"},
		{"/datasets", "a.tif", "datasets/a.tif"},
	}

	for _, tt := range tests {
		got := c.buildRemotePath(tt.destination, tt.filename)
		if got != tt.want {
			t.Errorf("buildRemotePath(%q, %q) = %q, want %q", tt.destination, tt.filename, got, tt.want)
		}
	}
}

func TestDetectContentType(t *testing.T) {
	c := &Client{config: &config.Config{}}

	tests := map[string]string{
		"AT_1024_img.tif": "image/tiff",
		"AT_1024_img.NC":  "application/x-netcdf",
		"listing.csv":     "text/csv",
		"unknown.bin":     "application/octet-stream",
	}

	for filename, want := range tests {
		if got := c.detectContentType(filename); got != want {
			t.Errorf("detectContentType(%q) = %q, want %q", filename, got, want)
		}
	}
}

// Integration test for the S3 sync
// It requires a real S3 connection and is skipped by default
// To run it, set the environment variable S3_INTEGRATION_TEST=true

func TestSyncDataset(t *testing.T) {
	if os.Getenv("S3_INTEGRATION_TEST") != "true" {
		t.Skip("Skipping integration test; set S3_INTEGRATION_TEST=true to run")
	}

	cfg := &config.Config{
		BucketName: os.Getenv("TEST_BUCKET_NAME"),
		Region:     os.Getenv("TEST_REGION"),
		ApiURL:     os.Getenv("TEST_API_URL"),
		AccessKey:  os.Getenv("TEST_ACCESS_KEY"),
		SecretKey:  os.Getenv("TEST_SECRET_KEY"),
	}

	client, err := New(cfg)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	localDir := t.TempDir()
	sub := filepath.Join(localDir, "sentinel2", "images", "AT")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	content := []byte("netcdf bytes")
	if err := os.WriteFile(filepath.Join(sub, "AT_1.nc"), content, 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := client.SyncDataset(context.Background(), localDir, "ai4boundaries-test")
	if err != nil {
		t.Fatalf("SyncDataset() error = %v", err)
	}

	if result.BucketName != cfg.BucketName {
		t.Errorf("BucketName = %s, want %s", result.BucketName, cfg.BucketName)
	}

	if result.TotalFiles != 1 {
		t.Errorf("TotalFiles = %d, want 1", result.TotalFiles)
	}

	if result.TotalSizeBytes != int64(len(content)) {
		t.Errorf("TotalSizeBytes = %d, want %d", result.TotalSizeBytes, len(content))
	}

	if result.Items[0].RemotePath != "ai4boundaries-test/sentinel2/images/AT/AT_1.nc" {
		t.Errorf("RemotePath = %s", result.Items[0].RemotePath)
	}
}
