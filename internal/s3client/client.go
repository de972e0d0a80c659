// Package s3client uploads a downloaded dataset tree to an
// S3-compatible bucket.
package s3client

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appConfig "github.com/SFrav/ai4boundaries/config"
	"github.com/SFrav/ai4boundaries/internal/models"
	"github.com/SFrav/ai4boundaries/pkg/utils"
)

type Client struct {
	s3Client *s3.Client
	config   *appConfig.Config
}

func New(cfg *appConfig.Config) (*Client, error) {
	awsConfig, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.StaticCredentialsProvider{
			Value: aws.Credentials{
				AccessKeyID:     cfg.AccessKey,
				SecretAccessKey: cfg.SecretKey,
			},
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var s3Client *s3.Client
	if cfg.ApiURL != "" {
		s3Client = s3.NewFromConfig(awsConfig, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.ApiURL)
			o.UsePathStyle = true
		})
	} else {
		s3Client = s3.NewFromConfig(awsConfig)
	}

	return &Client{
		s3Client: s3Client,
		config:   cfg,
	}, nil
}

// SyncDataset walks localDir and uploads every file to the bucket,
// preserving the directory structure below localDir under
// destinationPath.
func (c *Client) SyncDataset(ctx context.Context, localDir, destinationPath string) (*models.SyncResult, error) {
	startTime := time.Now()

	info, err := os.Stat(localDir)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", localDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", localDir)
	}

	uploader := manager.NewUploader(c.s3Client)

	var items []models.SyncItem
	var totalSize int64

	err = filepath.Walk(localDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(localDir, path)
		if err != nil {
			return err
		}

		remotePath := c.buildRemotePath(destinationPath, filepath.ToSlash(relPath))
		if err := c.uploadSingleFile(ctx, uploader, path, remotePath); err != nil {
			return err
		}

		items = append(items, models.SyncItem{
			LocalPath:  path,
			RemotePath: remotePath,
			Size:       info.Size(),
		})
		totalSize += info.Size()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sync %s: %w", localDir, err)
	}

	return &models.SyncResult{
		BucketName:      c.config.BucketName,
		SourceDir:       localDir,
		DestinationPath: destinationPath,
		Items:           items,
		TotalFiles:      len(items),
		TotalSizeBytes:  totalSize,
		TotalSizeHuman:  utils.FormatBytes(totalSize),
		OperationTime:   utils.FormatTime(startTime),
		SyncDuration:    time.Since(startTime).String(),
	}, nil
}

func (c *Client) uploadSingleFile(ctx context.Context, uploader *manager.Uploader, localPath, remotePath string) error {
	file, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", localPath, err)
	}
	defer file.Close()

	contentType := c.detectContentType(localPath)

	_, err = uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.config.BucketName),
		Key:         aws.String(remotePath),
		Body:        file,
		ContentType: aws.String(contentType),
	})

	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}

	return nil
}

func (c *Client) buildRemotePath(destinationPath, filename string) string {
	if destinationPath == "" {
		return filename
	}

	destinationPath = strings.TrimPrefix(destinationPath, "/")

	if !strings.HasSuffix(destinationPath, "/") {
		destinationPath += "/"
	}

	return destinationPath + filename
}

func (c *Client) detectContentType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))

	contentTypes := map[string]string{
		".tif":  "image/tiff",
		".tiff": "image/tiff",
		".nc":   "application/x-netcdf",
		".csv":  "text/csv",
		".json": "application/json",
		".txt":  "text/plain",
		".xml":  "application/xml",
		".zip":  "application/zip",
	}

	if contentType, exists := contentTypes[ext]; exists {
		return contentType
	}

	return "application/octet-stream"
}
