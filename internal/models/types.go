package models

type ErrorResponse struct {
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
	Command   string `json:"command"`
}

type DownloadResult struct {
	Sensor             string   `json:"sensor"`
	Country            string   `json:"country"`
	RootDir            string   `json:"root_dir"`
	SeedURLs           []string `json:"seed_urls"`
	DirectoriesCreated int      `json:"directories_created"`
	FilesDiscovered    int      `json:"files_discovered"`
	FilesDownloaded    int      `json:"files_downloaded"`
	FilesRetried       int      `json:"files_retried"`
	FailedURLs         []string `json:"failed_urls,omitempty"`
	TotalSizeBytes     int64    `json:"total_size_bytes"`
	TotalSizeHuman     string   `json:"total_size_human"`
	OperationTime      string   `json:"operation_time"`
	DownloadDuration   string   `json:"download_duration"`
}
