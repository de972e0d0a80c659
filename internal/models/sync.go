package models

type SyncItem struct {
	LocalPath  string `json:"local_path"`
	RemotePath string `json:"remote_path"`
	Size       int64  `json:"size"`
}

type SyncResult struct {
	BucketName      string     `json:"bucket_name"`
	SourceDir       string     `json:"source_dir"`
	DestinationPath string     `json:"destination_path"`
	Items           []SyncItem `json:"items"`
	TotalFiles      int        `json:"total_files"`
	TotalSizeBytes  int64      `json:"total_size_bytes"`
	TotalSizeHuman  string     `json:"total_size_human"`
	OperationTime   string     `json:"operation_time"`
	SyncDuration    string     `json:"sync_duration"`
}
