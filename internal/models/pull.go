package models

type PullItem struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Size        int64  `json:"size,omitempty"`
}

type PullStats struct {
	Downloaded      int `json:"downloaded"`
	SkippedExisting int `json:"skipped_existing"`
	SkippedOptional int `json:"skipped_optional"`
	Warnings        int `json:"warnings"`
	Errors          int `json:"errors"`
}

type PullResult struct {
	OutputsFile    string     `json:"outputs_file"`
	OutputsDir     string     `json:"outputs_dir"`
	DryRun         bool       `json:"dry_run"`
	Stats          PullStats  `json:"stats"`
	Items          []PullItem `json:"items"`
	TotalSizeBytes int64      `json:"total_size_bytes"`
	TotalSizeHuman string     `json:"total_size_human"`
	OperationTime  string     `json:"operation_time"`
	PullDuration   string     `json:"pull_duration"`
}
