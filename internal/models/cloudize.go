package models

type UploadedFile struct {
	LocalPath string `json:"local_path"`
	RemoteURI string `json:"remote_uri"`
}

type CloudizeResult struct {
	Bucket         string         `json:"bucket"`
	WorkflowPath   string         `json:"workflow_path"`
	InputsPath     string         `json:"inputs_path"`
	OutputPath     string         `json:"output_path"`
	DryRun         bool           `json:"dry_run"`
	Files          []UploadedFile `json:"files"`
	TotalFiles     int            `json:"total_files"`
	SkippedMissing int            `json:"skipped_missing"`
	OperationTime  string         `json:"operation_time"`
	UploadDuration string         `json:"upload_duration"`
}
