// Package cloudize prepares a workflow for cloud execution: it uploads the
// workflow's File inputs to a GCS bucket and writes a rewritten inputs
// document pointing at the uploaded objects.
package cloudize

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"gopkg.in/yaml.v3"

	"wfcloud/internal/gcs"
	"wfcloud/internal/models"
	"wfcloud/pkg/utils"
)

// Cloudizer uploads File inputs and rewrites inputs documents. Uploads go
// through the same do-not-overwrite copy primitive the download path uses.
type Cloudizer struct {
	FS     billy.Filesystem
	Copier gcs.Copier
	DryRun bool
	// Prefix overrides the bucket key prefix. Empty means
	// input_data/<user>/<today>.
	Prefix string
	Log    *slog.Logger
}

func (c *Cloudizer) logger() *slog.Logger {
	if c.Log != nil {
		return c.Log
	}
	return slog.Default()
}

// Run loads the workflow, plans and writes the rewritten inputs document,
// then uploads every File input. Individual upload failures are logged and
// skipped; only setup failures abort the run.
func (c *Cloudizer) Run(ctx context.Context, bucket, definitionPath, inputsPath, outputPath string) (*models.CloudizeResult, error) {
	start := time.Now()

	w, err := LoadWorkflow(c.FS, definitionPath, inputsPath)
	if err != nil {
		return nil, err
	}

	files := FindFileInputs(c.FS, w)
	if len(files) == 0 {
		return nil, fmt.Errorf("no File inputs found in %s, check that input files are accessible", inputsPath)
	}

	prefix := c.Prefix
	if prefix == "" {
		prefix = DefaultPrefix()
	}
	PlanCloudPaths(files, prefix)

	rewritten := CloudizeInputs(w.Inputs, bucket, files)
	if err := c.writeInputs(rewritten, outputPath); err != nil {
		return nil, err
	}
	c.logger().Info("inputs dumped", "path", outputPath)

	result := &models.CloudizeResult{
		Bucket:        bucket,
		WorkflowPath:  definitionPath,
		InputsPath:    inputsPath,
		OutputPath:    outputPath,
		DryRun:        c.DryRun,
		OperationTime: utils.FormatTime(start),
	}

	for _, f := range files {
		for _, fp := range f.AllPaths() {
			uri := RemoteURI(bucket, fp.Cloud)

			fi, err := c.FS.Stat(fp.Local)
			if err != nil {
				c.logger().Warn("could not find source file, potentially just a basepath", "path", fp.Local)
				result.SkippedMissing++
				continue
			}
			if fi.IsDir() {
				c.logger().Info("source file is a directory, skipping", "path", fp.Local)
				continue
			}

			c.logger().Info("uploading", "src", fp.Local, "dest", uri)
			if !c.DryRun {
				if err := c.Copier.Copy(ctx, fp.Local, uri); err != nil {
					c.logger().Warn("upload failed", "path", fp.Local, "error", err)
					continue
				}
			}
			result.Files = append(result.Files, models.UploadedFile{LocalPath: fp.Local, RemoteURI: uri})
		}
	}

	result.TotalFiles = len(result.Files)
	result.UploadDuration = time.Since(start).String()
	c.logger().Info("completed file upload process")
	return result, nil
}

// writeInputs encodes the rewritten document as YAML, or JSON when the
// output path ends in .json.
func (c *Cloudizer) writeInputs(inputs map[string]any, outputPath string) error {
	var data []byte
	var err error
	if filepath.Ext(outputPath) == ".json" {
		data, err = json.MarshalIndent(inputs, "", "  ")
	} else {
		data, err = yaml.Marshal(inputs)
	}
	if err != nil {
		return fmt.Errorf("encode inputs: %w", err)
	}
	if err := util.WriteFile(c.FS, outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write inputs %s: %w", outputPath, err)
	}
	return nil
}
