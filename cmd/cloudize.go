package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"wfcloud/internal/cloudize"
	"wfcloud/internal/fsys"
	"wfcloud/internal/gcs"
	"wfcloud/pkg/utils"
)

var cloudizeCmd = &cobra.Command{
	Use:   "cloudize [workflow-definition] [workflow-inputs]",
	Short: "Upload a workflow's File inputs and rewrite its inputs file",
	Long: `Prepare a workflow for cloud processing.

Every File input named by the inputs file is uploaded to the bucket under a
unique per-user, per-date prefix, and a new inputs file is written whose File
entries point at the uploaded gs:// locations. CWL definitions also pull in
declared secondaryFiles; WDL definitions get bare input names prefixed with
the workflow name.`,
	Example: `  # Upload inputs and write inputs_cloud.yaml next to the original
  wfcloud cloudize pipeline.cwl inputs.yaml --bucket my-bucket

  # Choose where the rewritten inputs file goes (.json switches the format)
  wfcloud cloudize pipeline.wdl inputs.yaml -b my-bucket -o cloud.json

  # See what would be uploaded without copying anything
  wfcloud cloudize pipeline.cwl inputs.yaml -b my-bucket --dryrun`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runCloudize(cmd, args); err != nil {
			utils.PrintError(err, "cloudize")
			return err
		}
		return nil
	},
}

func runCloudize(cmd *cobra.Command, args []string) error {
	definitionPath, inputsPath := args[0], args[1]
	output, _ := cmd.Flags().GetString("output")
	dryRun, _ := cmd.Flags().GetBool("dryrun")

	bucket := getBucketName(cmd)
	if bucket == "" {
		return fmt.Errorf("no bucket given, set --bucket or GCS_BUCKET")
	}
	if output == "" {
		output = cloudize.DefaultOutputPath(inputsPath)
	}

	c := &cloudize.Cloudizer{
		FS:     fsys.NewOS(),
		Copier: gcs.GSUtil{},
		DryRun: dryRun,
	}

	result, err := c.Run(context.Background(), bucket, definitionPath, inputsPath, output)
	if err != nil {
		return err
	}
	return utils.PrintJSON(result)
}

func init() {
	cloudizeCmd.Flags().StringP("output", "o", "", "Path to write the rewritten workflow inputs (default: inputs file with _cloud before the extension)")
	cloudizeCmd.Flags().Bool("dryrun", false, "Skip the actual upload and just print progress info")
}
