package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"wfcloud/internal/fsys"
	"wfcloud/internal/gcs"
	"wfcloud/internal/outputs"
	"wfcloud/pkg/utils"
)

var pullOutputsCmd = &cobra.Command{
	Use:   "pull-outputs",
	Short: "Download workflow outputs described by an outputs JSON document",
	Long: `Download every file referenced by a workflow outputs JSON document.

The document maps dotted output names to values that nest through lists and
mappings down to gs:// file locators. Files land under the outputs directory
by output name and mapping key, not by their original bucket paths. Files
already present locally are skipped, so reruns only fetch what is missing.

The outputs file itself may be a local path or a gs:// locator; remote
documents are staged under TMPDIR before parsing.`,
	Example: `  # Download all outputs of a finished workflow
  wfcloud pull-outputs --outputs-file outputs.json

  # Download to a specific directory
  wfcloud pull-outputs --outputs-file outputs.json --outputs-dir /data/run42

  # Read the outputs document straight from the bucket
  wfcloud pull-outputs --outputs-file gs://bucket/wf/outputs.json

  # Log what would be downloaded without copying anything
  wfcloud pull-outputs --outputs-file outputs.json --dryrun`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runPullOutputs(cmd); err != nil {
			utils.PrintError(err, "pull-outputs")
			return err
		}
		return nil
	},
}

func runPullOutputs(cmd *cobra.Command) error {
	outputsFile, _ := cmd.Flags().GetString("outputs-file")
	outputsDir, _ := cmd.Flags().GetString("outputs-dir")
	dryRun, _ := cmd.Flags().GetBool("dryrun")

	fs := fsys.NewOS()
	fetcher := &gcs.Fetcher{FS: fs, Copier: gcs.GSUtil{}, DryRun: dryRun}
	loader := &outputs.Loader{FS: fs, Fetcher: fetcher, TempDir: cfg.TempDir}

	ctx := context.Background()

	var doc outputs.Document
	if err := loader.Read(ctx, outputsFile, &doc); err != nil {
		return err
	}

	walker := &outputs.Walker{Fetcher: fetcher}
	result := walker.PullAll(ctx, &doc, outputsDir)
	result.OutputsFile = outputsFile

	return utils.PrintJSON(result)
}

func init() {
	pullOutputsCmd.Flags().String("outputs-file", "", "JSON file of workflow outputs to pull, local or gs:// (required)")
	pullOutputsCmd.Flags().String("outputs-dir", "./outputs", "Directory path to download outputs to")
	pullOutputsCmd.Flags().Bool("dryrun", false, "Skip the actual download and just print progress info")
	pullOutputsCmd.MarkFlagRequired("outputs-file")
}
