package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"wfcloud/config"
)

var (
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "wfcloud",
	Short: "Move workflow files between GCS and the local filesystem",
	Long: `wfcloud moves files between a workflow engine's GCS storage and local disk.

pull-outputs downloads every file referenced by a workflow outputs document,
mirroring the output names rather than the original bucket paths.
cloudize uploads a workflow's File inputs to a bucket and writes a rewritten
inputs file pointing at the uploaded gs:// locations.
Configuration is loaded from .env file or environment variables`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := cfg.SlogLevel()
		if isVerbose(cmd) {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func Execute(config *config.Config) error {
	cfg = config
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(pullOutputsCmd)
	rootCmd.AddCommand(cloudizeCmd)

	rootCmd.PersistentFlags().StringP("bucket", "b", "", "Override bucket name from config")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
}

func getBucketName(cmd *cobra.Command) string {
	bucket, _ := cmd.Flags().GetString("bucket")
	if bucket != "" {
		return bucket
	}
	return cfg.Bucket
}

func isVerbose(cmd *cobra.Command) bool {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return verbose
}
