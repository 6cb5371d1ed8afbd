package cmd

import (
	"fmt"

	"github.com/AnyUserName/assetprep-cli/internal/pipeline"
	"github.com/AnyUserName/assetprep-cli/internal/profile"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Copy source photos into the asset slots",
	Long: `Collects *.jpg, *.JPG, *.jpeg and *.JPEG from the source directory, sorts
the paths as plain text and copies the first --count of them to
img_0.jpg … in the asset directory, replacing existing files. Timestamps
and permissions are preserved. The first copy error stops the run.`,
	Args: cobra.NoArgs,
	RunE: runImport,
}

func init() {
	p := profile.Default()
	importCmd.Flags().String("source", p.SourceDir, "directory of source photographs")
	importCmd.Flags().String("assets", p.AssetDir, "asset directory")
	importCmd.Flags().Int("count", p.TotalImages, "maximum number of slots to fill")
	importCmd.Flags().Bool("dry-run", false, "show the planned mapping without copying")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, map[string]string{
		"source_dir":   "source",
		"asset_dir":    "assets",
		"total_images": "count",
	})
	if err != nil {
		return err
	}
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	_, err = pipeline.Import(pipeline.ImportConfig{
		SourceDir:   cfg.SourceDir,
		DestDir:     cfg.AssetDir,
		TargetCount: cfg.TotalImages,
		DryRun:      dryRun,
		Logger:      log.Logger,
	})
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	return nil
}
