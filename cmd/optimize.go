package cmd

import (
	"fmt"

	"github.com/AnyUserName/assetprep-cli/internal/pipeline"
	"github.com/AnyUserName/assetprep-cli/internal/profile"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Downsample assets wider than the maximum width in place",
	Long: `Scans the asset directory for .jpg/.jpeg files (any case) in name order.
Images wider than --max-width are resized to that width, keeping the aspect
ratio, and overwritten. A file that cannot be processed is reported and
skipped; the run always completes.`,
	Args: cobra.NoArgs,
	RunE: runOptimize,
}

func init() {
	p := profile.Default()
	optimizeCmd.Flags().String("assets", p.AssetDir, "asset directory")
	optimizeCmd.Flags().Int("max-width", p.MaxWidth, "resize images wider than this")
	optimizeCmd.Flags().IntP("quality", "q", p.ResizeQuality, "JPEG quality 1-100")
	optimizeCmd.Flags().Bool("dry-run", false, "report what would be resized without writing")
	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, map[string]string{
		"asset_dir":      "assets",
		"max_width":      "max-width",
		"resize_quality": "quality",
	})
	if err != nil {
		return err
	}
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	res, err := pipeline.Optimize(pipeline.OptimizeConfig{
		Dir:      cfg.AssetDir,
		MaxWidth: cfg.MaxWidth,
		Quality:  cfg.ResizeQuality,
		DryRun:   dryRun,
		Logger:   log.Logger,
	})
	if err != nil {
		return fmt.Errorf("optimize: %w", err)
	}

	if res.Errors.Total > 0 {
		for cat, n := range res.Errors.ByCategory {
			log.Debug().Str("category", string(cat)).Int("count", n).Msg("errors")
		}
	}
	return nil
}
