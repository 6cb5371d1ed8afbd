package cmd

import (
	"fmt"

	"github.com/AnyUserName/assetprep-cli/internal/placeholder"
	"github.com/AnyUserName/assetprep-cli/internal/profile"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Paint numbered placeholder images into the asset directory",
	Long: `Writes img_0.jpg … img_{count-1}.jpg, each a solid hue-shifted canvas
with its index centered in white. Existing files are overwritten. The first
error stops the run.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	p := profile.Default()
	generateCmd.Flags().String("assets", p.AssetDir, "asset directory")
	generateCmd.Flags().Int("count", p.TotalImages, "number of placeholders")
	generateCmd.Flags().Int("width", p.Width, "canvas width")
	generateCmd.Flags().Int("height", p.Height, "canvas height")
	generateCmd.Flags().Float64("font-size", p.FontSize, "label size in points")
	generateCmd.Flags().IntP("quality", "q", p.GenQuality, "JPEG quality 1-100")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, map[string]string{
		"asset_dir":    "assets",
		"total_images": "count",
		"width":        "width",
		"height":       "height",
		"font_size":    "font-size",
		"gen_quality":  "quality",
	})
	if err != nil {
		return err
	}

	p := profile.Default()
	_, err = placeholder.Generate(placeholder.Options{
		Dir:        cfg.AssetDir,
		Count:      cfg.TotalImages,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Saturation: p.Saturation,
		Value:      p.Value,
		FontSize:   cfg.FontSize,
		Quality:    cfg.GenQuality,
		Logger:     log.Logger,
	})
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	return nil
}
