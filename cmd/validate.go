package cmd

import (
	"fmt"

	"github.com/AnyUserName/assetprep-cli/internal/manifest"
	"github.com/AnyUserName/assetprep-cli/internal/profile"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [asset_dir]",
	Short: "Check that every slot the front-end loads is present and decodable",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runValidate,
}

func init() {
	p := profile.Default()
	validateCmd.Flags().Int("count", p.TotalImages, "number of expected slots")
	validateCmd.Flags().Int("max-width", p.MaxWidth, "warn about images wider than this")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, map[string]string{
		"total_images": "count",
		"max_width":    "max-width",
	})
	if err != nil {
		return err
	}
	dir := cfg.AssetDir
	if len(args) == 1 {
		dir = args[0]
	}

	r, err := manifest.Scan(dir, cfg.TotalImages)
	if err != nil {
		return err
	}
	errs, warnings := r.Problems(cfg.MaxWidth)

	out := cmd.OutOrStdout()
	for _, w := range warnings {
		fmt.Fprintf(out, "  ⚠ %s\n", w)
	}
	if len(errs) == 0 {
		fmt.Fprintln(out, "  ✓ Asset directory is valid")
		fmt.Fprintf(out, "  ✓ %d slots present and decodable\n", r.Stats.Present)
		return nil
	}

	fmt.Fprintf(out, "  ✗ Asset directory has %d error(s):\n", len(errs))
	for _, e := range errs {
		fmt.Fprintf(out, "    • %s\n", e)
	}
	return fmt.Errorf("validation failed with %d errors", len(errs))
}
