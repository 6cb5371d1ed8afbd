package cmd

import (
	"fmt"
	"io"

	"github.com/AnyUserName/assetprep-cli/internal/manifest"
	"github.com/AnyUserName/assetprep-cli/internal/profile"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats [asset_dir]",
	Short: "Display statistics for an asset directory",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStats,
}

func init() {
	p := profile.Default()
	statsCmd.Flags().Int("count", p.TotalImages, "number of expected slots")
	statsCmd.Flags().Bool("json", false, "print the report as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, map[string]string{"total_images": "count"})
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

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return manifest.WriteJSON(r, out)
	}
	printStats(out, r)
	return nil
}

func printStats(w io.Writer, r *manifest.Report) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Directory:        %s\n", r.Dir)
	fmt.Fprintf(w, "  Expected slots:   %d\n", r.Expected)
	fmt.Fprintf(w, "  Present:          %d\n", r.Stats.Present)
	fmt.Fprintf(w, "  Missing:          %d\n", r.Stats.Missing)
	fmt.Fprintf(w, "  Invalid:          %d\n", r.Stats.Invalid)
	fmt.Fprintf(w, "  Duplicates:       %d\n", r.Stats.Duplicates)
	fmt.Fprintf(w, "  Total size:       %s\n", formatBytes(r.Stats.TotalBytes))
	fmt.Fprintln(w)

	// Per-resolution breakdown.
	dims := map[string]int{}
	var order []string
	withDate := 0
	for _, s := range r.Slots {
		if !s.Present || s.Error != "" {
			continue
		}
		key := fmt.Sprintf("%dx%d", s.Width, s.Height)
		if dims[key] == 0 {
			order = append(order, key)
		}
		dims[key]++
		if s.TakenAt != "" {
			withDate++
		}
	}
	if len(order) > 0 {
		fmt.Fprintln(w, "  Resolutions:")
		for _, key := range order {
			fmt.Fprintf(w, "    %-11s %4d files\n", key, dims[key])
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "  EXIF capture dates: %d / %d present\n", withDate, r.Stats.Present)

	if len(r.Strays) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  Other files (%d):\n", len(r.Strays))
		for _, name := range r.Strays {
			fmt.Fprintf(w, "    %s\n", name)
		}
	}
	fmt.Fprintln(w)
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
