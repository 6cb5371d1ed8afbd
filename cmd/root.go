package cmd

import (
	"fmt"
	"runtime"

	"github.com/AnyUserName/assetprep-cli/internal/config"
	"github.com/AnyUserName/assetprep-cli/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	version    = "0.1.0"
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "assetprep",
	Short: "Prepare the indexed JPEG slots a front-end preloads",
	Long: `assetprep manages a directory of img_0.jpg … img_{N-1}.jpg assets.

Typical order: generate placeholders, later import real photos over them,
then optimize anything wider than the maximum width. Every flag defaults
to the built-in constants, so the bare subcommands need no configuration.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logging.Init(cmd.OutOrStdout(), verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: ./assetprep.toml if present)")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"assetprep %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// loadConfig resolves the run configuration, letting the named flags of cmd
// override the config keys they are mapped to.
func loadConfig(cmd *cobra.Command, keys map[string]string) (*config.Config, error) {
	flags := make(map[string]*pflag.Flag, len(keys))
	for key, name := range keys {
		flags[key] = cmd.Flags().Lookup(name)
	}
	return config.Load(configPath, flags)
}
