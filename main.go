package main

import (
	"os"

	"github.com/AnyUserName/assetprep-cli/cmd"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("assetprep failed")
		os.Exit(1)
	}
}
