package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/Bnei-Baruch/udpserial-panel/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("udpserial-panel")
		os.Exit(1)
	}
}
