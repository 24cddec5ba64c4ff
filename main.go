package main

import (
	"flag"

	"github.com/quickchat-dev/envgen/internal/generate"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	envPath := flag.String("env", ".env", "Path to the source env file")
	outPath := flag.String("out", "env.js", "Path to the generated script")
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Info().Str("env", *envPath).Str("out", *outPath).Msg("Starting envgen")

	outcome, err := generate.Run(*envPath, *outPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Generation failed")
	}

	log.Debug().Str("outcome", string(outcome)).Msg("Done")
}
