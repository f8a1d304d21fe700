package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/theoremus-urban-solutions/go-fiveoneone/internal"
)

func main() {
	internal.InitLoggingFromEnv()

	app := newApp(os.Stdout)
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}
