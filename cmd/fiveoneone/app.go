package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	fiveoneone "github.com/theoremus-urban-solutions/go-fiveoneone"
	"github.com/theoremus-urban-solutions/go-fiveoneone/config"
	"github.com/theoremus-urban-solutions/go-fiveoneone/formatter"
	"github.com/theoremus-urban-solutions/go-fiveoneone/gtfsrt"
)

// session is built once per invocation by the Before hook.
type session struct {
	cfg    config.AppConfig
	client *fiveoneone.Client
	out    io.Writer
}

func (s *session) writeJSON(res any) error {
	return formatter.NewResponseBuilder(s.cfg.Output.Indent).WriteJSON(s.out, res)
}

func newApp(out io.Writer) *cli.App {
	s := &session{out: out}

	return &cli.App{
		Name:   "fiveoneone",
		Usage:  "query the 511.org transit API",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "YAML configuration file",
			},
			&cli.StringFlag{
				Name:    "api-key",
				Usage:   "511 API key",
				EnvVars: []string{config.APIKeyEnv},
			},
			&cli.StringFlag{
				Name:  "base-url",
				Usage: "API root",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "output format: json|csv",
			},
			&cli.BoolFlag{
				Name:  "indent",
				Usage: "indent JSON output",
			},
		},
		Before: func(c *cli.Context) error {
			return s.setup(c)
		},
		Commands: []*cli.Command{
			gtfsOperatorsCommand(s),
			feedsCommand(s),
			feedDownloadCommand(s),
			stopTimetableCommand(s),
			operatorsCommand(s),
			stopMonitoringCommand(s),
			realtimeCommand(s, "trip-updates", "GTFS-RT trip updates for an agency", gtfsrt.KindTripUpdates),
			realtimeCommand(s, "vehicle-positions", "GTFS-RT vehicle positions for an agency", gtfsrt.KindVehiclePositions),
			realtimeCommand(s, "service-alerts", "GTFS-RT service alerts for an agency", gtfsrt.KindServiceAlerts),
			genericRealtimeCommand(s),
			decodeCommand(s),
		},
	}
}

func (s *session) setup(c *cli.Context) error {
	var paths []string
	if p := c.String("config"); p != "" {
		paths = []string{p}
	}
	cfg, err := config.LoadAppConfig(paths...)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if c.IsSet("api-key") {
		cfg.Client.APIKey = c.String("api-key")
	}
	if c.IsSet("base-url") {
		cfg.Client.BaseURL = c.String("base-url")
	}
	if c.IsSet("format") {
		cfg.Output.Format = c.String("format")
	}
	if c.IsSet("indent") {
		cfg.Output.Indent = c.Bool("indent")
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	cfg.Client.ApplyDefaults()

	s.cfg = cfg
	s.client = fiveoneone.NewClient(cfg.Client)

	log.Debug().Str("base_url", s.client.BaseURL()).Str("format", cfg.Output.Format).Msg("client ready")
	return nil
}
