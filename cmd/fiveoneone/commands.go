package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	fiveoneone "github.com/theoremus-urban-solutions/go-fiveoneone"
	"github.com/theoremus-urban-solutions/go-fiveoneone/formatter"
	"github.com/theoremus-urban-solutions/go-fiveoneone/gtfsrt"
	"github.com/theoremus-urban-solutions/go-fiveoneone/value"
)

// jsonOnly rejects --format csv for commands whose result is a tree.
func (s *session) jsonOnly(name string) error {
	if s.cfg.Output.Format == "csv" {
		return fmt.Errorf("%s: %w", name, formatter.ErrNotTabular)
	}
	return nil
}

func (s *session) writeValue(name string, v value.Value, err error) error {
	if err != nil {
		return err
	}
	if err := s.jsonOnly(name); err != nil {
		return err
	}
	return s.writeJSON(v)
}

func gtfsOperatorsCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:  "gtfs-operators",
		Usage: "operators with a downloadable GTFS dataset",
		Action: func(c *cli.Context) error {
			v, err := s.client.GTFSOperators(c.Context)
			return s.writeValue(c.Command.Name, v, err)
		},
	}
}

func feedsCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:  "feeds",
		Usage: "GTFS feed listing for an operator",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "operator", Required: true, Usage: "operator id"},
		},
		Action: func(c *cli.Context) error {
			v, err := s.client.GTFSFeedList(c.Context, c.String("operator"))
			return s.writeValue(c.Command.Name, v, err)
		},
	}
}

func feedDownloadCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:  "feed-download",
		Usage: "download an operator's GTFS feed ZIP",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "operator", Required: true, Usage: "operator id"},
			&cli.StringFlag{Name: "dest", Usage: "target file; .zip is appended when missing"},
			&cli.StringFlag{Name: "month", Usage: "historic feed month (MM)"},
			&cli.StringFlag{Name: "year", Usage: "historic feed year (YYYY)"},
		},
		Action: func(c *cli.Context) error {
			operator := c.String("operator")
			path, err := s.client.GTFSFeedDownload(c.Context, operator, c.String("dest"), c.String("month"), c.String("year"))
			if err != nil {
				return err
			}
			log.Info().Str("operator", operator).Str("path", path).Msg("feed downloaded")
			return s.writeJSON(map[string]string{"operator": operator, "path": path})
		},
	}
}

func stopTimetableCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:  "stop-timetable",
		Usage: "scheduled departures at a stop",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "operator", Required: true, Usage: "operator id"},
			&cli.StringFlag{Name: "stop", Required: true, Usage: "stop id"},
		},
		Action: func(c *cli.Context) error {
			v, err := s.client.ScheduledDeparturesAtStop(c.Context, c.String("operator"), c.String("stop"))
			return s.writeValue(c.Command.Name, v, err)
		},
	}
}

func operatorsCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:  "operators",
		Usage: "all operators known to the API",
		Action: func(c *cli.Context) error {
			if s.cfg.Output.Format == "csv" {
				ops, err := s.client.OperatorList(c.Context)
				if err != nil {
					return err
				}
				return formatter.WriteCSV(s.out, ops)
			}
			v, err := s.client.Operators(c.Context)
			return s.writeValue(c.Command.Name, v, err)
		},
	}
}

func stopMonitoringCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:  "stop-monitoring",
		Usage: "real-time arrival predictions",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "agency", Required: true, Usage: "agency id"},
			&cli.StringFlag{Name: "stopcode", Usage: "limit to one stop"},
		},
		Action: func(c *cli.Context) error {
			v, err := s.client.StopMonitoring(c.Context, c.String("agency"), c.String("stopcode"))
			return s.writeValue(c.Command.Name, v, err)
		},
	}
}

func feedFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "raw-timestamps", Usage: "keep epoch seconds"},
		&cli.BoolFlag{Name: "summary", Usage: "print entity counts instead of the feed"},
	}
}

func realtimeCommand(s *session, name, usage string, kind gtfsrt.Kind) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Flags: append([]cli.Flag{
			&cli.StringFlag{Name: "agency", Required: true, Usage: "agency id"},
		}, feedFlags()...),
		Action: func(c *cli.Context) error {
			if err := s.jsonOnly(name); err != nil {
				return err
			}
			data, err := s.client.RealtimeBytes(c.Context, kind, c.String("agency"))
			if err != nil {
				return err
			}
			return s.writeFeed(c, data)
		},
	}
}

// kindNames lists the accepted --kind values for help output.
func kindNames() string {
	names := make([]string, 0, len(gtfsrt.Kinds))
	for _, k := range gtfsrt.Kinds {
		names = append(names, string(k))
	}
	return strings.Join(names, "|")
}

func genericRealtimeCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:  "realtime",
		Usage: "any GTFS-RT feed for an agency, selected by --kind",
		Flags: append([]cli.Flag{
			&cli.StringFlag{Name: "kind", Required: true, Usage: kindNames()},
			&cli.StringFlag{Name: "agency", Required: true, Usage: "agency id"},
		}, feedFlags()...),
		Action: func(c *cli.Context) error {
			kind, err := gtfsrt.ParseKind(c.String("kind"))
			if err != nil {
				return err
			}
			if err := s.jsonOnly(c.Command.Name); err != nil {
				return err
			}
			data, err := s.client.RealtimeBytes(c.Context, kind, c.String("agency"))
			if err != nil {
				return err
			}
			return s.writeFeed(c, data)
		},
	}
}

// writeFeed renders a raw GTFS-RT payload according to the feed flags.
func (s *session) writeFeed(c *cli.Context, data []byte) error {
	if c.Bool("summary") {
		fm, err := gtfsrt.Parse(data)
		if err != nil {
			return &fiveoneone.DecodeError{Format: "protobuf", Err: err}
		}
		return s.writeJSON(gtfsrt.Summarize(fm))
	}

	convert := s.cfg.Client.TimestampConversion() && !c.Bool("raw-timestamps")
	v, err := fiveoneone.DecodeFeedMessage(data, fiveoneone.WithTimestampConversion(convert))
	if err != nil {
		return err
	}
	return s.writeJSON(v)
}
