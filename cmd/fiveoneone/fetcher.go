package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

// readFeed loads a saved GTFS-RT payload from a file, or from stdin for "-".
func readFeed(path string, stdin io.Reader) ([]byte, error) {
	if path == "" {
		return nil, errors.New("no feed file given")
	}
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read feed: %w", err)
	}
	return data, nil
}

func decodeCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:  "decode",
		Usage: "decode a saved GTFS-RT protobuf file without calling the API",
		Flags: append([]cli.Flag{
			&cli.StringFlag{Name: "file", Required: true, Usage: "protobuf file, or - for stdin"},
		}, feedFlags()...),
		Action: func(c *cli.Context) error {
			if err := s.jsonOnly(c.Command.Name); err != nil {
				return err
			}
			data, err := readFeed(c.String("file"), c.App.Reader)
			if err != nil {
				return err
			}
			return s.writeFeed(c, data)
		},
	}
}
