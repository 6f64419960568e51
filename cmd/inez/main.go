// Copyright 2026 Wes Koerber.
// SPDX-License-Identifier: BSD-3-Clause

// Command inez loads an INI document from a file or a WebSocket stream and
// prints the value of one key.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"zombiezen.com/go/log"

	"github.com/weskoerber/inez"
	"github.com/weskoerber/inez/envvar"
	"github.com/weskoerber/inez/retry"
	"github.com/weskoerber/inez/wsio"
)

const dialTimeout = 30 * time.Second

var cli struct {
	Debug bool   `help:"Enable debug logging."`
	Get   getCmd `cmd:"" default:"withargs" help:"Print the value of one key."`
}

type getCmd struct {
	Source      string `arg:"" help:"Path to an INI file, or a ws:// or wss:// URL to stream one from."`
	Section     string `arg:"" help:"Section name."`
	Key         string `arg:"" help:"Property key."`
	MaxReadSize int    `help:"Largest source size accepted, in bytes." default:"${max_read_size}"`
}

func (c *getCmd) Run(ctx context.Context) error {
	s := inez.NewSession(&inez.Options{MaxReadSize: c.MaxReadSize})
	defer s.Close()
	if err := load(ctx, s, c.Source); err != nil {
		return err
	}
	doc, err := s.Parse()
	if err != nil {
		return fmt.Errorf("%s: %w", c.Source, err)
	}
	defer doc.Close()
	v, err := doc.Get(c.Section, c.Key)
	if errors.Is(err, inez.ErrNotFound) {
		return fmt.Errorf("%s: no key %q in section %q", c.Source, c.Key, c.Section)
	}
	if err != nil {
		return err
	}
	fmt.Println(v)
	return nil
}

func load(ctx context.Context, s *inez.Session, source string) error {
	if !strings.HasPrefix(source, "ws://") && !strings.HasPrefix(source, "wss://") {
		return s.LoadFile(source)
	}
	ctx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()
	src, err := wsio.Dial(ctx, source, &retry.Exponential{
		Initial: 250 * time.Millisecond,
		Max:     5 * time.Second,
	})
	if err != nil {
		return err
	}
	defer src.Close()
	return s.LoadStream(src)
}

func main() {
	ctx := context.Background()
	maxReadSize := envvar.Int("INEZ_MAX_READ_SIZE", inez.DefaultMaxReadSize)
	ktx := kong.Parse(&cli,
		kong.Name("inez"),
		kong.Description("Query values from INI configuration files."),
		kong.UsageOnError(),
		kong.Vars{"max_read_size": strconv.Itoa(maxReadSize)},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	minLevel := log.Info
	if cli.Debug {
		minLevel = log.Debug
	}
	log.SetDefault(&log.LevelFilter{
		Min:    minLevel,
		Output: log.New(os.Stderr, "inez: ", log.StdFlags, nil),
	})
	if err := ktx.Run(); err != nil {
		log.Errorf(ctx, "%v", err)
		os.Exit(1)
	}
}
