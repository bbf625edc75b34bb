package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/emfield/app"
	"github.com/AnkushinDaniil/emfield/entity/format"
	"github.com/AnkushinDaniil/emfield/entity/mode"
	"github.com/AnkushinDaniil/emfield/entity/parameters"
)

func main() {
	params := parameters.Default()

	flag.Func("m", "mode: d (demo) or s (distance sweep)", func(s string) error {
		m, err := mode.UnmarshalText(s)
		params.Mode = m
		return err
	})
	flag.Func("f", "sweep output format: html or csv", func(s string) error {
		f, err := format.UnmarshalText(s)
		params.Format = f
		return err
	})
	output := flag.String("o", "", "sweep output file (default Fields.<format>)")
	config := flag.String("c", "", "YAML parameters file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	if *config != "" {
		if err := params.LoadFile(*config); err != nil {
			log.WithField("file", *config).Fatal(err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.New(*output, params, os.Stdout).Run(ctx); err != nil {
		log.Fatal(err)
	}
}
