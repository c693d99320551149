
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"brightedge-url-classifier/internal/app"
	"brightedge-url-classifier/internal/config"
	"brightedge-url-classifier/internal/ioformats"
	"brightedge-url-classifier/internal/models"
	"brightedge-url-classifier/pkg/logger"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if cfg == nil {
		return
	}
	if cfg.Input == "" {
		fmt.Fprintln(os.Stderr, "missing --input")
		os.Exit(2)
	}

	l := logger.NewWithConfig(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	urls, err := ioformats.ReadURLs(cfg.Input)
	if err != nil {
		l.Errorf("read input: %v", err)
		os.Exit(1)
	}
	a, err := app.Build(cfg, l)
	if err != nil {
		l.Errorf("startup: %v", err)
		os.Exit(1)
	}

	var w io.Writer = os.Stdout
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			l.Errorf("create output: %v", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l.Infof("classifying %d urls from %s", len(urls), cfg.Input)
	if err := run(ctx, a, urls, cfg.Format, w); err != nil {
		l.Errorf("classify: %v", err)
		os.Exit(1)
	}
	l.Infof("finished %d urls", len(urls))
}

func run(ctx context.Context, a *app.App, urls []string, format string, w io.Writer) error {
	if format == string(ioformats.NDJSON) {
		results, err := a.Pipeline.ClassifyAll(ctx, urls)
		if werr := ioformats.WriteNDJSON(w, results); werr != nil {
			return werr
		}
		return err
	}

	rw := ioformats.NewResultWriter(w)
	err := a.Pipeline.Run(ctx, urls, func(r models.Result) error { return rw.Write(r) })
	if cerr := rw.Close(); err == nil {
		err = cerr
	}
	return err
}
