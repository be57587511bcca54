package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/xuning888/seqlist/config"
	"github.com/xuning888/seqlist/internal/script"
	"github.com/xuning888/seqlist/pkg/datastruct/list"
	"github.com/xuning888/seqlist/pkg/logger"
	"github.com/xuning888/seqlist/pkg/util"
)

func main() {
	cfPath := flag.String("c", "", "config file, key value lines or yaml")
	flag.Parse()

	if *cfPath != "" {
		if err := config.SetUpConfig(*cfPath); err != nil {
			log.Fatal(err)
		}
	}
	props := config.Get()

	lg, err := logger.Setup(logger.Options{
		Backend:       props.LogBackend,
		Level:         props.LogLevel,
		LogPath:       props.LogPath,
		TimeFormat:    props.TimeFormat,
		EnableFileLog: props.EnableFileLog,
	})
	if err != nil {
		log.Fatal(err)
	}
	logger.SetDefault(lg)
	defer func() {
		_ = logger.Sync()
	}()

	var src io.Reader = os.Stdin
	if props.Script != "" {
		file, err := os.Open(props.Script)
		if err != nil {
			logger.Errorf("open script %s: %v", props.Script, err)
			os.Exit(1)
		}
		defer util.Close(file)
		src = file
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof("seqlist run %s, config=%s", props.RunID, props.CfPath)
	runner := script.NewRunner(lg, list.WithDebugChecks[string](props.DebugChecks))
	if err := runner.Run(ctx, src, os.Stdout); err != nil {
		logger.Errorf("run script: %v", err)
		os.Exit(1)
	}
}
