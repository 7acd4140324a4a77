package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kumarlokesh/triedict/internal/api"
	"github.com/kumarlokesh/triedict/internal/config"
	"github.com/kumarlokesh/triedict/internal/dictionary"
	"github.com/kumarlokesh/triedict/internal/trie"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	log.Logger = logger

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid config")
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug || cfg.Server.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	t := trie.New()
	if cfg.Dictionary.Path != "" {
		d, err := dictionary.Load(cfg.Dictionary.Path)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Dictionary.Path).Msg("Failed to load word list")
		}
		words := d.Words()
		for _, w := range words {
			t.Insert(w)
		}
		log.Info().Int("words", len(words)).Str("path", cfg.Dictionary.Path).Msg("Seeded dictionary")
	}

	server := api.NewServer(cfg.Server.Addr(), t, logger)

	serverErrors := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Server.Addr()).Msg("Starting triedict server")
		if err := server.Start(); err != nil {
			serverErrors <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatal().Err(err).Msg("Server error")
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("Received signal, shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	} else {
		log.Info().Msg("Server gracefully stopped")
	}
}
