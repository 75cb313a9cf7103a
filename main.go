package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hyperchess/engine"
	"hyperchess/game"
	"hyperchess/matchlog"
	"hyperchess/meta"
	"hyperchess/server"
)

func main() {
	players := flag.Int("players", meta.DEFAULT_PLAYERS, "Number of players (2-4)")
	dims := flag.String("dims", "", "Axis sizes as comma-separated integers, e.g. 8,8,8,8")
	configPath := flag.String("config", "", "Path to a YAML config file")
	serve := flag.Bool("serve", false, "Expose the match over HTTP instead of the prompt loop")
	listen := flag.String("listen", meta.DEFAULT_LISTEN, "Listen address for --serve")
	logDir := flag.String("log-dir", "", "Directory to record the match transcript under")
	debug := flag.Bool("debug", false, "Log at debug level")
	flag.Parse()

	cfg := DefaultConfig()
	if *configPath != "" {
		loaded, err := LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Msgf("%v", err)
		}
		cfg = loaded
	}
	// Flags given explicitly win over the config file.
	var flagErr error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "players":
			cfg.Players = *players
		case "dims":
			cfg.Dims, flagErr = game.ParseDims(*dims)
		case "serve":
			cfg.Serve = *serve
		case "listen":
			cfg.Listen = *listen
		case "log-dir":
			cfg.LogDir = *logDir
		case "debug":
			cfg.Debug = *debug
		}
	})
	if flagErr != nil {
		log.Fatal().Msgf("bad --dims: %v", flagErr)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := run(cfg); err != nil {
		log.Fatal().Msgf("%v", err)
	}
}

func run(cfg Config) error {
	state, err := game.NewGame(cfg.Players, cfg.Dims)
	if err != nil {
		return err
	}
	eng := engine.New(state)
	log.Info().Msgf("new game: %d players on a %s board", cfg.Players, cfg.Dims)

	if cfg.LogDir != "" {
		writer, err := matchlog.NewWriter(cfg.LogDir)
		if err != nil {
			return err
		}
		log.Info().Msgf("recording transcript under %s", writer.Dir())
		go recordUpdates(writer, eng.Updates())
	}

	if cfg.Serve {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.New(eng).Run(ctx, cfg.Listen)
	}
	return runCLI(eng, os.Stdin, os.Stdout)
}

// recordUpdates follows one update feed until the game ends and writes
// every accepted action to the transcript.
func recordUpdates(w *matchlog.Writer, updates <-chan engine.Update) {
	defer func() {
		if err := w.Close(); err != nil {
			log.Error().Msgf("failed to close transcript: %v", err)
		}
	}()
	for up := range updates {
		if err := w.WriteAction(up.Delta); err != nil {
			log.Error().Msgf("failed to record action %d: %v", up.Delta.Seq, err)
		}
		if up.Delta.Result != nil {
			if err := w.WriteResult(up.Delta.Result, up.Delta.Seq); err != nil {
				log.Error().Msgf("failed to record result: %v", err)
			}
		}
	}
}
