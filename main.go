package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/isaacjstriker/guessware/games/guess"
	"github.com/isaacjstriker/guessware/internal/config"
	"github.com/isaacjstriker/guessware/internal/logging"
	"github.com/isaacjstriker/guessware/internal/random"
	"github.com/isaacjstriker/guessware/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if !cfg.EnvFileLoaded {
		logger.Debug().Msg("no .env file found, reading from environment")
	}

	src, err := random.NewSource()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to seed random source")
	}

	prompter := ui.NewPrompter(os.Stdin, os.Stdout, cfg.AppName, cfg.PlainPrompts)
	if err := run(cfg, os.Args[1:], prompter, src, os.Stdout, logger); err != nil {
		if errors.Is(err, ui.ErrMenuAborted) {
			fmt.Println("Goodbye!")
			return
		}
		logger.Fatal().Err(err).Msg("game stopped")
	}
}

// run picks the difficulty from args, config or the prompter and plays one session.
func run(cfg *config.Config, args []string, p guess.Prompter, src guess.Source, out io.Writer, logger zerolog.Logger) error {
	d, err := pickDifficulty(cfg, args, p)
	if err != nil {
		return err
	}

	session, err := guess.NewSession(d, src, p, out, logger)
	if err != nil {
		return err
	}

	result, err := session.Play()
	if err != nil {
		return err
	}
	logger.Info().
		Str("difficulty", result.Difficulty.String()).
		Bool("won", result.Won).
		Int("score", result.Score).
		Int("guesses_used", result.GuessesUsed).
		Msg("game complete")
	return nil
}

func pickDifficulty(cfg *config.Config, args []string, p guess.Prompter) (guess.Difficulty, error) {
	switch {
	case len(args) > 0:
		return guess.ParseDifficulty(args[0])
	case cfg.Difficulty != "":
		return guess.ParseDifficulty(cfg.Difficulty)
	}

	d, err := guess.ChooseDifficulty(p)
	if err != nil {
		return 0, fmt.Errorf("failed to choose difficulty: %w", err)
	}
	return d, nil
}
