package guess

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

var ErrGuessOutOfRange = errors.New("guess out of range")

// GameResult represents the outcome of a single session
type GameResult struct {
	Difficulty  Difficulty `json:"difficulty"`
	Secret      int        `json:"secret"`
	Score       int        `json:"score"`
	Won         bool       `json:"won"`
	GuessesUsed int        `json:"guesses_used"`
	Remaining   int        `json:"remaining"`
}

// Session is one round of the guessing game.
type Session struct {
	difficulty Difficulty
	secret     int
	remaining  int
	score      int
	used       int

	prompter Prompter
	out      io.Writer
	log      zerolog.Logger
}

// GenerateSecret returns a uniformly random integer in [1, d.MaxNumber()].
func GenerateSecret(d Difficulty, src Source) int {
	return src.Intn(d.MaxNumber()) + 1
}

// NewSession draws the secret number and prepares a session for d.
func NewSession(d Difficulty, src Source, p Prompter, out io.Writer, logger zerolog.Logger) (*Session, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDifficulty, int(d))
	}
	if src == nil || p == nil {
		return nil, errors.New("random source and prompter are required")
	}
	if out == nil {
		out = io.Discard
	}

	return &Session{
		difficulty: d,
		secret:     GenerateSecret(d, src),
		remaining:  d.InitialGuesses(),
		prompter:   p,
		out:        out,
		log:        logger.With().Str("difficulty", d.String()).Logger(),
	}, nil
}

func (s *Session) Difficulty() Difficulty { return s.difficulty }
func (s *Session) Remaining() int         { return s.remaining }
func (s *Session) Score() int             { return s.score }

// Hint discloses the parity of the secret number.
func (s *Session) Hint() string {
	if s.secret%2 == 0 {
		return "Hint: The secret number is even."
	}
	return "Hint: The secret number is odd."
}

// recordWin must run exactly once, on the correct guess.
func (s *Session) recordWin() {
	s.score += s.remaining * 10
}

// Play runs the guess loop until the player wins or runs out of guesses.
// A returned error means the prompter could not provide input.
func (s *Session) Play() (*GameResult, error) {
	maxNumber := s.difficulty.MaxNumber()

	fmt.Fprintln(s.out, "Welcome to the Enhanced Guessing Game!")
	fmt.Fprintf(s.out, "I have selected a number between 1 and %d. Can you guess it?\n", maxNumber)
	s.log.Debug().Int("guesses", s.remaining).Msg("session started")

	for s.remaining > 0 {
		guess, err := s.readGuess()
		if err != nil {
			return nil, err
		}
		s.used++

		if guess == s.secret {
			s.recordWin()
			fmt.Fprintln(s.out, "Congratulations! You guessed the correct number.")
			fmt.Fprintf(s.out, "Your score: %d\n", s.score)
			s.log.Debug().Int("secret", s.secret).Int("score", s.score).Msg("session won")
			return s.result(true), nil
		}

		s.remaining--
		fmt.Fprintf(s.out, "Incorrect guess. %d %s left.\n", s.remaining, pluralGuess(s.remaining))
		s.log.Debug().Int("guess", guess).Int("remaining", s.remaining).Msg("wrong guess")

		wantHint, err := s.prompter.Confirm("Do you want a hint?")
		if err != nil {
			return nil, fmt.Errorf("failed to read hint answer: %w", err)
		}
		if wantHint {
			fmt.Fprintln(s.out, s.Hint())
			s.log.Debug().Msg("hint given")
		}
	}

	fmt.Fprintf(s.out, "Sorry, you've run out of guesses. The correct number was %d.\n", s.secret)
	// score only moves on a win, so this always reports 0
	fmt.Fprintf(s.out, "Your final score: %d\n", s.score)
	s.log.Debug().Int("secret", s.secret).Msg("session lost")
	return s.result(false), nil
}

// readGuess asks until the prompter hands back a value inside the range.
// Rejected values do not count as attempts.
func (s *Session) readGuess() (int, error) {
	maxNumber := s.difficulty.MaxNumber()
	label := fmt.Sprintf("Enter your guess (1-%d):", maxNumber)

	for {
		n, err := s.prompter.Number(label, 1, maxNumber)
		if err != nil {
			return 0, fmt.Errorf("failed to read guess: %w", err)
		}
		if err := ValidateGuess(n, s.difficulty); err != nil {
			s.log.Debug().Err(err).Int("guess", n).Msg("guess rejected")
			continue
		}
		return n, nil
	}
}

// ValidateGuess checks that n lies in [1, d.MaxNumber()].
func ValidateGuess(n int, d Difficulty) error {
	if n < 1 || n > d.MaxNumber() {
		return fmt.Errorf("%w: %d not in 1-%d", ErrGuessOutOfRange, n, d.MaxNumber())
	}
	return nil
}

func (s *Session) result(won bool) *GameResult {
	return &GameResult{
		Difficulty:  s.difficulty,
		Secret:      s.secret,
		Score:       s.score,
		Won:         won,
		GuessesUsed: s.used,
		Remaining:   s.remaining,
	}
}

func pluralGuess(n int) string {
	if n == 1 {
		return "guess"
	}
	return "guesses"
}
