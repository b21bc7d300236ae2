package guess

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Difficulty controls the number range and the guesses a session starts with.
type Difficulty int

const (
	Easy   Difficulty = 1
	Medium Difficulty = 2
	Hard   Difficulty = 3
)

var ErrInvalidDifficulty = errors.New("invalid difficulty")

// Difficulties returns every tier in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

// Valid reports whether d is one of the three tiers.
func (d Difficulty) Valid() bool {
	return d >= Easy && d <= Hard
}

// MaxNumber is the inclusive upper bound of the secret number.
func (d Difficulty) MaxNumber() int {
	return int(d) * 10
}

// InitialGuesses is the number of guesses a session starts with.
func (d Difficulty) InitialGuesses() int {
	return int(d) * 2
}

// ParseDifficulty accepts a tier name (any case) or its value 1-3.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		d := Difficulty(n)
		if !d.Valid() {
			return 0, fmt.Errorf("%w: %d", ErrInvalidDifficulty, n)
		}
		return d, nil
	}
	for _, d := range Difficulties() {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
}
