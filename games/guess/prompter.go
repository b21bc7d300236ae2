package guess

// Prompter handles interactive user prompts.
type Prompter interface {
	// Select shows label and items and returns the index of the chosen item.
	Select(label string, items []string) (int, error)

	// Number asks until the player enters an integer in [low, high].
	Number(label string, low, high int) (int, error)

	// Confirm asks a yes/no question.
	Confirm(label string) (bool, error)
}

// Source is the randomness provider for secret numbers.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// ChooseDifficulty asks p to pick one of the three tiers.
func ChooseDifficulty(p Prompter) (Difficulty, error) {
	tiers := Difficulties()
	labels := make([]string, len(tiers))
	for i, d := range tiers {
		labels[i] = d.String()
	}

	idx, err := p.Select("Choose a difficulty level:", labels)
	if err != nil {
		return 0, err
	}
	if idx < 0 || idx >= len(tiers) {
		return 0, ErrInvalidDifficulty
	}
	return tiers[idx], nil
}
