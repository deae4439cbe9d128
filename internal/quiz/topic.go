// Package quiz holds the catalogs of cloud service topics shown behind the
// block field, and answer checking.
package quiz

import (
	"errors"
	"fmt"
)

// MaxCandidates is the number of answer buttons the quiz screen can lay out.
const MaxCandidates = 4

// Validation errors returned by Topic.Validate.
var (
	ErrTooFewCandidates  = errors.New("quiz: topic needs at least two candidates")
	ErrTooManyCandidates = fmt.Errorf("quiz: topic has more than %d candidates", MaxCandidates)
	ErrAnswerNotOffered  = errors.New("quiz: correct answer is not among the candidates")
	ErrDuplicateChoice   = errors.New("quiz: duplicate candidate")
)

// Topic is one quiz subject: the image hidden behind the blocks, the prompt,
// and the candidate answers.
type Topic struct {
	ID         string   `yaml:"id"`
	Image      string   `yaml:"image"`
	Prompt     string   `yaml:"prompt"`
	Answer     string   `yaml:"answer"`
	Candidates []string `yaml:"candidates"`
}

// Validate checks that the candidates form a set of 2..MaxCandidates entries
// containing the answer exactly once.
func (t Topic) Validate() error {
	if t.ID == "" {
		return errors.New("quiz: topic without id")
	}
	if len(t.Candidates) < 2 {
		return fmt.Errorf("%w (topic %q)", ErrTooFewCandidates, t.ID)
	}
	if len(t.Candidates) > MaxCandidates {
		return fmt.Errorf("%w (topic %q)", ErrTooManyCandidates, t.ID)
	}

	seen := make(map[string]bool, len(t.Candidates))
	for _, c := range t.Candidates {
		if seen[c] {
			return fmt.Errorf("%w %q (topic %q)", ErrDuplicateChoice, c, t.ID)
		}
		seen[c] = true
	}
	if !seen[t.Answer] {
		return fmt.Errorf("%w (topic %q)", ErrAnswerNotOffered, t.ID)
	}
	return nil
}

// CheckAnswer reports whether chosen is exactly the topic's correct answer.
func CheckAnswer(t Topic, chosen string) bool {
	return chosen == t.Answer
}
