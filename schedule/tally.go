package schedule

import (
	"errors"
	"fmt"

	"availpoll/models"
)

// ErrAnswerCountMismatch means a response's answer list does not line up
// with the current slot sequence.
var ErrAnswerCountMismatch = errors.New("answer count does not match slot count")

// ValidateAnswers accepts a response only if it has exactly one answer per
// current slot. Answers bind to slots by position, so a count mismatch means
// the whole response is unusable: counting any of it would misalign answers
// to the wrong slots.
func ValidateAnswers(answers []string, slotCount int) error {
	if len(answers) != slotCount {
		return fmt.Errorf("%w: got %d answers for %d slots", ErrAnswerCountMismatch, len(answers), slotCount)
	}
	return nil
}

// Mismatch describes one response that was excluded from a tally.
type Mismatch struct {
	Name        string
	AnswerCount int
	SlotCount   int
}

// TallyResult is the aggregated view of all responses against one slot
// sequence. Accepted counts only responses that passed validation; Rejected
// lists the rest for operator diagnostics.
type TallyResult struct {
	Counts   []models.AnswerCounts
	Accepted int
	Rejected []Mismatch
}

// Tally folds responses into per-slot counts of the three answer
// categories. Rejected responses contribute nothing to any counter.
// Unrecognized answer symbols at a position are skipped without error, so
// the three counters at any slot sum to at most Accepted.
func Tally(slotCount int, responses []models.Response) TallyResult {
	result := TallyResult{
		Counts: make([]models.AnswerCounts, slotCount),
	}

	for _, resp := range responses {
		if err := ValidateAnswers(resp.Answers, slotCount); err != nil {
			result.Rejected = append(result.Rejected, Mismatch{
				Name:        resp.Name,
				AnswerCount: len(resp.Answers),
				SlotCount:   slotCount,
			})
			continue
		}

		result.Accepted++
		for i, ans := range resp.Answers {
			switch ans {
			case models.AnswerAvailable:
				result.Counts[i].Available++
			case models.AnswerMaybe:
				result.Counts[i].Maybe++
			case models.AnswerUnavailable:
				result.Counts[i].Unavailable++
			}
		}
	}

	return result
}
