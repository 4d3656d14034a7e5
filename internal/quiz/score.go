// Package quiz runs an interest quiz and turns its answers into ranked
// stream recommendations.
package quiz

import (
	"cmp"
	"slices"

	"career-passport/internal/domain"
	"career-passport/internal/util"
)

// TopN is the number of recommendations shown on the results screen.
const TopN = 3

// Score totals the weights of answers per known stream and ranks every
// stream by descending score. Ties keep the declaration order of streams.
// Weights for streams outside the set are dropped.
func Score(answers []domain.Answer, streams domain.StreamSet) []domain.StreamScore {
	ids := streams.IDs()
	totals := make(map[string]int, len(ids))
	for _, id := range ids {
		totals[id] = 0
	}

	for _, a := range answers {
		for id, w := range a.SelectedOption.Weight {
			if _, known := totals[id]; !known {
				continue
			}
			totals[id] += w
		}
	}

	maxScore := 0
	for _, id := range ids {
		maxScore = max(maxScore, totals[id])
	}

	scores := make([]domain.StreamScore, 0, len(ids))
	for _, id := range ids {
		stream, _ := streams.Get(id)
		scores = append(scores, domain.StreamScore{
			StreamID:   id,
			Stream:     stream,
			Score:      totals[id],
			Percentage: util.RoundPercent(totals[id], maxScore),
		})
	}

	slices.SortStableFunc(scores, func(a, b domain.StreamScore) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return scores
}

// Recommend returns the TopN entries of Score.
func Recommend(answers []domain.Answer, streams domain.StreamSet) []domain.StreamScore {
	scores := Score(answers, streams)
	if len(scores) > TopN {
		scores = scores[:TopN]
	}
	return scores
}
