// Package scoring holds the pure functions of the assessment pipeline:
// section score aggregation and tier resolution. Nothing here touches
// storage; both are re-run on every submission.
package scoring

import (
	"math"
	"strconv"

	"careercompass/internal/model"
)

// neutralValue is assumed when an answer carries no usable rating.
const neutralValue = 3

// AnswerValue resolves the numeric rating for one answer: the explicit
// Value if set, else an integer parse of the raw answer text, else
// neutral. Out-of-range values are not clamped; the 1-5 scale is an
// upstream assumption, not an enforced one.
func AnswerValue(a model.Answer) int {
	if a.Value != 0 {
		return a.Value
	}
	if v, err := strconv.Atoi(a.Raw); err == nil {
		return v
	}
	return neutralValue
}

// Score normalizes one section's answers to a 0-10 integer: mean on the
// 1-5 scale, rescaled by 10/5, rounded to nearest. An empty section
// scores 0.
func Score(answers []model.Answer) int {
	if len(answers) == 0 {
		return 0
	}
	sum := 0
	for _, a := range answers {
		sum += AnswerValue(a)
	}
	mean := float64(sum) / float64(len(answers))
	return int(math.Round(mean / 5.0 * 10.0))
}

// Aggregates computes the score of every section the tier requires,
// whether or not this request touched it. Sections with no stored
// answers aggregate to 0.
func Aggregates(rec *model.TestRecord, tier model.Tier) map[string]int {
	agg := make(map[string]int, len(model.TierSections[tier]))
	for _, name := range model.TierSections[tier] {
		score := 0
		if rec != nil {
			if sec, ok := rec.Sections[name]; ok {
				score = Score(sec.Answers)
			}
		}
		agg[name] = score
	}
	return agg
}
