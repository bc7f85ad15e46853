package advisor

import (
	"go.uber.org/zap"

	"github.com/spigell/career-navigator/internal/skills"
)

// AdviceEntry is one canned advice block keyed by topic.
type AdviceEntry struct {
	Topic string
	Text  string
}

// AdviceBase is the advice knowledge base: topic-keyed entries plus the
// fallback returned when no topic is close enough to the question.
type AdviceBase struct {
	Entries  []AdviceEntry
	Fallback string
}

// DefaultAdviceBase returns the built-in advice blocks.
func DefaultAdviceBase() *AdviceBase {
	return &AdviceBase{
		Entries: []AdviceEntry{
			{
				Topic: "career start",
				Text: "Starting out:\n" +
					"- Pick one direction and learn its base stack deeply before branching out.\n" +
					"- Build two or three pet projects and publish them; they substitute for experience.\n" +
					"- Apply to internships and junior openings early, even before you feel ready.\n" +
					"- Read job postings for your target role and close the skill gaps they repeat.",
			},
			{
				Topic: "career change",
				Text: "Changing careers:\n" +
					"- Map which of your current skills transfer to the new field and lead with them.\n" +
					"- Retrain through a focused course sequence rather than scattered tutorials.\n" +
					"- Do a side project in the new field while still employed to test the fit.\n" +
					"- Expect a temporary step down in seniority and plan finances for it.",
			},
			{
				Topic: "professional growth",
				Text: "Growing professionally:\n" +
					"- Ask for concrete feedback after every project and act on one item at a time.\n" +
					"- Take ownership of something end to end; scope grows from demonstrated reliability.\n" +
					"- Teach what you know: mentoring and talks compound your own understanding.\n" +
					"- Revisit your skill profile twice a year against current vacancy requirements.",
			},
		},
		Fallback: "I can help with questions about starting a career, changing careers, or professional growth. " +
			"Try asking about one of those, or use the matching commands for vacancies and learning plans.",
	}
}

// GetAdvice picks the advice entry whose topic is most similar to the
// question. When even the best topic stays at or below the threshold the
// fallback text is returned. Ties keep the first entry, so the answer is
// deterministic.
func (a *Advisor) GetAdvice(question string) string {
	best := -1
	bestScore := 0.0

	for i, entry := range a.advice.Entries {
		score := skills.Similarity(question, entry.Topic)
		if score > bestScore {
			best = i
			bestScore = score
		}
	}

	a.logger.Debug("advice lookup",
		zap.Float64("best_score", bestScore),
		zap.Bool("fallback", best == -1 || bestScore <= a.cfg.AdviceThreshold),
	)

	if best == -1 || bestScore <= a.cfg.AdviceThreshold {
		return a.advice.Fallback
	}
	return a.advice.Entries[best].Text
}
