package advisor

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/career-navigator/internal/catalog"
)

// DirectionMatch is one scored career direction.
type DirectionMatch struct {
	Role  catalog.RoleProfile
	Score float64
}

// RecommendDirections scores the user's normalized skills against every
// direction in the table and returns the top candidates, best first. The
// sort is stable, so equal scores keep table order. Interests are logged
// for context but never move the ranking.
func (a *Advisor) RecommendDirections(userSkills, interests []string) []DirectionMatch {
	normalized := a.vocabulary.NormalizeAll(userSkills)

	matches := make([]DirectionMatch, 0, len(a.directions))
	for _, direction := range a.directions {
		matches = append(matches, DirectionMatch{
			Role:  direction,
			Score: a.scoreAgainst(direction.Required, normalized),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	top := a.cfg.TopDirections
	if top > len(matches) {
		top = len(matches)
	}
	matches = matches[:top]

	a.logger.Debug("directions ranked",
		zap.Strings("skills", normalized),
		zap.Strings("interests", interests),
		zap.Int("returned", len(matches)),
	)

	return matches
}

// RecommendDirectionsText is the free-text variant: skills are extracted
// from the user's self-description first.
func (a *Advisor) RecommendDirectionsText(text string) []DirectionMatch {
	return a.RecommendDirections(a.skillsFromText(text), a.extractor.Interests(text))
}

// Render formats the matches for terminal output.
func RenderDirections(matches []DirectionMatch) string {
	if len(matches) == 0 {
		return "No career directions to recommend."
	}

	var b strings.Builder
	b.WriteString("Recommended career directions:\n")
	for i, match := range matches {
		fmt.Fprintf(&b, "\n%d. %s (match %.0f%%)\n", i+1, match.Role.Name, match.Score*100)
		fmt.Fprintf(&b, "   Key skills: %s\n", strings.Join(match.Role.Required, ", "))
	}
	return b.String()
}
