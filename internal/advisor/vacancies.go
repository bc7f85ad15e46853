package advisor

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/career-navigator/internal/catalog"
	"github.com/spigell/career-navigator/internal/skills"
)

// NoVacanciesMessage is returned when nothing in the catalog passes the
// experience gate and the score threshold.
const NoVacanciesMessage = "No suitable vacancies found. Try broadening your skill list or reloading the catalog."

// seniorTierMarkers flag vacancies addressed to experienced candidates.
// The hh.ru dump carries experience as free text, mostly Russian.
var seniorTierMarkers = []string{
	"от 3 до 6 лет", "более 6 лет", "3-6 years", "senior",
}

// entryLevelMarkers flag a user asking for entry-level positions.
var entryLevelMarkers = []string{
	"no experience", "нет опыта", "без опыта", "beginner",
}

// VacancyMatch is one vacancy with its skill overlap score.
type VacancyMatch struct {
	Vacancy *catalog.Vacancy
	Score   float64
}

// VacancyMatches is the result of a matching run. When nothing passes the
// filters, NoMatches is set and Message carries the explanation; Items is
// never populated in that case.
type VacancyMatches struct {
	Items     []*VacancyMatch
	NoMatches bool
	Message   string
}

// MatchVacancies filters the current vacancy snapshot in three stages:
// the experience hard gate, the overlap score threshold, and the top-N
// cut on the stable score ranking. userSkills may be raw surface forms;
// they are normalized first.
func (a *Advisor) MatchVacancies(userSkills []string, experienceLevel string) *VacancyMatches {
	normalized := a.vocabulary.NormalizeAll(userSkills)
	all := a.store.Snapshot().Vacancies.Items

	eligible := make([]*catalog.Vacancy, 0, len(all))
	for _, vacancy := range all {
		if a.passesExperienceGate(vacancy, experienceLevel) {
			eligible = append(eligible, vacancy)
		}
	}

	a.logger.Debug("experience gate",
		zap.Int("initial", len(all)),
		zap.Int("dropped", len(all)-len(eligible)),
		zap.Int("left", len(eligible)),
	)

	scored := make([]*VacancyMatch, 0, len(eligible))
	for _, vacancy := range eligible {
		score := a.scoreAgainst(vacancy.Skills, normalized)
		if score > a.cfg.VacancyScoreThreshold {
			scored = append(scored, &VacancyMatch{Vacancy: vacancy, Score: score})
		}
	}

	a.logger.Debug("score threshold",
		zap.Int("initial", len(eligible)),
		zap.Int("dropped", len(eligible)-len(scored)),
		zap.Int("left", len(scored)),
	)

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if top := a.cfg.TopVacancies; len(scored) > top {
		scored = scored[:top]
	}

	if len(scored) == 0 {
		return &VacancyMatches{NoMatches: true, Message: NoVacanciesMessage}
	}

	return &VacancyMatches{Items: scored}
}

// MatchVacanciesText is the free-text variant: the skill set and the
// experience label are both derived from the user's self-description.
func (a *Advisor) MatchVacanciesText(text string) *VacancyMatches {
	return a.MatchVacancies(a.skillsFromText(text), a.extractor.Experience(text))
}

// passesExperienceGate drops senior-tier vacancies for users who asked
// for entry-level positions. Every other combination passes: the gate
// protects beginners from noise, it does not gate seniors.
func (a *Advisor) passesExperienceGate(vacancy *catalog.Vacancy, experienceLevel string) bool {
	requested := strings.ToLower(experienceLevel)

	entryLevel := requested == strings.ToLower(skills.ExperienceNone)
	if !entryLevel {
		for _, marker := range entryLevelMarkers {
			if strings.Contains(requested, marker) {
				entryLevel = true
				break
			}
		}
	}
	if !entryLevel {
		return true
	}

	wanted := strings.ToLower(vacancy.Experience)
	for _, marker := range seniorTierMarkers {
		if strings.Contains(wanted, marker) {
			return false
		}
	}
	return true
}

// Render formats the matches for terminal output.
func (m *VacancyMatches) Render() string {
	if m.NoMatches {
		return m.Message
	}

	var b strings.Builder
	b.WriteString("Matching vacancies:\n")
	for i, match := range m.Items {
		vacancy := match.Vacancy
		fmt.Fprintf(&b, "\n%d. %s (match %.0f%%)\n", i+1, vacancy.Title, match.Score*100)
		if vacancy.Company != "" {
			fmt.Fprintf(&b, "   Company: %s\n", vacancy.Company)
		}
		if len(vacancy.Skills) > 0 {
			fmt.Fprintf(&b, "   Required skills: %s\n", strings.Join(vacancy.Skills, ", "))
		}
		if vacancy.Experience != "" {
			fmt.Fprintf(&b, "   Experience: %s\n", vacancy.Experience)
		}
		if vacancy.Salary != "" {
			fmt.Fprintf(&b, "   Salary: %s\n", vacancy.Salary)
		}
		if vacancy.URL != "" {
			fmt.Fprintf(&b, "   URL: %s\n", vacancy.URL)
		}
	}
	return b.String()
}
