package advisor

import (
	"strings"
	"testing"

	"github.com/spigell/career-navigator/internal/catalog"
	"github.com/spigell/career-navigator/internal/skills"
)

func vacancySnapshot(items ...*catalog.Vacancy) *catalog.Snapshot {
	return &catalog.Snapshot{Vacancies: &catalog.Vacancies{Items: items}}
}

func TestMatchVacanciesScoreThreshold(t *testing.T) {
	advisor := newTestAdvisor(t, vacancySnapshot(
		// one of three required skills matches: 0.33 passes the 0.3 cutoff
		&catalog.Vacancy{ID: "1", Title: "Python Developer", Skills: []string{"Python", "Django", "Docker"}},
		&catalog.Vacancy{ID: "2", Title: "Systems Developer", Skills: []string{"Go", "Rust", "C++"}},
	), nil, nil)

	result := advisor.MatchVacancies([]string{"python"}, skills.ExperienceNotSpecified)

	if result.NoMatches {
		t.Fatalf("expected matches, got none: %s", result.Message)
	}
	if len(result.Items) != 1 || result.Items[0].Vacancy.ID != "1" {
		t.Fatalf("unexpected matches: %+v", result.Items)
	}
	if got := result.Items[0].Score; got < 0.33 || got > 0.34 {
		t.Fatalf("unexpected score: %v", got)
	}
}

func TestMatchVacanciesEmptyRequiredSkillsExcluded(t *testing.T) {
	advisor := newTestAdvisor(t, vacancySnapshot(
		&catalog.Vacancy{ID: "1", Title: "Mystery Role"},
	), nil, nil)

	result := advisor.MatchVacancies([]string{"python"}, skills.ExperienceNotSpecified)

	if !result.NoMatches {
		t.Fatalf("a vacancy without required skills must never match")
	}
}

func TestMatchVacanciesNoMatchesMessage(t *testing.T) {
	advisor := newTestAdvisor(t, vacancySnapshot(
		&catalog.Vacancy{ID: "1", Skills: []string{"Go", "Rust"}},
	), nil, nil)

	result := advisor.MatchVacancies([]string{"cobol"}, skills.ExperienceNotSpecified)

	if !result.NoMatches || result.Message == "" {
		t.Fatalf("expected the explicit no-matches marker, got %+v", result)
	}
	if len(result.Items) != 0 {
		t.Fatalf("no-matches result must carry no items")
	}
}

func TestMatchVacanciesExperienceGate(t *testing.T) {
	advisor := newTestAdvisor(t, vacancySnapshot(
		&catalog.Vacancy{ID: "junior", Skills: []string{"Python"}, Experience: "Нет опыта"},
		&catalog.Vacancy{ID: "senior", Skills: []string{"Python"}, Experience: "От 3 до 6 лет"},
	), nil, nil)

	entry := advisor.MatchVacancies([]string{"python"}, skills.ExperienceNone)
	if len(entry.Items) != 1 || entry.Items[0].Vacancy.ID != "junior" {
		t.Fatalf("senior vacancy leaked through the gate: %+v", entry.Items)
	}

	experienced := advisor.MatchVacancies([]string{"python"}, skills.ExperienceWork)
	if len(experienced.Items) != 2 {
		t.Fatalf("the gate must only apply to entry-level users, got %d items", len(experienced.Items))
	}
}

func TestMatchVacanciesTopNAndStableOrder(t *testing.T) {
	advisor := newTestAdvisor(t, vacancySnapshot(
		&catalog.Vacancy{ID: "half", Skills: []string{"Python", "Rust"}},
		&catalog.Vacancy{ID: "full-a", Skills: []string{"Python"}},
		&catalog.Vacancy{ID: "full-b", Skills: []string{"Python"}},
	), &Config{TopVacancies: 2}, nil)

	result := advisor.MatchVacancies([]string{"python"}, skills.ExperienceNotSpecified)

	if len(result.Items) != 2 {
		t.Fatalf("expected the top 2 matches, got %d", len(result.Items))
	}
	// equal scores keep catalog order
	if result.Items[0].Vacancy.ID != "full-a" || result.Items[1].Vacancy.ID != "full-b" {
		t.Fatalf("unexpected ranking: %q, %q",
			result.Items[0].Vacancy.ID, result.Items[1].Vacancy.ID)
	}
}

func TestMatchVacanciesSkillOrderInvariant(t *testing.T) {
	advisor := newTestAdvisor(t, vacancySnapshot(
		&catalog.Vacancy{ID: "1", Skills: []string{"Python", "SQL"}},
		&catalog.Vacancy{ID: "2", Skills: []string{"SQL", "Git", "Docker"}},
	), nil, nil)

	forward := advisor.MatchVacancies([]string{"python", "sql", "git"}, skills.ExperienceNotSpecified)
	reversed := advisor.MatchVacancies([]string{"git", "sql", "python"}, skills.ExperienceNotSpecified)

	if len(forward.Items) != len(reversed.Items) {
		t.Fatalf("result size depends on input order")
	}
	for i := range forward.Items {
		if forward.Items[i].Vacancy.ID != reversed.Items[i].Vacancy.ID {
			t.Fatalf("ranking depends on input order")
		}
		if forward.Items[i].Score != reversed.Items[i].Score {
			t.Fatalf("scores depend on input order")
		}
	}
}

func TestMatchVacanciesText(t *testing.T) {
	advisor := newTestAdvisor(t, vacancySnapshot(
		&catalog.Vacancy{ID: "junior", Skills: []string{"Python", "Django"}, Experience: "Нет опыта"},
		&catalog.Vacancy{ID: "senior", Skills: []string{"Python"}, Experience: "От 3 до 6 лет"},
	), nil, nil)

	result := advisor.MatchVacanciesText("python, django, нет опыта")

	if len(result.Items) != 1 || result.Items[0].Vacancy.ID != "junior" {
		t.Fatalf("unexpected matches: %+v", result.Items)
	}
	if result.Items[0].Score != 1.0 {
		t.Fatalf("expected a full skill match, got %v", result.Items[0].Score)
	}
}

func TestVacancyMatchesRender(t *testing.T) {
	matches := &VacancyMatches{Items: []*VacancyMatch{{
		Vacancy: &catalog.Vacancy{
			Title:   "Junior Python Developer",
			Company: "Acme",
			Skills:  []string{"Python", "SQL"},
			Salary:  "от 100000 руб.",
		},
		Score: 0.5,
	}}}

	out := matches.Render()
	for _, want := range []string{"Junior Python Developer", "50%", "Acme", "Python, SQL"} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered output misses %q:\n%s", want, out)
		}
	}

	none := &VacancyMatches{NoMatches: true, Message: NoVacanciesMessage}
	if none.Render() != NoVacanciesMessage {
		t.Fatalf("no-matches rendering must return the message")
	}
}
