package catalog

import (
	"strings"
	"testing"
)

func TestVacanciesFindByID(t *testing.T) {
	vacancies := &Vacancies{Items: []*Vacancy{
		{ID: "101", Title: "Junior Python Developer"},
		{ID: "102", Title: "Go Developer"},
	}}

	found := vacancies.FindByID("102")
	if found == nil || found.Title != "Go Developer" {
		t.Fatalf("unexpected lookup result: %+v", found)
	}

	if vacancies.FindByID("absent") != nil {
		t.Fatalf("expected nil for an unknown id")
	}
}

func TestVacancyDetails(t *testing.T) {
	vacancy := &Vacancy{
		ID:         "101",
		Title:      "Junior Python Developer",
		Company:    "Acme",
		Skills:     []string{"Python", "SQL"},
		Experience: "Нет опыта",
		URL:        "https://hh.example/vacancy/101",
	}

	out := vacancy.Details()
	for _, want := range []string{
		"Junior Python Developer (id 101)",
		"Company: Acme",
		"Required skills: Python, SQL",
		"Experience: Нет опыта",
		"https://hh.example/vacancy/101",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("details output misses %q:\n%s", want, out)
		}
	}

	// empty optional fields stay out of the rendering
	if strings.Contains(out, "Salary") {
		t.Fatalf("unexpected salary line:\n%s", out)
	}
}
