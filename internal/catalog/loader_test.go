package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCatalogFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing catalog file: %v", err)
	}
	return path
}

func TestLoadVacancies(t *testing.T) {
	path := writeCatalogFile(t, "vacancies.json", `[
		{
			"id": 101,
			"name": "Junior Python Developer",
			"company": "Acme",
			"skills": ["Python", "SQL", "Git"],
			"experience": "no experience",
			"salary": "от 100000 руб.",
			"url": "https://hh.example/vacancy/101"
		},
		{
			"id": "102",
			"name": "Go Developer",
			"skills": ["Go"],
			"experience": "от 3 до 6 лет"
		}
	]`)

	vacancies, err := LoadVacancies(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if vacancies.Len() != 2 {
		t.Fatalf("expected 2 vacancies, got %d", vacancies.Len())
	}

	// numeric ids from the collector decode weakly into strings
	first := vacancies.FindByID("101")
	if first == nil {
		t.Fatalf("vacancy 101 not found")
	}
	if first.Title != "Junior Python Developer" {
		t.Fatalf("unexpected title: %q", first.Title)
	}
	if len(first.Skills) != 3 {
		t.Fatalf("unexpected skills: %v", first.Skills)
	}
}

func TestLoadVacanciesMissingFileFailsFast(t *testing.T) {
	if _, err := LoadVacancies(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatalf("expected an error for a missing catalog file")
	}
}

func TestLoadVacanciesMalformedJSONFailsFast(t *testing.T) {
	path := writeCatalogFile(t, "vacancies.json", `{"vacancies": "not-an-array"`)
	if _, err := LoadVacancies(path); err == nil {
		t.Fatalf("expected an error for malformed catalog data")
	}
}

func TestLoadVacanciesRecordWithoutIDFailsFast(t *testing.T) {
	path := writeCatalogFile(t, "vacancies.json", `[{"name": "No ID"}]`)
	if _, err := LoadVacancies(path); err == nil {
		t.Fatalf("expected an error for a record without an id")
	}
}

func TestLoadCourses(t *testing.T) {
	path := writeCatalogFile(t, "courses.json", `[
		{
			"id": "c1",
			"title": "Docker for Beginners",
			"platform": "Stepik",
			"category": ["Docker"],
			"skills": ["Linux"],
			"duration": "3 weeks",
			"level": "beginner",
			"url": "https://stepik.example/c1"
		}
	]`)

	courses, err := LoadCourses(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	course := courses.FindByID("c1")
	if course == nil {
		t.Fatalf("course c1 not found")
	}
	if len(course.Covered) != 1 || course.Covered[0] != "Docker" {
		t.Fatalf("unexpected covered skills: %v", course.Covered)
	}
	if len(course.Prerequisites) != 1 || course.Prerequisites[0] != "Linux" {
		t.Fatalf("unexpected prerequisites: %v", course.Prerequisites)
	}
}

func TestLoadCoursesRecordWithoutIDFailsFast(t *testing.T) {
	path := writeCatalogFile(t, "courses.json", `[{"title": "No ID"}]`)
	if _, err := LoadCourses(path); err == nil {
		t.Fatalf("expected an error for a record without an id")
	}
}
