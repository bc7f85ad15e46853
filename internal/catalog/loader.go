package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Catalog files are JSON arrays produced by the collectors. Their schemas
// are loose (string/number ids, missing optional fields), so records go
// through a weakly typed mapstructure decode instead of a strict
// json.Unmarshal into the struct. Malformed data is a configuration
// error and fails the load outright; an absent catalog must never look
// like an empty "no matches" result.

// LoadVacancies reads and validates a vacancy catalog file.
func LoadVacancies(path string) (*Vacancies, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, fmt.Errorf("vacancy catalog: %w", err)
	}

	vacancies := &Vacancies{Items: make([]*Vacancy, 0, len(records))}
	for i, record := range records {
		vacancy := &Vacancy{}
		if err := decodeRecord(record, vacancy); err != nil {
			return nil, fmt.Errorf("vacancy catalog: record %d: %w", i, err)
		}
		if strings.TrimSpace(vacancy.ID) == "" {
			return nil, fmt.Errorf("vacancy catalog: record %d has no id", i)
		}
		vacancies.Items = append(vacancies.Items, vacancy)
	}

	return vacancies, nil
}

// LoadCourses reads and validates a course catalog file.
func LoadCourses(path string) (*Courses, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, fmt.Errorf("course catalog: %w", err)
	}

	courses := &Courses{Items: make([]*Course, 0, len(records))}
	for i, record := range records {
		course := &Course{}
		if err := decodeRecord(record, course); err != nil {
			return nil, fmt.Errorf("course catalog: record %d: %w", i, err)
		}
		if strings.TrimSpace(course.ID) == "" {
			return nil, fmt.Errorf("course catalog: record %d has no id", i)
		}
		courses.Items = append(courses.Items, course)
	}

	return courses, nil
}

func readRecords(path string) ([]map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}

	return records, nil
}

func decodeRecord(record map[string]any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(record)
}
