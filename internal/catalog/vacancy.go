package catalog

import (
	"fmt"
	"strings"
)

// Vacancy is one record from the vacancy catalog dump. The collector owns
// the on-disk format; required skill labels are kept verbatim (they are
// not necessarily canonical and are matched by similarity downstream).
// Records are immutable once loaded.
type Vacancy struct {
	ID          string   `json:"id" mapstructure:"id"`
	Title       string   `json:"name" mapstructure:"name"`
	Company     string   `json:"company" mapstructure:"company"`
	Skills      []string `json:"skills" mapstructure:"skills"`
	Experience  string   `json:"experience" mapstructure:"experience"`
	Salary      string   `json:"salary" mapstructure:"salary"`
	URL         string   `json:"url" mapstructure:"url"`
	Description string   `json:"description" mapstructure:"description"`
}

// Vacancies is an ordered vacancy collection. The order is the catalog
// order and is significant: result ranking breaks score ties by it.
type Vacancies struct {
	Items []*Vacancy
}

func (v *Vacancies) Len() int {
	return len(v.Items)
}

func (v *Vacancies) FindByID(id string) *Vacancy {
	for _, vacancy := range v.Items {
		if vacancy.ID == id {
			return vacancy
		}
	}
	return nil
}

// Details renders the full record for terminal output. Empty optional
// fields are omitted.
func (v *Vacancy) Details() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (id %s)\n", v.Title, v.ID)
	if v.Company != "" {
		fmt.Fprintf(&b, "  Company: %s\n", v.Company)
	}
	if len(v.Skills) > 0 {
		fmt.Fprintf(&b, "  Required skills: %s\n", strings.Join(v.Skills, ", "))
	}
	if v.Experience != "" {
		fmt.Fprintf(&b, "  Experience: %s\n", v.Experience)
	}
	if v.Salary != "" {
		fmt.Fprintf(&b, "  Salary: %s\n", v.Salary)
	}
	if v.URL != "" {
		fmt.Fprintf(&b, "  URL: %s\n", v.URL)
	}
	if v.Description != "" {
		fmt.Fprintf(&b, "  %s\n", v.Description)
	}
	return b.String()
}
