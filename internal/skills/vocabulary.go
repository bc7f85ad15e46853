package skills

import (
	"fmt"
	"strings"
)

// SynonymEntry declares one canonical skill and the surface forms that
// normalize to it. The canonical id itself always counts as a surface
// form, whether or not it is listed.
type SynonymEntry struct {
	Canonical string
	Synonyms  []string
}

// SynonymTable maps surface forms to canonical skill ids. It is built once
// at startup and read-only afterwards, so it is safe for concurrent use.
type SynonymTable struct {
	entries []SynonymEntry
	lookup  map[string]string
}

// NewSynonymTable validates the entries and builds the lookup table.
// Surface forms must be disjoint across canonical skills; an overlap is a
// configuration error, not something to resolve silently.
func NewSynonymTable(entries []SynonymEntry) (*SynonymTable, error) {
	table := &SynonymTable{
		entries: entries,
		lookup:  make(map[string]string),
	}

	for _, entry := range entries {
		canonical := strings.ToLower(strings.TrimSpace(entry.Canonical))
		if canonical == "" {
			return nil, fmt.Errorf("synonym table contains an entry with an empty canonical id")
		}

		surfaces := make([]string, 0, len(entry.Synonyms)+1)
		surfaces = append(surfaces, canonical)
		surfaces = append(surfaces, entry.Synonyms...)

		for _, surface := range surfaces {
			surface = strings.ToLower(strings.TrimSpace(surface))
			if surface == "" {
				return nil, fmt.Errorf("skill %q has an empty synonym", canonical)
			}
			if owner, ok := table.lookup[surface]; ok && owner != canonical {
				return nil, fmt.Errorf("synonym %q maps to both %q and %q", surface, owner, canonical)
			}
			table.lookup[surface] = canonical
		}
	}

	return table, nil
}

// Normalize lower-cases and trims the token, then resolves it against the
// synonym table. Unknown tokens pass through unchanged (recognized=false)
// instead of being dropped, so new skills flow through the system; the
// cost is possible near-duplicate ids for misspellings.
func (t *SynonymTable) Normalize(token string) (skill string, recognized bool) {
	token = strings.ToLower(strings.TrimSpace(token))

	if canonical, ok := t.lookup[token]; ok {
		return canonical, true
	}

	return token, false
}

// NormalizeAll normalizes a list of tokens into a deduplicated canonical
// set, preserving first-seen order. Empty tokens are skipped.
func (t *SynonymTable) NormalizeAll(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))

	for _, token := range tokens {
		skill, _ := t.Normalize(token)
		if skill == "" {
			continue
		}
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		out = append(out, skill)
	}

	return out
}

// Entries returns the table's declarations in their original order.
func (t *SynonymTable) Entries() []SynonymEntry {
	return t.entries
}

// DefaultSynonyms is the built-in skill vocabulary. Catalogs come from
// hh.ru and Stepik dumps, so Russian surface forms are kept alongside the
// English ones.
func DefaultSynonyms() []SynonymEntry {
	return []SynonymEntry{
		{Canonical: "python", Synonyms: []string{"python3", "питон"}},
		{Canonical: "javascript", Synonyms: []string{"js", "ecmascript"}},
		{Canonical: "java", Synonyms: []string{"джава", "джаву"}},
		{Canonical: "sql", Synonyms: []string{"mysql", "postgresql", "базы данных"}},
		{Canonical: "html", Synonyms: []string{"html5"}},
		{Canonical: "css", Synonyms: []string{"css3"}},
		{Canonical: "react", Synonyms: []string{"react.js", "reactjs"}},
		{Canonical: "vue", Synonyms: []string{"vue.js", "vuejs"}},
		{Canonical: "angular", Synonyms: []string{"angular.js", "angularjs"}},
		{Canonical: "node", Synonyms: []string{"node.js", "nodejs"}},
		{Canonical: "docker", Synonyms: []string{"докер"}},
		{Canonical: "kubernetes", Synonyms: []string{"k8s"}},
		{Canonical: "aws", Synonyms: []string{"amazon web services"}},
		{Canonical: "git", Synonyms: []string{"гит"}},
		{Canonical: "linux", Synonyms: []string{"unix"}},
		{Canonical: "machine learning", Synonyms: []string{"ml", "машинное обучение"}},
		{Canonical: "data science", Synonyms: []string{"наука о данных"}},
		{Canonical: "data analysis", Synonyms: []string{"анализ данных", "data analytics"}},
		{Canonical: "business intelligence", Synonyms: []string{"bi", "бизнес-аналитика"}},
	}
}
