package skills

import (
	"regexp"
	"sort"
	"strings"
)

// Education labels produced by the extractor. The rule order is
// significant: year-qualified student rules run before the generic
// student rule, since the keyword sets overlap.
const (
	EducationStudent      = "Student"
	EducationGraduate     = "Graduate"
	EducationSchool       = "School student"
	EducationNotSpecified = "Not specified"
)

// Experience labels produced by the extractor. The "no experience"
// phrases are checked first because they contain the work keywords.
const (
	ExperienceNone         = "No experience"
	ExperienceInternship   = "Internship experience"
	ExperienceWork         = "Has work experience"
	ExperienceNotSpecified = "Not specified"
)

// skillPatterns are fixed fallback patterns for common technology tokens
// that may appear outside the synonym vocabulary. The Russian pattern has
// no \b anchors: Go's word boundaries are ASCII-only.
var skillPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(python|javascript|java|sql|html|css|react|vue|angular|node|docker|kubernetes|aws|git|linux)\b`),
	regexp.MustCompile(`\b(machine learning|data science|data analysis|business intelligence|computer vision)\b`),
	regexp.MustCompile(`(программирование|разработка|анализ данных|тестирование|автоматизация)`),
}

var noExperiencePhrases = []string{
	"нет опыта", "без опыта", "опыта нет", "пока нет",
	"не работал", "не работала", "опыта работы нет",
	"no experience", "without experience",
}

var internshipKeywords = []string{
	"стажировк", "интерн", "практик", "internship", "intern",
}

var workKeywords = []string{
	"опыт работы", "работал", "работаю", "work experience", "worked", "working",
}

var studentKeywords = []string{
	"студент", "учусь", "обучаюсь", "вуз", "универ", "student", "university",
}

var graduateKeywords = []string{
	"выпускник", "закончил", "окончил", "graduate",
}

var schoolKeywords = []string{
	"школ", "ученик", "school",
}

// studyYears maps year markers to the year-qualified student label.
// Checked in order so the most specific rule wins over plain "Student".
var studyYears = []struct {
	Label   string
	Markers []string
}{
	{"Student, year 1", []string{"1 курс", "1st year", "first year"}},
	{"Student, year 2", []string{"2 курс", "2nd year", "second year"}},
	{"Student, year 3", []string{"3 курс", "3rd year", "third year"}},
	{"Student, year 4", []string{"4 курс", "4th year", "fourth year"}},
}

// interestRules map display-only interest labels to trigger keywords.
var interestRules = []struct {
	Label    string
	Keywords []string
}{
	{"data analysis", []string{"анализ данных", "data analysis", "аналитик"}},
	{"machine learning", []string{"машинное обучение", "machine learning", "ml"}},
	{"web development", []string{"веб-разработка", "web development", "frontend", "backend"}},
	{"mobile development", []string{"мобильная разработка", "mobile development"}},
	{"devops", []string{"devops", "инфраструктура"}},
	{"data science", []string{"data science", "наука о данных"}},
}

// Profile is what the extractor derives from a free-form self-description.
// Interests are informational only and never affect ranking.
type Profile struct {
	Skills     []string
	Education  string
	Experience string
	Interests  []string
}

// Extractor pulls canonical skills, education and experience labels, and
// interests out of free-form text using the synonym vocabulary plus fixed
// keyword rules. It holds no mutable state and is safe for concurrent use.
type Extractor struct {
	table *SynonymTable
}

func NewExtractor(table *SynonymTable) *Extractor {
	return &Extractor{table: table}
}

// Skills scans the lower-cased text for every synonym of every known
// skill and for the fixed technology patterns, normalizes all matches and
// returns the union. The result is sorted, so repeated calls over the
// same input yield the identical set.
func (e *Extractor) Skills(text string) []string {
	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "" {
		return nil
	}

	found := make(map[string]struct{})

	for _, entry := range e.table.Entries() {
		surfaces := append([]string{entry.Canonical}, entry.Synonyms...)
		for _, surface := range surfaces {
			if strings.Contains(lower, strings.ToLower(surface)) {
				skill, _ := e.table.Normalize(entry.Canonical)
				found[skill] = struct{}{}
				break
			}
		}
	}

	for _, pattern := range skillPatterns {
		for _, match := range pattern.FindAllString(lower, -1) {
			skill, _ := e.table.Normalize(match)
			found[skill] = struct{}{}
		}
	}

	skills := make([]string, 0, len(found))
	for skill := range found {
		skills = append(skills, skill)
	}
	sort.Strings(skills)

	return skills
}

// EducationLevel classifies the education level mentioned in the text.
// First matching rule wins; within the student rule the year-qualified
// labels are checked before the generic one.
func (e *Extractor) EducationLevel(text string) string {
	lower := strings.ToLower(text)

	if containsAny(lower, studentKeywords) {
		for _, year := range studyYears {
			if containsAny(lower, year.Markers) {
				return year.Label
			}
		}
		return EducationStudent
	}

	if containsAny(lower, graduateKeywords) {
		return EducationGraduate
	}

	if containsAny(lower, schoolKeywords) {
		return EducationSchool
	}

	return EducationNotSpecified
}

// Experience classifies the work experience mentioned in the text.
func (e *Extractor) Experience(text string) string {
	lower := strings.ToLower(text)

	switch {
	case containsAny(lower, noExperiencePhrases):
		return ExperienceNone
	case containsAny(lower, internshipKeywords):
		return ExperienceInternship
	case containsAny(lower, workKeywords):
		return ExperienceWork
	default:
		return ExperienceNotSpecified
	}
}

// Interests collects display-only interest labels mentioned in the text.
func (e *Extractor) Interests(text string) []string {
	lower := strings.ToLower(text)

	var interests []string
	for _, rule := range interestRules {
		if containsAny(lower, rule.Keywords) {
			interests = append(interests, rule.Label)
		}
	}

	return interests
}

// Profile runs all extractors over the text.
func (e *Extractor) Profile(text string) *Profile {
	return &Profile{
		Skills:     e.Skills(text),
		Education:  e.EducationLevel(text),
		Experience: e.Experience(text),
		Interests:  e.Interests(text),
	}
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
