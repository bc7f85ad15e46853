package advisor

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/career-navigator/internal/catalog"
	"github.com/spigell/career-navigator/internal/skills"
)

// Config holds the matching knobs. The similarity threshold is the single
// is-a-match cutoff shared by every scoring stage.
type Config struct {
	SimilarityThreshold   float64
	VacancyScoreThreshold float64
	AdviceThreshold       float64
	TopDirections         int
	TopVacancies          int
	CoursesPerSkill       int
}

// DefaultConfig returns the built-in matching configuration.
func DefaultConfig() *Config {
	return &Config{
		SimilarityThreshold:   skills.MatchThreshold,
		VacancyScoreThreshold: 0.3,
		AdviceThreshold:       0.3,
		TopDirections:         3,
		TopVacancies:          5,
		CoursesPerSkill:       2,
	}
}

// Deps aggregates what the advisor works over: the catalog snapshot store
// and the immutable lookup tables. Nil tables fall back to the built-in
// defaults, which keeps tests free to substitute their own.
type Deps struct {
	Store      *catalog.Store
	Vocabulary *skills.SynonymTable
	Directions []catalog.RoleProfile
	Roles      []catalog.RoleProfile
	Advice     *AdviceBase
	Logger     *zap.Logger
}

// Advisor is the skill-matching and plan-sequencing engine. Every method
// is a pure computation over its inputs and the current catalog snapshot;
// concurrent use needs no coordination.
type Advisor struct {
	store      *catalog.Store
	vocabulary *skills.SynonymTable
	extractor  *skills.Extractor
	directions []catalog.RoleProfile
	roles      []catalog.RoleProfile
	advice     *AdviceBase
	cfg        *Config
	logger     *zap.Logger
}

func New(deps Deps, cfg *Config) (*Advisor, error) {
	if deps.Store == nil {
		return nil, errors.New("catalog store is required")
	}
	if deps.Vocabulary == nil {
		return nil, errors.New("skill vocabulary is required")
	}

	if deps.Directions == nil {
		deps.Directions = catalog.DefaultDirections()
	}
	if deps.Roles == nil {
		deps.Roles = catalog.DefaultRoles()
	}
	if deps.Advice == nil {
		deps.Advice = DefaultAdviceBase()
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	cfg = mergeConfig(cfg)

	return &Advisor{
		store:      deps.Store,
		vocabulary: deps.Vocabulary,
		extractor:  skills.NewExtractor(deps.Vocabulary),
		directions: deps.Directions,
		roles:      deps.Roles,
		advice:     deps.Advice,
		cfg:        cfg,
		logger:     deps.Logger,
	}, nil
}

// Extractor exposes the profile extractor built over the advisor's
// vocabulary, for callers that need to parse free-form user text.
func (a *Advisor) Extractor() *skills.Extractor {
	return a.extractor
}

// Roles returns the learning plan target table.
func (a *Advisor) Roles() []catalog.RoleProfile {
	return a.roles
}

func mergeConfig(cfg *Config) *Config {
	defaults := DefaultConfig()
	if cfg == nil {
		return defaults
	}

	merged := *cfg
	if merged.SimilarityThreshold <= 0 {
		merged.SimilarityThreshold = defaults.SimilarityThreshold
	}
	if merged.VacancyScoreThreshold <= 0 {
		merged.VacancyScoreThreshold = defaults.VacancyScoreThreshold
	}
	if merged.AdviceThreshold <= 0 {
		merged.AdviceThreshold = defaults.AdviceThreshold
	}
	if merged.TopDirections <= 0 {
		merged.TopDirections = defaults.TopDirections
	}
	if merged.TopVacancies <= 0 {
		merged.TopVacancies = defaults.TopVacancies
	}
	if merged.CoursesPerSkill <= 0 {
		merged.CoursesPerSkill = defaults.CoursesPerSkill
	}
	return &merged
}

// scoreAgainst computes the share of required labels that have at least
// one user skill reaching the similarity cutoff. This is not Jaccard: one
// user skill may satisfy several required labels, and duplicates in the
// required list count every time. An empty required list scores 0.
func (a *Advisor) scoreAgainst(required, userSkills []string) float64 {
	if len(required) == 0 || len(userSkills) == 0 {
		return 0
	}

	matched := 0
	for _, req := range required {
		for _, skill := range userSkills {
			if skills.IsMatch(skill, req, a.cfg.SimilarityThreshold) {
				matched++
				break
			}
		}
	}

	return float64(matched) / float64(len(required))
}

// skillsFromText derives a canonical skill set from raw user text: the
// vocabulary/pattern extraction is unioned with comma-separated tokens, so
// list-style input keeps unknown skills through the pass-through policy.
func (a *Advisor) skillsFromText(text string) []string {
	set := a.extractor.Skills(text)

	if strings.Contains(text, ",") {
		seen := make(map[string]struct{}, len(set))
		for _, skill := range set {
			seen[skill] = struct{}{}
		}
		for _, token := range strings.Split(text, ",") {
			skill, _ := a.vocabulary.Normalize(token)
			if skill == "" {
				continue
			}
			if _, ok := seen[skill]; ok {
				continue
			}
			seen[skill] = struct{}{}
			set = append(set, skill)
		}
	}

	return set
}
