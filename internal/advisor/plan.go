package advisor

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/career-navigator/internal/catalog"
	"github.com/spigell/career-navigator/internal/skills"
)

// ErrUnknownRole is returned when the target role is not in the role
// table. The wrapped error message lists the known roles.
var ErrUnknownRole = errors.New("unknown target role")

// LearningPlan is an ordered course sequence toward a target role.
// Courses respect prerequisites: every course appears after the courses
// that cover its prerequisites (or needs none beyond the user's own
// skills). Candidates whose prerequisites cannot be satisfied from the
// catalog are dropped from the plan.
type LearningPlan struct {
	TargetRole       string
	MissingSkills    []string
	Courses          []*catalog.Course
	AlreadyQualified bool
}

// BuildLearningPlan computes the exact canonical skill gap between the
// user and the target role, collects up to CoursesPerSkill candidate
// courses per missing skill (deduplicated by course id), and sequences
// them greedily so prerequisites come first.
func (a *Advisor) BuildLearningPlan(targetRole string, currentSkills []string) (*LearningPlan, error) {
	role := catalog.FindRole(a.roles, targetRole)
	if role == nil {
		return nil, fmt.Errorf("%w: %q (known roles: %s)",
			ErrUnknownRole, targetRole, strings.Join(catalog.RoleNames(a.roles), ", "))
	}

	acquired := make(map[string]struct{})
	for _, skill := range a.vocabulary.NormalizeAll(currentSkills) {
		acquired[skill] = struct{}{}
	}

	// exact set difference over canonical labels, in requirement order
	var missing []string
	for _, req := range role.Required {
		canonical, _ := a.vocabulary.Normalize(req)
		if _, ok := acquired[canonical]; !ok {
			missing = append(missing, canonical)
		}
	}

	if len(missing) == 0 {
		return &LearningPlan{TargetRole: role.Name, AlreadyQualified: true}, nil
	}

	candidates := a.collectCandidates(missing)
	ordered := a.sequenceCourses(candidates, acquired)

	if dropped := len(candidates) - len(ordered); dropped > 0 {
		a.logger.Debug("courses with unsatisfiable prerequisites dropped",
			zap.Int("initial", len(candidates)),
			zap.Int("dropped", dropped),
			zap.Int("left", len(ordered)),
		)
	}

	return &LearningPlan{
		TargetRole:    role.Name,
		MissingSkills: missing,
		Courses:       ordered,
	}, nil
}

// collectCandidates picks up to CoursesPerSkill courses per missing
// skill, in catalog order, and merges them without duplicates. The
// per-skill quota counts every match, so a course already taken for an
// earlier skill still fills the quota of a later one.
func (a *Advisor) collectCandidates(missing []string) []*catalog.Course {
	courses := a.store.Snapshot().Courses.Items

	seen := make(map[string]struct{})
	var candidates []*catalog.Course

	for _, skill := range missing {
		found := 0
		for _, course := range courses {
			if found >= a.cfg.CoursesPerSkill {
				break
			}
			if !a.courseCovers(course, skill) {
				continue
			}
			found++
			if _, ok := seen[course.ID]; ok {
				continue
			}
			seen[course.ID] = struct{}{}
			candidates = append(candidates, course)
		}
	}

	return candidates
}

func (a *Advisor) courseCovers(course *catalog.Course, skill string) bool {
	for _, covered := range course.Covered {
		if skills.IsMatch(covered, skill, a.cfg.SimilarityThreshold) {
			return true
		}
	}
	return false
}

// sequenceCourses orders the candidates so every course's prerequisites
// are covered by the user's own skills or by an earlier course. On each
// pass the first ready candidate is taken; when no candidate is ready
// the rest are unreachable and the sequence stops.
func (a *Advisor) sequenceCourses(candidates []*catalog.Course, userSkills map[string]struct{}) []*catalog.Course {
	acquired := make(map[string]struct{}, len(userSkills))
	for skill := range userSkills {
		acquired[skill] = struct{}{}
	}

	remaining := make([]*catalog.Course, len(candidates))
	copy(remaining, candidates)

	var ordered []*catalog.Course
	for len(remaining) > 0 {
		picked := -1
		for i, course := range remaining {
			if a.prerequisitesMet(course, acquired) {
				picked = i
				break
			}
		}
		if picked == -1 {
			break
		}

		course := remaining[picked]
		ordered = append(ordered, course)
		for _, covered := range course.Covered {
			canonical, _ := a.vocabulary.Normalize(covered)
			acquired[canonical] = struct{}{}
		}
		remaining = append(remaining[:picked], remaining[picked+1:]...)
	}

	return ordered
}

func (a *Advisor) prerequisitesMet(course *catalog.Course, acquired map[string]struct{}) bool {
	for _, prereq := range course.Prerequisites {
		canonical, _ := a.vocabulary.Normalize(prereq)
		if _, ok := acquired[canonical]; !ok {
			return false
		}
	}
	return true
}

// Render formats the plan for terminal output.
func (p *LearningPlan) Render() string {
	if p.AlreadyQualified {
		return fmt.Sprintf("You already cover every skill required for %s.", p.TargetRole)
	}

	sorted := make([]string, len(p.MissingSkills))
	copy(sorted, p.MissingSkills)
	sort.Strings(sorted)

	var b strings.Builder
	fmt.Fprintf(&b, "Learning plan for %s\n", p.TargetRole)
	fmt.Fprintf(&b, "Missing skills: %s\n", strings.Join(sorted, ", "))

	if len(p.Courses) == 0 {
		b.WriteString("\nNo catalog courses cover the missing skills yet.\n")
		return b.String()
	}

	b.WriteString("\nRecommended course sequence:\n")
	for i, course := range p.Courses {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, course.Title)
		if course.Platform != "" {
			fmt.Fprintf(&b, "   Platform: %s\n", course.Platform)
		}
		if len(course.Covered) > 0 {
			fmt.Fprintf(&b, "   Covers: %s\n", strings.Join(course.Covered, ", "))
		}
		if course.Duration != "" {
			fmt.Fprintf(&b, "   Duration: %s\n", course.Duration)
		}
		if course.URL != "" {
			fmt.Fprintf(&b, "   URL: %s\n", course.URL)
		}
	}
	return b.String()
}
