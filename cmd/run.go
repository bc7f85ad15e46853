package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/career-navigator/internal/advisor"
	"github.com/spigell/career-navigator/internal/ai"
	"github.com/spigell/career-navigator/internal/ai/gemini"
	"github.com/spigell/career-navigator/internal/catalog"
	"github.com/spigell/career-navigator/internal/logger"
	"github.com/spigell/career-navigator/internal/secrets"
	"github.com/spigell/career-navigator/internal/skills"
)

const (
	PromptDirections     = "Recommend career directions"
	PromptVacancies      = "Find matching vacancies"
	PromptVacancyDetails = "Show vacancy details"
	PromptLearningPlan   = "Build a learning plan"
	PromptAdvice         = "Get career advice"
	PromptShowProfile    = "Show my profile"
	PromptUpdateProfile  = "Update my profile"
	PromptReloadCatalog  = "Reload catalogs"
	PromptExit           = "Exit"
	PromptBack           = "back"
)

var errExit = errors.New("exit requested")

var actionPrompt = promptui.Select{
	Label: "What should we do?",
	Items: []string{
		PromptDirections, PromptVacancies, PromptVacancyDetails,
		PromptLearningPlan, PromptAdvice,
		PromptShowProfile, PromptUpdateProfile, PromptReloadCatalog, PromptExit,
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive career navigation session",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("vacancies", "", "path to the vacancy catalog json")
	runCmd.Flags().String("courses", "", "path to the course catalog json")

	viper.BindPFlag("catalog.vacancies-file", runCmd.Flags().Lookup("vacancies"))
	viper.BindPFlag("catalog.courses-file", runCmd.Flags().Lookup("courses"))
}

type session struct {
	ctx       context.Context
	logger    *zap.Logger
	advisor   *advisor.Advisor
	store     *catalog.Store
	config    *Config
	assistant ai.Assistant
	profile   *skills.Profile
	intake    string
}

// run is the main command for the cli.
func run(_ *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the career-navigator", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config == nil || config.Catalog == nil {
		logger.Fatal("catalog configuration is required")
	}

	store, err := loadCatalogs(config.Catalog)
	if err != nil {
		logger.Fatal("loading catalogs", zap.Error(err))
	}

	snapshot := store.Snapshot()
	logger.Info("catalogs loaded",
		zap.Int("vacancies", snapshot.Vacancies.Len()),
		zap.Int("courses", snapshot.Courses.Len()),
	)

	adv, err := buildAdvisor(store, config.Matching, logger)
	if err != nil {
		logger.Fatal("building the advisor", zap.Error(err))
	}

	assistant, err := newAssistant(ctx, config.AI, logger)
	if err != nil {
		logger.Warn("running without the ai assistant", zap.Error(err))
	}

	s := &session{
		ctx:       ctx,
		logger:    logger,
		advisor:   adv,
		store:     store,
		config:    config,
		assistant: assistant,
	}

	if err := s.intakeProfile(); err != nil {
		logger.Fatal("reading the profile", zap.Error(err))
	}

	for {
		_, action, err := actionPrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := s.handleAction(action); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func (s *session) handleAction(action string) error {
	switch action {
	case PromptDirections:
		matches := s.advisor.RecommendDirections(s.profile.Skills, s.profile.Interests)
		s.deliver("which career directions fit me?", advisor.RenderDirections(matches))
		return nil
	case PromptVacancies:
		result := s.advisor.MatchVacancies(s.profile.Skills, s.profile.Experience)
		s.deliver("which vacancies fit my skills?", result.Render())
		return nil
	case PromptVacancyDetails:
		return s.vacancyDetails()
	case PromptLearningPlan:
		return s.learningPlan()
	case PromptAdvice:
		return s.careerAdvice()
	case PromptShowProfile:
		fmt.Println(formatProfile(s.profile))
		return nil
	case PromptUpdateProfile:
		return s.intakeProfile()
	case PromptReloadCatalog:
		return s.reloadCatalogs()
	case PromptExit:
		s.logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func (s *session) intakeProfile() error {
	prompt := promptui.Prompt{
		Label: "Tell me about yourself: skills, education, experience, interests",
	}

	text, err := prompt.Run()
	if err != nil {
		return err
	}

	s.intake = text
	s.profile = s.advisor.Extractor().Profile(text)

	s.logger.Debug("profile extracted",
		zap.Strings("skills", s.profile.Skills),
		zap.String("education", s.profile.Education),
		zap.String("experience", s.profile.Experience),
		zap.Strings("interests", s.profile.Interests),
	)

	fmt.Println(formatProfile(s.profile))
	return nil
}

func (s *session) vacancyDetails() error {
	prompt := promptui.Prompt{
		Label: "Vacancy id",
	}

	id, err := prompt.Run()
	if err != nil {
		return err
	}

	id = strings.TrimSpace(id)
	vacancy := s.store.Snapshot().Vacancies.FindByID(id)
	if vacancy == nil {
		fmt.Printf("No vacancy with id %q in the catalog.\n", id)
		return nil
	}

	fmt.Println(vacancy.Details())
	return nil
}

func (s *session) learningPlan() error {
	names := catalog.RoleNames(s.advisor.Roles())
	rolePrompt := promptui.Select{
		Label: "Choose a target role",
		Items: append(names, PromptBack),
	}

	_, role, err := rolePrompt.Run()
	if err != nil {
		return err
	}
	if role == PromptBack {
		return nil
	}

	plan, err := s.advisor.BuildLearningPlan(role, s.profile.Skills)
	if err != nil {
		return err
	}

	s.deliver(fmt.Sprintf("how do I become a %s?", role), plan.Render())
	return nil
}

func (s *session) careerAdvice() error {
	prompt := promptui.Prompt{
		Label: "What would you like to ask",
	}

	question, err := prompt.Run()
	if err != nil {
		return err
	}

	s.deliver(question, s.advisor.GetAdvice(question))
	return nil
}

// reloadCatalogs re-reads both catalog files and swaps the snapshot. On
// any load error the current snapshot stays in place.
func (s *session) reloadCatalogs() error {
	store, err := loadCatalogs(s.config.Catalog)
	if err != nil {
		s.logger.Warn("reload failed, keeping the current catalogs", zap.Error(err))
		return nil
	}

	snapshot := store.Snapshot()
	s.store.Replace(snapshot)

	s.logger.Info("catalogs reloaded",
		zap.Int("vacancies", snapshot.Vacancies.Len()),
		zap.Int("courses", snapshot.Courses.Len()),
	)
	return nil
}

// deliver prints the answer, rewritten by the assistant when one is
// configured. Assistant failures fall back to the raw answer.
func (s *session) deliver(question, answer string) {
	if s.assistant != nil {
		composed, err := s.assistant.Compose(s.ctx, &ai.Request{
			Question: question,
			Answer:   answer,
			Profile:  s.intake,
		})
		if err == nil {
			fmt.Println(composed)
			return
		}
		s.logger.Warn("assistant failed, printing the raw answer", zap.Error(err))
	}

	fmt.Println(answer)
}

func loadCatalogs(cfg *CatalogConfig) (*catalog.Store, error) {
	vacancies, err := catalog.LoadVacancies(cfg.VacanciesFile)
	if err != nil {
		return nil, fmt.Errorf("vacancy catalog: %w", err)
	}

	courses, err := catalog.LoadCourses(cfg.CoursesFile)
	if err != nil {
		return nil, fmt.Errorf("course catalog: %w", err)
	}

	return catalog.NewStore(&catalog.Snapshot{
		Vacancies: vacancies,
		Courses:   courses,
	}), nil
}

func buildAdvisor(store *catalog.Store, matching *MatchingConfig, logger *zap.Logger) (*advisor.Advisor, error) {
	table, err := skills.NewSynonymTable(skills.DefaultSynonyms())
	if err != nil {
		return nil, fmt.Errorf("building the synonym table: %w", err)
	}

	var cfg *advisor.Config
	if matching != nil {
		cfg = &advisor.Config{
			SimilarityThreshold:   matching.SimilarityThreshold,
			VacancyScoreThreshold: matching.VacancyScoreThreshold,
			AdviceThreshold:       matching.AdviceThreshold,
			TopDirections:         matching.TopDirections,
			TopVacancies:          matching.TopVacancies,
			CoursesPerSkill:       matching.CoursesPerSkill,
		}
	}

	return advisor.New(advisor.Deps{
		Store:      store,
		Vocabulary: table,
		Logger:     logger,
	}, cfg)
}

func newAssistant(ctx context.Context, cfg *AIConfig, log *zap.Logger) (ai.Assistant, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required when the assistant is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	genLogger := logger.WithAssistantFields(log, "gemini", cfg.Gemini.Model).
		With(zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries))

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewComposer(generator, genLogger, cfg.Gemini.MaxLogLength), nil
}

func formatProfile(profile *skills.Profile) string {
	var b strings.Builder
	b.WriteString("Your profile:\n")
	if len(profile.Skills) > 0 {
		fmt.Fprintf(&b, "  Skills: %s\n", strings.Join(profile.Skills, ", "))
	} else {
		b.WriteString("  Skills: none recognized yet\n")
	}
	fmt.Fprintf(&b, "  Education: %s\n", profile.Education)
	fmt.Fprintf(&b, "  Experience: %s\n", profile.Experience)
	if len(profile.Interests) > 0 {
		fmt.Fprintf(&b, "  Interests: %s\n", strings.Join(profile.Interests, ", "))
	}
	return b.String()
}
