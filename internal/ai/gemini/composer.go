package gemini

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/spigell/career-navigator/internal/ai"
	"github.com/spigell/career-navigator/internal/util"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

// Composer rewrites engine answers into conversational prose via Gemini.
// It implements ai.Assistant.
type Composer struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewComposer(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Composer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Composer{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

// Compose builds the rewrite prompt and returns Gemini's plain-text
// rendition of the answer. Model output wrapped in a code fence is
// unwrapped; everything else is returned as-is.
func (c *Composer) Compose(ctx context.Context, req *ai.Request) (string, error) {
	if req == nil {
		return "", fmt.Errorf("request is required")
	}
	if strings.TrimSpace(req.Answer) == "" {
		return "", fmt.Errorf("request answer must not be empty")
	}

	prompt := buildPrompt(req)

	c.logger.Debug("gemini compose request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", util.TruncateForLog(prompt, c.maxLogLen)),
	)

	raw, err := c.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return "", err
	}

	c.logger.Debug("gemini compose response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", util.TruncateForLog(raw, c.maxLogLen)),
	)

	output := stripFences(raw)
	if output == "" {
		return "", fmt.Errorf("gemini returned an empty rewrite")
	}

	return output, nil
}

func buildPrompt(req *ai.Request) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Question:\n{{QUESTION}}\n\nProfile:\n{{PROFILE}}\n\nAnswer to rewrite:\n{{ANSWER}}"
	}

	profile := strings.TrimSpace(req.Profile)
	if profile == "" {
		profile = "not provided"
	}

	prompt := strings.ReplaceAll(template, "{{QUESTION}}", strings.TrimSpace(req.Question))
	prompt = strings.ReplaceAll(prompt, "{{PROFILE}}", profile)
	prompt = strings.ReplaceAll(prompt, "{{ANSWER}}", strings.TrimSpace(req.Answer))
	return prompt
}

func stripFences(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```text")
		raw = strings.TrimPrefix(raw, "```markdown")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	return strings.TrimSpace(raw)
}
