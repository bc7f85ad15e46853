package gemini

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

type fakeCallResponse struct {
	resp *genai.GenerateContentResponse
	err  error
}

type fakeContentCaller struct {
	mu      sync.Mutex
	queue   []fakeCallResponse
	calls   int
	prompts []string
}

func (f *fakeContentCaller) enqueue(resp *genai.GenerateContentResponse, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queue = append(f.queue, fakeCallResponse{resp: resp, err: err})
}

func (f *fakeContentCaller) GenerateContent(_ context.Context, _ string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	for _, content := range contents {
		for _, part := range content.Parts {
			f.prompts = append(f.prompts, part.Text)
		}
	}

	if len(f.queue) == 0 {
		return nil, errors.New("unexpected call")
	}
	res := f.queue[0]
	f.queue = f.queue[1:]
	return res.resp, res.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: text}}},
		}},
	}
}

func testGenerator(models contentCaller, maxRetries int) *Generator {
	return &Generator{
		models:     models,
		modelName:  "gemini-test",
		maxRetries: maxRetries,
		logger:     zap.NewNop(),
	}
}

func TestGeneratorRetriesOnError(t *testing.T) {
	caller := &fakeContentCaller{}
	caller.enqueue(nil, errors.New("temporary"))
	caller.enqueue(textResponse("retry ok"), nil)

	g := testGenerator(caller, 2)

	output, err := g.GenerateContent(context.Background(), "hello")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if output != "retry ok" {
		t.Fatalf("unexpected output: %q", output)
	}
	if caller.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", caller.calls)
	}
	if len(caller.prompts) == 0 || caller.prompts[0] != "hello" {
		t.Fatalf("unexpected prompts: %v", caller.prompts)
	}
}

func TestGeneratorStopsAfterRetriesExhausted(t *testing.T) {
	caller := &fakeContentCaller{}
	caller.enqueue(nil, errors.New("temporary"))
	caller.enqueue(nil, errors.New("temporary"))

	g := testGenerator(caller, 1)

	if _, err := g.GenerateContent(context.Background(), "hello"); err == nil {
		t.Fatal("expected error after retries exhausted")
	}
	if caller.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", caller.calls)
	}
}

func TestGeneratorEmptyPrompt(t *testing.T) {
	g := testGenerator(&fakeContentCaller{}, 0)

	if _, err := g.GenerateContent(context.Background(), "   "); err == nil {
		t.Fatal("expected error for an empty prompt")
	}
}

func TestGeneratorEmptyResponse(t *testing.T) {
	caller := &fakeContentCaller{}
	caller.enqueue(textResponse("   "), nil)

	g := testGenerator(caller, 0)

	if _, err := g.GenerateContent(context.Background(), "hello"); err == nil {
		t.Fatal("expected error for an empty response")
	}
}

func TestGeneratorStopsOnCancelledContext(t *testing.T) {
	caller := &fakeContentCaller{}
	caller.enqueue(nil, errors.New("temporary"))

	g := testGenerator(caller, 3)
	g.retryDelay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.GenerateContent(ctx, "hello")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
	if caller.calls != 1 {
		t.Fatalf("expected a single call before the retry wait, got %d", caller.calls)
	}
}
