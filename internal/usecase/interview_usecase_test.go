package usecase

import (
	"context"
	"testing"

	"github.com/prepdeck/interview-api/internal/dto"
	"github.com/prepdeck/interview-api/internal/service"
	"github.com/prepdeck/interview-api/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	response   string
	err        error
	calls      int
	lastModel  string
	lastPrompt string
}

func (s *stubGenerator) Generate(ctx context.Context, model string, prompt string) (string, error) {
	s.calls++
	s.lastModel = model
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

const allOnesVerdict = `{"composite_score": 1.0, "dimension_scores": {` +
	`"Problem Breakdown & Structure": 1, "Logical Assumptions": 1, ` +
	`"Mathematical Accuracy": 1, "Sanity Checks": 1, "Communication": 1}, ` +
	`"what_worked_well": "Nothing substantive to assess.", ` +
	`"areas_to_improve": "Engage with the question."}`

func TestEvaluateRejectsMissingFields(t *testing.T) {
	gen := &stubGenerator{}
	uc := NewInterviewUsecase(gen, "chat-model", "eval-model")

	_, err := uc.Evaluate(context.Background(), dto.EvaluateRequest{QuestionType: "design"})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = uc.Evaluate(context.Background(), dto.EvaluateRequest{
		Conversation: []dto.ConversationTurn{{Role: "candidate", Message: "Hi"}},
	})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	// No model invocation is attempted for invalid requests.
	assert.Zero(t, gen.calls)
}

func TestEvaluateGreetingOnlyGuesstimate(t *testing.T) {
	gen := &stubGenerator{response: allOnesVerdict}
	uc := NewInterviewUsecase(gen, "chat-model", "eval-model")

	verdict, err := uc.Evaluate(context.Background(), dto.EvaluateRequest{
		Conversation: []dto.ConversationTurn{
			{Role: "candidate", Message: "Hi"},
			{Role: "candidate", Message: "Thanks, I'm done"},
		},
		QuestionType:    "guesstimate",
		SessionDuration: 90,
	})
	require.NoError(t, err)

	assert.Equal(t, 1.0, verdict.CompositeScore)
	assert.Len(t, verdict.DimensionScores, 5)

	// The thin-transcript policy travels in the prompt, alongside the
	// transcript itself.
	assert.Equal(t, "eval-model", gen.lastModel)
	assert.Contains(t, gen.lastPrompt, "If <= 2 substantive messages: SET ALL SCORES TO 1")
	assert.Contains(t, gen.lastPrompt, "candidate: Hi\ncandidate: Thanks, I'm done")
	assert.Contains(t, gen.lastPrompt, `"Sanity Checks"`)
}

func TestEvaluateUnknownTypeUsesDesignRubric(t *testing.T) {
	gen := &stubGenerator{response: allOnesVerdict}
	uc := NewInterviewUsecase(gen, "chat-model", "eval-model")

	_, err := uc.Evaluate(context.Background(), dto.EvaluateRequest{
		Conversation: []dto.ConversationTurn{{Role: "candidate", Message: "Hi"}},
		QuestionType: "behavioral",
	})
	// The design rubric was selected, so the guesstimate-only verdict above
	// is missing expected dimensions.
	assert.ErrorIs(t, err, util.ErrMalformedVerdict)
	assert.Contains(t, gen.lastPrompt, `"User-Centric Thinking"`)
}

func TestEvaluateSurfacesModelFailure(t *testing.T) {
	gen := &stubGenerator{err: service.ErrModelUnavailable}
	uc := NewInterviewUsecase(gen, "chat-model", "eval-model")

	_, err := uc.Evaluate(context.Background(), dto.EvaluateRequest{
		Conversation: []dto.ConversationTurn{{Role: "candidate", Message: "Hi"}},
		QuestionType: "design",
	})
	assert.ErrorIs(t, err, service.ErrModelUnavailable)
}

func TestEvaluateSurfacesMalformedVerdict(t *testing.T) {
	gen := &stubGenerator{response: "I refuse to produce JSON today."}
	uc := NewInterviewUsecase(gen, "chat-model", "eval-model")

	_, err := uc.Evaluate(context.Background(), dto.EvaluateRequest{
		Conversation: []dto.ConversationTurn{{Role: "candidate", Message: "Hi"}},
		QuestionType: "rca",
	})
	assert.ErrorIs(t, err, util.ErrMalformedVerdict)
}

func TestChatReturnsTrimmedFreeText(t *testing.T) {
	gen := &stubGenerator{response: "  Can you be more specific?\n"}
	uc := NewInterviewUsecase(gen, "chat-model", "eval-model")

	response, err := uc.Chat(context.Background(), dto.ChatRequest{
		Message: "I would improve the onboarding flow.",
		Conversation: []dto.ChatMessage{
			{Role: "interviewer", Content: "What would you improve first?"},
		},
		QuestionContext: &dto.QuestionContext{
			Question: "How would you improve user engagement on Instagram?",
			Type:     "improvement",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Can you be more specific?", response)

	assert.Equal(t, "chat-model", gen.lastModel)
	assert.Contains(t, gen.lastPrompt, "How would you improve user engagement on Instagram?")
	assert.Contains(t, gen.lastPrompt, "Candidate's latest message: I would improve the onboarding flow.")
}

func TestChatRejectsMissingMessage(t *testing.T) {
	gen := &stubGenerator{}
	uc := NewInterviewUsecase(gen, "chat-model", "eval-model")

	_, err := uc.Chat(context.Background(), dto.ChatRequest{Message: "   "})
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Zero(t, gen.calls)
}
