package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/prepdeck/interview-api/internal/dto"
	"github.com/prepdeck/interview-api/internal/prompt"
	"github.com/prepdeck/interview-api/internal/service"
	"github.com/prepdeck/interview-api/internal/util"
)

// ErrInvalidRequest marks client errors caught before any model invocation.
var ErrInvalidRequest = errors.New("invalid request")

// InterviewUsecase drives the two model-backed flows: rubric evaluation of
// a finished interview and the interviewer chat turn.
type InterviewUsecase struct {
	generator service.TextGenerator
	chatModel string
	evalModel string
}

func NewInterviewUsecase(generator service.TextGenerator, chatModel, evalModel string) *InterviewUsecase {
	return &InterviewUsecase{generator: generator, chatModel: chatModel, evalModel: evalModel}
}

// Evaluate runs the full evaluation pipeline: validate, select rubric,
// build the prompt, invoke the model, extract the verdict. Nothing is
// persisted mid-flow, so a failure at any step leaves no partial state.
func (uc *InterviewUsecase) Evaluate(ctx context.Context, req dto.EvaluateRequest) (*dto.EvaluationVerdict, error) {
	if len(req.Conversation) == 0 || req.QuestionType == "" {
		return nil, fmt.Errorf("%w: conversation and questionType are required", ErrInvalidRequest)
	}

	rubric := prompt.LookupRubric(req.QuestionType)
	log.Printf("evaluation request: questionType=%s conversationLength=%d sessionDuration=%.0f rubric=%v",
		req.QuestionType, len(req.Conversation), req.SessionDuration, rubric.Dimensions)

	fullPrompt := prompt.BuildEvaluationPrompt(rubric, req.Conversation)

	raw, err := uc.generator.Generate(ctx, uc.evalModel, fullPrompt)
	if err != nil {
		return nil, err
	}

	verdict, err := util.ExtractVerdict(raw, rubric.Dimensions)
	if err != nil {
		// Raw model text stays in the logs, never in the response.
		log.Printf("verdict extraction failed: %v; raw output: %.300s", err, raw)
		return nil, err
	}

	log.Printf("evaluation completed: compositeScore=%.2f dimensions=%d",
		verdict.CompositeScore, len(verdict.DimensionScores))
	return verdict, nil
}

// Chat answers the candidate's latest message in the interviewer persona.
// The response is free text by design, no structured extraction.
func (uc *InterviewUsecase) Chat(ctx context.Context, req dto.ChatRequest) (string, error) {
	if strings.TrimSpace(req.Message) == "" {
		return "", fmt.Errorf("%w: message is required", ErrInvalidRequest)
	}

	var question, questionType string
	if req.QuestionContext != nil {
		question = req.QuestionContext.Question
		questionType = req.QuestionContext.Type
	}

	interviewerPrompt := prompt.InterviewerPrompt(question, questionType, req.Conversation, req.Message)

	raw, err := uc.generator.Generate(ctx, uc.chatModel, interviewerPrompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}
