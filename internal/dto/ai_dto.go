package dto

// ConversationTurn is a single exchange in an interview transcript.
// Role is either "candidate" or "interviewer".
type ConversationTurn struct {
	Role    string `json:"role"`
	Message string `json:"message"`
}

type EvaluateRequest struct {
	Conversation    []ConversationTurn `json:"conversation"`
	QuestionType    string             `json:"questionType"`
	SessionDuration float64            `json:"sessionDuration,omitempty"`
}

// EvaluationVerdict is the structured result extracted from the model's
// evaluation output. DimensionScores is keyed by rubric dimension name.
type EvaluationVerdict struct {
	CompositeScore  float64            `json:"composite_score"`
	DimensionScores map[string]float64 `json:"dimension_scores"`
	WhatWorkedWell  string             `json:"what_worked_well"`
	AreasToImprove  string             `json:"areas_to_improve"`
}

// ChatMessage mirrors the frontend's chat history shape (role/content),
// which differs from the transcript shape sent for evaluation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type QuestionContext struct {
	Question string `json:"question"`
	Type     string `json:"type"`
}

type ChatRequest struct {
	Message         string           `json:"message"`
	Conversation    []ChatMessage    `json:"conversation,omitempty"`
	QuestionContext *QuestionContext `json:"questionContext,omitempty"`
}

type ChatResponse struct {
	Response string `json:"response"`
}
