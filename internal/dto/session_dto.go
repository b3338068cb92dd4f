package dto

// SessionRequest is the writable part of an interview session. The same
// shape is used for create and update; the user id always comes from the
// authenticated caller, never the body.
type SessionRequest struct {
	QuestionID      string             `json:"question_id,omitempty"`
	QuestionTitle   string             `json:"question_title,omitempty"`
	QuestionType    string             `json:"question_type,omitempty"`
	Transcript      []ConversationTurn `json:"transcript,omitempty"`
	Status          string             `json:"status,omitempty"`
	CompositeScore  float64            `json:"composite_score,omitempty"`
	DimensionScores map[string]float64 `json:"dimension_scores,omitempty"`
	WhatWorkedWell  string             `json:"what_worked_well,omitempty"`
	AreasToImprove  string             `json:"areas_to_improve,omitempty"`
	DurationSeconds float64            `json:"duration_seconds,omitempty"`
}

type StatsRequest struct {
	TotalInterviews int     `json:"total_interviews"`
	TotalMinutes    float64 `json:"total_minutes"`
	AverageScore    float64 `json:"average_score"`
	BestScore       float64 `json:"best_score"`
}
