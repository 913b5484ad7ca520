package api

import "time"

// SealedSurvey represents a survey as served by the API. Data is the sealed
// envelope; the document itself (title, questions) is only visible after
// opening it.
type SealedSurvey struct {
	ID        string    `json:"id"`
	Data      string    `json:"data"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// CreateSurveyRequest represents the POST /api/surveys request.
type CreateSurveyRequest struct {
	ID   string `json:"id,omitempty"`
	Data string `json:"data"`
}

// listSurveysResponse represents the GET /api/surveys response.
type listSurveysResponse struct {
	Surveys []SealedSurvey `json:"surveys"`
}
