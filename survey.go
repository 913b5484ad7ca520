package surveylock

import (
	"encoding/json"
	"fmt"
	"time"
)

// Question is a single survey question.
type Question struct {
	// ID is the question identifier, unique within the survey.
	ID string `json:"id"`
	// Prompt is the question text shown to respondents.
	Prompt string `json:"prompt"`
	// Type is the answer type, e.g. "text", "choice", "scale".
	Type string `json:"type,omitempty"`
	// Choices holds the options for choice questions.
	Choices []string `json:"choices,omitempty"`
	// Required marks the question as mandatory.
	Required bool `json:"required,omitempty"`
}

// Survey is a decrypted survey document. Raw preserves the exact plaintext
// JSON as it was sealed, byte for byte.
type Survey struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions,omitempty"`

	// CreatedAt and UpdatedAt come from the API listing, not from the
	// sealed document.
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Raw json.RawMessage `json:"-"`
}

// decodeSurvey parses an opened plaintext into a Survey, keeping the exact
// plaintext in Raw.
func decodeSurvey(plaintext string) (*Survey, error) {
	var survey Survey
	if err := json.Unmarshal([]byte(plaintext), &survey); err != nil {
		return nil, fmt.Errorf("decode survey document: %w", err)
	}
	survey.Raw = json.RawMessage(plaintext)
	return &survey, nil
}

// encodeSurvey renders a Survey as the plaintext document to seal. When Raw
// is set it is used verbatim, so a fetched document republishes byte-for-byte.
func encodeSurvey(survey *Survey) (string, error) {
	if len(survey.Raw) > 0 {
		return string(survey.Raw), nil
	}
	data, err := json.Marshal(survey)
	if err != nil {
		return "", fmt.Errorf("encode survey document: %w", err)
	}
	return string(data), nil
}
