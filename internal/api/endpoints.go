package api

import (
	"context"
	"fmt"
	"net/url"
)

// GetSurvey retrieves a sealed survey by ID.
func (c *Client) GetSurvey(ctx context.Context, id string) (*SealedSurvey, error) {
	path := fmt.Sprintf("/api/surveys/%s", url.PathEscape(id))
	var result SealedSurvey
	if err := c.Do(ctx, "GET", path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListSurveys lists all sealed surveys.
func (c *Client) ListSurveys(ctx context.Context) ([]SealedSurvey, error) {
	var result listSurveysResponse
	if err := c.Do(ctx, "GET", "/api/surveys", nil, &result); err != nil {
		return nil, err
	}
	return result.Surveys, nil
}

// CreateSurvey publishes a sealed survey.
func (c *Client) CreateSurvey(ctx context.Context, req CreateSurveyRequest) (*SealedSurvey, error) {
	var result SealedSurvey
	if err := c.Do(ctx, "POST", "/api/surveys", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteSurvey removes a survey by ID.
func (c *Client) DeleteSurvey(ctx context.Context, id string) error {
	path := fmt.Sprintf("/api/surveys/%s", url.PathEscape(id))
	return c.Do(ctx, "DELETE", path, nil, nil)
}
