package surveylock

import (
	"context"
	"net/http"

	"github.com/surveylock/client-go/internal/api"
)

// Client is the SurveyLock client. It fetches sealed surveys over HTTP and
// opens them with the passphrase it was constructed with. The passphrase is
// threaded into each codec call; the Client holds no other state and is safe
// for concurrent use.
type Client struct {
	apiClient  *api.Client
	passphrase string
}

// New creates a new SurveyLock client. The passphrase must match the one the
// publisher sealed the surveys with; it normally comes from process
// configuration (see [PassphraseFromEnv]), never from request input.
func New(passphrase string, opts ...Option) (*Client, error) {
	if passphrase == "" {
		return nil, ErrMissingPassphrase
	}

	cfg := &clientConfig{
		baseURL: defaultBaseURL,
		retries: -1,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: api.DefaultTimeout}
	}
	if cfg.timeout > 0 {
		httpClient.Timeout = cfg.timeout
	}

	retry := api.DefaultRetryConfig()
	if cfg.retries >= 0 {
		retry.MaxRetries = cfg.retries
	}
	if len(cfg.retryOn) > 0 {
		codes := make(map[int]struct{}, len(cfg.retryOn))
		for _, code := range cfg.retryOn {
			codes[code] = struct{}{}
		}
		retry.RetryableOn = func(statusCode int) bool {
			_, ok := codes[statusCode]
			return ok
		}
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:    cfg.baseURL,
		APIKey:     cfg.apiKey,
		HTTPClient: httpClient,
		Retry:      retry,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		apiClient:  apiClient,
		passphrase: passphrase,
	}, nil
}

// GetSurvey fetches a sealed survey by ID and opens it. An Open failure is
// fatal for the request: the typed error is returned as-is and must not be
// retried.
func (c *Client) GetSurvey(ctx context.Context, id string) (*Survey, error) {
	sealed, err := c.apiClient.GetSurvey(ctx, id)
	if err != nil {
		return nil, wrapAPIError(err)
	}
	return c.openSealed(sealed)
}

// ListSurveys fetches all sealed surveys and opens each one. A single
// envelope that fails to open fails the whole call; partial results are not
// returned.
func (c *Client) ListSurveys(ctx context.Context) ([]*Survey, error) {
	sealed, err := c.apiClient.ListSurveys(ctx)
	if err != nil {
		return nil, wrapAPIError(err)
	}

	surveys := make([]*Survey, 0, len(sealed))
	for i := range sealed {
		survey, err := c.openSealed(&sealed[i])
		if err != nil {
			return nil, err
		}
		surveys = append(surveys, survey)
	}
	return surveys, nil
}

// PublishSurvey seals a survey document and posts it to the API. It returns
// the stored survey's ID.
func (c *Client) PublishSurvey(ctx context.Context, survey *Survey) (string, error) {
	plaintext, err := encodeSurvey(survey)
	if err != nil {
		return "", err
	}

	envelope, err := Seal(plaintext, c.passphrase)
	if err != nil {
		return "", err
	}

	created, err := c.apiClient.CreateSurvey(ctx, api.CreateSurveyRequest{
		ID:   survey.ID,
		Data: envelope,
	})
	if err != nil {
		return "", wrapAPIError(err)
	}
	return created.ID, nil
}

// DeleteSurvey removes a survey by ID.
func (c *Client) DeleteSurvey(ctx context.Context, id string) error {
	return wrapAPIError(c.apiClient.DeleteSurvey(ctx, id))
}

// openSealed opens a sealed survey and decodes the document. The envelope in
// sealed.Data is passed to the codec verbatim.
func (c *Client) openSealed(sealed *api.SealedSurvey) (*Survey, error) {
	plaintext, err := Open(sealed.Data, c.passphrase)
	if err != nil {
		return nil, err
	}

	survey, err := decodeSurvey(plaintext)
	if err != nil {
		return nil, err
	}
	if survey.ID == "" {
		survey.ID = sealed.ID
	}
	survey.CreatedAt = sealed.CreatedAt
	survey.UpdatedAt = sealed.UpdatedAt
	return survey, nil
}
