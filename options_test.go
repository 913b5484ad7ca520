package surveylock

import (
	"net/http"
	"testing"
	"time"
)

func TestOptions_Apply(t *testing.T) {
	customHTTPClient := &http.Client{}

	cfg := &clientConfig{baseURL: defaultBaseURL}
	opts := []Option{
		WithBaseURL("https://surveys.example.com"),
		WithAPIKey("key-123"),
		WithHTTPClient(customHTTPClient),
		WithTimeout(45 * time.Second),
		WithRetries(5),
		WithRetryOn([]int{500, 503}),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.baseURL != "https://surveys.example.com" {
		t.Errorf("baseURL = %q", cfg.baseURL)
	}
	if cfg.apiKey != "key-123" {
		t.Errorf("apiKey = %q", cfg.apiKey)
	}
	if cfg.httpClient != customHTTPClient {
		t.Error("httpClient not set")
	}
	if cfg.timeout != 45*time.Second {
		t.Errorf("timeout = %v", cfg.timeout)
	}
	if cfg.retries != 5 {
		t.Errorf("retries = %d", cfg.retries)
	}
	if len(cfg.retryOn) != 2 {
		t.Errorf("retryOn = %v", cfg.retryOn)
	}
}

func TestNew_DefaultBaseURL(t *testing.T) {
	client, err := New("passphrase")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if client.apiClient == nil {
		t.Error("apiClient is nil")
	}
}
