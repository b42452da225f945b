package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
)

// Client for interacting with the Gemini generateContent endpoint.
type Client struct {
	HTTPClient *http.Client
	Log        *logrus.Logger

	baseURL *url.URL
}

// NewClient creates a new Gemini API client targeting baseURL.
func NewClient(baseURL string, httpClient *http.Client, logger *logrus.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid gemini url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid gemini url %q: scheme and host are required", baseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		HTTPClient: httpClient,
		Log:        logger,
		baseURL:    u,
	}, nil
}

// URL returns the configured endpoint without credentials.
func (c *Client) URL() string {
	return c.baseURL.String()
}

func (c *Client) endpoint(apiKey string) string {
	u := *c.baseURL
	q := u.Query()
	q.Set("key", apiKey)
	u.RawQuery = q.Encode()
	return u.String()
}

// GenerateText sends prompt as a single-part request and returns the text of
// the first part of the first candidate.
func (c *Client) GenerateText(ctx context.Context, apiKey, prompt string) (string, error) {
	requestBody, err := json.Marshal(NewTextRequest(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}
	c.Log.Debugf("Gemini API Request: %s", requestBody)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(apiKey), bytes.NewReader(requestBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		// url.Error embeds the request URL, which carries the key.
		var ue *url.Error
		if errors.As(err, &ue) {
			err = ue.Err
		}
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	c.Log.Debugf("Gemini API Response Status: %d", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var envelope GenerateResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	text, err := envelope.FirstText()
	if err != nil {
		c.Log.WithFields(logrus.Fields{
			"reason": err.Error(),
			"body":   string(respBody),
		}).Error("Gemini response carries no generated text")
		return "", err
	}

	c.Log.Debugf("Gemini API Response Body: %s", respBody)
	return text, nil
}
