package deepgram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dskvich/deepgram-telegram-bot/pkg/domain"
)

const defaultBaseURL = "https://api.deepgram.com"

// RequestError is a non-2xx answer from the Deepgram API. A 400 typically
// means the language+model combination is not served by the requested API
// version.
type RequestError struct {
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("deepgram: status %d: %s", e.StatusCode, e.Body)
}

// IsBadRequest reports whether err is a 4xx rejection from Deepgram.
func IsBadRequest(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.StatusCode >= 400 && reqErr.StatusCode < 500
}

type client struct {
	apiKey  string
	baseURL string
	hc      *http.Client
}

func NewClient(apiKey string) (*client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key is empty")
	}
	return &client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		hc:      &http.Client{},
	}, nil
}

// Transcribe sends audio to the prerecorded endpoint and returns the plain
// transcript. Smart formatting and punctuation are always on.
func (c *client) Transcribe(ctx context.Context, audio []byte, mimeType string, opts domain.SpeechSettings) (string, error) {
	params := url.Values{}
	params.Set("smart_format", "true")
	params.Set("punctuate", "true")
	if opts.DetectLanguage {
		params.Set("detect_language", "true")
	} else {
		params.Set("language", opts.Language)
	}
	if opts.Model != "" {
		params.Set("model", opts.Model)
	}

	endpoint := c.baseURL + "/v1/listen?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(audio))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+c.apiKey)
	req.Header.Set("Content-Type", mimeType)

	var response transcriptionResponse
	if err := c.do(req, &response); err != nil {
		return "", err
	}

	return response.transcript(), nil
}

// Analyze sends text to the read endpoint with the feature flags from opts.
func (c *client) Analyze(ctx context.Context, text string, opts domain.TISettings) (*Analysis, error) {
	params := url.Values{}
	params.Set("language", opts.Language)
	if opts.Summarize != domain.SummarizeOff {
		params.Set("summarize", opts.Summarize)
	}
	if opts.Topics {
		params.Set("topics", "true")
	}
	if opts.Intents {
		params.Set("intents", "true")
	}
	if opts.Sentiment {
		params.Set("sentiment", "true")
	}

	endpoint := c.baseURL + "/v1/read?" + params.Encode()

	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	var response analysisResponse
	if err := c.do(req, &response); err != nil {
		return nil, err
	}

	return response.toAnalysis(), nil
}

func (c *client) do(req *http.Request, out any) error {
	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &RequestError{StatusCode: resp.StatusCode, Body: truncate(string(data), 500)}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "… (" + strconv.Itoa(len(s)) + " bytes)"
}
