package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 60 * time.Second

// Config holds transport client settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// DefaultConfig returns a config targeting a local server. LLM-mode calls
// can take several seconds, so the timeout is generous.
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://localhost:8080",
		Timeout: defaultTimeout,
	}
}

// Client issues the four remote operations of the quiz service: start
// session, fetch question, submit answer, fetch metrics. It holds no session
// state of its own.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a transport client from cfg.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// StartSession creates a new session in the given mode and returns its id.
func (c *Client) StartSession(ctx context.Context, mode Mode) (string, error) {
	var resp startResponse
	err := c.postJSON(ctx, "/session/start", startRequest{Mode: string(mode)}, &resp)
	if err != nil {
		return "", &StartError{Err: err}
	}
	if resp.SessionID == "" {
		return "", &StartError{Err: fmt.Errorf("server returned empty session id")}
	}
	return resp.SessionID, nil
}

// NextQuestion fetches the next question for the session.
func (c *Client) NextQuestion(ctx context.Context, sessionID string) (*QuestionResult, error) {
	var resp QuestionResult
	err := c.getJSON(ctx, "/session/question", sessionID, &resp)
	if err != nil {
		return nil, &FetchError{What: "question", Err: err}
	}
	return &resp, nil
}

// SubmitAnswer submits the user's answer for scoring. The answer text is
// sent as given; matching it against the question's options is the caller's
// responsibility.
func (c *Client) SubmitAnswer(ctx context.Context, sessionID, questionID, answer string) (*AnswerResult, error) {
	req := submitRequest{
		SessionID:  sessionID,
		QuestionID: questionID,
		UserAnswer: answer,
	}
	var resp AnswerResult
	if err := c.postJSON(ctx, "/session/answer", req, &resp); err != nil {
		return nil, &SubmitError{Err: err}
	}
	return &resp, nil
}

// Metrics fetches the full metrics snapshot for the session.
func (c *Client) Metrics(ctx context.Context, sessionID string) (*MetricsSnapshot, error) {
	var resp MetricsSnapshot
	err := c.getJSON(ctx, "/session/metrics", sessionID, &resp)
	if err != nil {
		return nil, &FetchError{What: "metrics", Err: err}
	}
	return &resp, nil
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) getJSON(ctx context.Context, path, sessionID string, out any) error {
	u := c.baseURL + path + "?session_id=" + url.QueryEscape(sessionID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if json.Unmarshal(data, &errResp) == nil && errResp.Error != "" {
			return fmt.Errorf("HTTP %d: %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("HTTP %d for %s", resp.StatusCode, req.URL.Path)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
