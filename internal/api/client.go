package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client is the HTTP client for the platform backend. It implements
// LevelingService, AchievementService, and QuizService.
type Client struct {
	config     Config
	httpClient *http.Client
}

var (
	_ LevelingService    = (*Client)(nil)
	_ AchievementService = (*Client)(nil)
	_ QuizService        = (*Client)(nil)
)

// NewClient creates a platform client from the given config.
func NewClient(cfg Config) *Client {
	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type levelRequest struct {
	XP int `json:"xp"`
}

type levelResponse struct {
	Success   bool      `json:"success"`
	LevelInfo LevelInfo `json:"level_info"`
	Error     string    `json:"error,omitempty"`
}

// LevelFor returns the level classification for the given XP total.
func (c *Client) LevelFor(ctx context.Context, xp int) (*LevelInfo, error) {
	var resp levelResponse
	if err := c.post(ctx, "/progress/level", levelRequest{XP: xp}, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("level endpoint reported failure: %s", resp.Error)}
	}
	return &resp.LevelInfo, nil
}

type evaluateStatsRequest struct {
	UserStats UserStats `json:"user_stats"`
}

type evaluateStatsResponse struct {
	Success       bool          `json:"success"`
	NewlyUnlocked []Achievement `json:"newly_unlocked"`
	TotalUnlocked int           `json:"total_unlocked"`
	Error         string        `json:"error,omitempty"`
}

// CheckAchievements submits user stats for achievement evaluation.
func (c *Client) CheckAchievements(ctx context.Context, stats UserStats) ([]Achievement, error) {
	var resp evaluateStatsResponse
	if err := c.post(ctx, "/progress/achievements/check", evaluateStatsRequest{UserStats: stats}, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("achievement check reported failure: %s", resp.Error)}
	}
	return resp.NewlyUnlocked, nil
}

type catalogResponse struct {
	Success      bool          `json:"success"`
	Achievements []Achievement `json:"achievements"`
	Error        string        `json:"error,omitempty"`
}

// AchievementCatalog returns every defined achievement.
func (c *Client) AchievementCatalog(ctx context.Context) ([]Achievement, error) {
	var resp catalogResponse
	if err := c.get(ctx, "/progress/achievements", &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("achievement catalog reported failure: %s", resp.Error)}
	}
	return resp.Achievements, nil
}

type generateRequest struct {
	Skill        []string `json:"skill"`
	Difficulty   string   `json:"difficulty"`
	NumQuestions int      `json:"num_questions"`
}

type generateResponse struct {
	Success bool            `json:"success"`
	Quiz    json.RawMessage `json:"quiz"`
	Error   string          `json:"error,omitempty"`
}

// GenerateQuiz builds a quiz for the given skills and difficulty. The quiz
// payload is schema-validated before it is accepted.
func (c *Client) GenerateQuiz(ctx context.Context, skills []string, difficulty string, numQuestions int) (*Quiz, error) {
	req := generateRequest{
		Skill:        skills,
		Difficulty:   difficulty,
		NumQuestions: numQuestions,
	}
	var resp generateResponse
	if err := c.post(ctx, "/quiz/generate", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("quiz generation reported failure: %s", resp.Error)}
	}
	if err := validatePayload(quizSchema, resp.Quiz); err != nil {
		return nil, err
	}
	var quiz Quiz
	if err := json.Unmarshal(resp.Quiz, &quiz); err != nil {
		return nil, &ErrInvalidResponse{Body: resp.Quiz, Err: err}
	}
	return &quiz, nil
}

type evaluateQuizRequest struct {
	QuizID  string         `json:"quiz_id"`
	Answers map[string]int `json:"answers"`
}

type evaluateQuizResponse struct {
	Success bool            `json:"success"`
	Results json.RawMessage `json:"results"`
	Error   string          `json:"error,omitempty"`
}

// EvaluateQuiz scores the given answers against the quiz's answer key.
func (c *Client) EvaluateQuiz(ctx context.Context, quizID string, answers map[string]int) (*QuizResult, error) {
	if answers == nil {
		answers = map[string]int{}
	}
	req := evaluateQuizRequest{QuizID: quizID, Answers: answers}
	var resp evaluateQuizResponse
	if err := c.post(ctx, "/quiz/evaluate", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("quiz evaluation reported failure: %s", resp.Error)}
	}
	if err := validatePayload(quizResultSchema, resp.Results); err != nil {
		return nil, err
	}
	var result QuizResult
	if err := json.Unmarshal(resp.Results, &result); err != nil {
		return nil, &ErrInvalidResponse{Body: resp.Results, Err: err}
	}
	return &result, nil
}

// post issues a JSON POST and decodes the response envelope into out,
// retrying transient failures per the client's retry config.
func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	return c.doWithRetry(ctx, http.MethodPost, path, payload, out)
}

// get issues a GET and decodes the response envelope into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.doWithRetry(ctx, http.MethodGet, path, nil, out)
}

// do performs a single HTTP round trip. Network-level failures are wrapped
// in ErrServiceUnavailable; non-2xx statuses in ErrStatus.
func (c *Client) do(ctx context.Context, method, path string, payload []byte, out any) error {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ErrServiceUnavailable{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ErrServiceUnavailable{Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ErrStatus{Code: resp.StatusCode, Body: string(respBody)}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return &ErrInvalidResponse{Body: respBody, Err: err}
	}
	return nil
}
