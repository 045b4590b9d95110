package solvedac

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"algo-readme/internal/domain/model"
	"algo-readme/internal/domain/ports"
)

const (
	showProblemPath = "/api/v3/problem/show"

	// UntitledTitle is used when the service omits the Korean title.
	UntitledTitle = "제목 없음"
)

// Client implements ProblemProvider using the solved.ac public API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     ports.Logger
}

var _ ports.ProblemProvider = (*Client)(nil)

// New creates a new solved.ac client rooted at baseURL (e.g. https://solved.ac).
func New(baseURL string, timeout time.Duration, logger ports.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type problemResponse struct {
	TitleKo *string `json:"titleKo"`
	Level   *int    `json:"level"`
	Tags    []struct {
		DisplayNames []struct {
			Language string `json:"language"`
			Name     string `json:"name"`
		} `json:"displayNames"`
	} `json:"tags"`
}

// GetProblem retrieves the title, level and tags of a single problem.
func (c *Client) GetProblem(ctx context.Context, id int) (*model.Metadata, error) {
	query := url.Values{"problemId": {strconv.Itoa(id)}}
	endpoint := c.baseURL + showProblemPath + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	if c.logger != nil {
		c.logger.Debug(ctx, "calling solved.ac", "problem_id", id)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if c.logger != nil {
		c.logger.Debug(ctx, "solved.ac responded", "problem_id", id, "status", resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	payload, err := decodeProblem(resp.Body)
	if err != nil {
		return nil, err
	}

	meta := &model.Metadata{
		Title: UntitledTitle,
		Tags:  make([]string, 0, len(payload.Tags)),
	}
	if payload.TitleKo != nil {
		meta.Title = *payload.TitleKo
	}
	if payload.Level != nil {
		meta.Level = *payload.Level
	}
	for _, tag := range payload.Tags {
		if len(tag.DisplayNames) == 0 {
			continue
		}
		meta.Tags = append(meta.Tags, tag.DisplayNames[0].Name)
	}

	return meta, nil
}

// decodeProblem requires exactly one JSON object in r; null or trailing data is malformed.
func decodeProblem(r io.Reader) (*problemResponse, error) {
	dec := json.NewDecoder(r)

	var payload *problemResponse
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if payload == nil {
		return nil, fmt.Errorf("decode response: empty payload")
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); err != io.EOF {
		if err == nil {
			err = fmt.Errorf("unexpected trailing data")
		}
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return payload, nil
}
