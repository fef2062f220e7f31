// Package summarizer calls the external text-summarization service and
// substitutes a deterministic truncation whenever that service is
// unavailable. Summarize has no failure mode visible to its caller.
package summarizer

import (
	"bytes"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"complaintgo/backend/internal/config"
)

// Source records where a summary value came from.
type Source string

const (
	// SourceDirect means the summarization service produced the value.
	SourceDirect Source = "direct"
	// SourceFallback means the value is the deterministic truncation.
	SourceFallback Source = "fallback"
)

// Summary is a summarization result together with its provenance.
type Summary struct {
	Value  string
	Source Source
}

// Summarizer produces a summary for a block of free text.
type Summarizer interface {
	Summarize(text string) Summary
}

// Client talks to the summarization microservice over HTTP.
type Client struct {
	Endpoint string
	HTTP     *http.Client
	Logger   *zap.Logger
}

// NewClient creates a summarizer client for the given endpoint. The timeout
// bounds the single attempt made per invocation; there are no retries.
func NewClient(cfg config.SummarizerConfig, logger *zap.Logger) *Client {
	return &Client{
		Endpoint: cfg.Endpoint,
		HTTP:     &http.Client{Timeout: cfg.Timeout},
		Logger:   logger,
	}
}

type summarizeRequest struct {
	Text string `json:"text"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
}

// Summarize requests a summary for text. Any failure, including a non-200
// status, a transport error, a timeout or a malformed body, terminates in
// the truncation fallback.
func (c *Client) Summarize(text string) Summary {
	body, err := json.Marshal(summarizeRequest{Text: text})
	if err != nil {
		return Summary{Value: Fallback(text), Source: SourceFallback}
	}

	resp, err := c.HTTP.Post(c.Endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		c.Logger.Warn("summarization service unreachable, using fallback", zap.Error(err))
		return Summary{Value: Fallback(text), Source: SourceFallback}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.Logger.Warn("summarization service returned non-200, using fallback",
			zap.Int("status", resp.StatusCode))
		return Summary{Value: Fallback(text), Source: SourceFallback}
	}

	var parsed summarizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil || parsed.Summary == "" {
		c.Logger.Warn("summarization service returned malformed body, using fallback",
			zap.Error(err))
		return Summary{Value: Fallback(text), Source: SourceFallback}
	}

	return Summary{Value: parsed.Summary, Source: SourceDirect}
}

// Fallback truncates text to the first FallbackSummaryLength characters and
// appends the ellipsis marker. Truncation counts runes, not bytes, so a
// multi-byte character is never split.
func Fallback(text string) string {
	runes := []rune(text)
	if len(runes) > config.FallbackSummaryLength {
		runes = runes[:config.FallbackSummaryLength]
	}
	return string(runes) + config.FallbackEllipsis
}
