package llm

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// ClaudeClient provides access to the Claude API with rate limiting,
// response caching, and usage accounting.
type ClaudeClient struct {
	apiKey     string
	baseURL    string
	model      string
	maxTokens  int
	maxRetries int
	httpClient *http.Client

	// Rate limiting
	rateLimiter *rate.Limiter

	// Caching
	cache    *Cache
	cacheTTL time.Duration

	// Metrics
	metrics *Metrics
	mu      sync.RWMutex
}

// Config for Claude client
type Config struct {
	APIKey       string
	BaseURL      string
	Model        string
	MaxTokens    int
	Timeout      time.Duration
	RateLimitRPM int // Requests per minute
	CacheTTL     time.Duration
	MaxRetries   int
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		BaseURL:      "https://api.anthropic.com",
		Model:        "claude-sonnet-4-20250514",
		MaxTokens:    4096,
		Timeout:      60 * time.Second,
		RateLimitRPM: 50,
		CacheTTL:     1 * time.Hour,
		MaxRetries:   3,
	}
}

// Metrics tracks API usage
type Metrics struct {
	TotalRequests   int64
	SuccessRequests int64
	FailedRequests  int64
	TotalTokensIn   int64
	TotalTokensOut  int64
	TotalCost       float64
	TotalLatencyMs  int64
	CacheHits       int64
	CacheMisses     int64
}

// Cache for LLM responses
type Cache struct {
	data map[string]cacheEntry
	mu   sync.RWMutex
}

type cacheEntry struct {
	response  []byte
	expiresAt time.Time
}

// NewCache creates a new cache
func NewCache() *Cache {
	return &Cache{
		data: make(map[string]cacheEntry),
	}
}

// Get retrieves from cache
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.data[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.response, true
}

// Set stores in cache
func (c *Cache) Set(key string, value []byte, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = cacheEntry{
		response:  value,
		expiresAt: time.Now().Add(ttl),
	}
}

// NewClaudeClient creates a new Claude API client
func NewClaudeClient(cfg Config) (*ClaudeClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	// Merge with defaults
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultConfig().BaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultConfig().Model
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = DefaultConfig().MaxTokens
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if cfg.RateLimitRPM == 0 {
		cfg.RateLimitRPM = DefaultConfig().RateLimitRPM
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = DefaultConfig().CacheTTL
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultConfig().MaxRetries
	}

	// Create rate limiter (tokens per second = RPM / 60)
	limiter := rate.NewLimiter(rate.Limit(float64(cfg.RateLimitRPM)/60.0), 1)

	return &ClaudeClient{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		maxTokens:  cfg.MaxTokens,
		maxRetries: cfg.MaxRetries,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		rateLimiter: limiter,
		cache:       NewCache(),
		cacheTTL:    cfg.CacheTTL,
		metrics:     &Metrics{},
	}, nil
}

// Request represents a Claude API request
type Request struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	System      string    `json:"system,omitempty"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
}

// Message represents a conversation message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Response represents a Claude API response
type Response struct {
	ID           string         `json:"id"`
	Type         string         `json:"type"`
	Role         string         `json:"role"`
	Content      []ContentBlock `json:"content"`
	Model        string         `json:"model"`
	StopReason   string         `json:"stop_reason"`
	StopSequence string         `json:"stop_sequence,omitempty"`
	Usage        Usage          `json:"usage"`
}

// ContentBlock represents a content block in the response
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Usage contains token usage information
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// APIError carries the HTTP status of a failed API call so callers can
// distinguish quota and auth failures from transient ones.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Body)
}

// Complete sends a completion request to Claude
func (c *ClaudeClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, *Usage, error) {
	atomic.AddInt64(&c.metrics.TotalRequests, 1)

	// Check cache
	cacheKey := c.cacheKey(systemPrompt, userPrompt)
	if cached, ok := c.cache.Get(cacheKey); ok {
		atomic.AddInt64(&c.metrics.CacheHits, 1)
		return string(cached), nil, nil
	}
	atomic.AddInt64(&c.metrics.CacheMisses, 1)

	// Rate limiting
	if err := c.rateLimiter.Wait(ctx); err != nil {
		atomic.AddInt64(&c.metrics.FailedRequests, 1)
		return "", nil, fmt.Errorf("rate limit: %w", err)
	}

	start := time.Now()

	req := Request{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System:    systemPrompt,
		Messages: []Message{
			{Role: "user", Content: userPrompt},
		},
		Temperature: 0.3, // Lower temperature for more deterministic output
	}

	resp, err := c.doRequest(ctx, req)
	if err != nil {
		atomic.AddInt64(&c.metrics.FailedRequests, 1)
		return "", nil, err
	}

	// Update metrics
	atomic.AddInt64(&c.metrics.SuccessRequests, 1)
	atomic.AddInt64(&c.metrics.TotalTokensIn, int64(resp.Usage.InputTokens))
	atomic.AddInt64(&c.metrics.TotalTokensOut, int64(resp.Usage.OutputTokens))
	atomic.AddInt64(&c.metrics.TotalLatencyMs, time.Since(start).Milliseconds())

	c.mu.Lock()
	c.metrics.TotalCost += c.calculateCost(resp.Usage)
	c.mu.Unlock()

	if len(resp.Content) == 0 {
		return "", &resp.Usage, fmt.Errorf("empty response")
	}

	text := resp.Content[0].Text

	c.cache.Set(cacheKey, []byte(text), c.cacheTTL)

	return text, &resp.Usage, nil
}

// CompleteJSON sends a completion request and parses the JSON response,
// retrying when the model returns malformed output.
func (c *ClaudeClient) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string, result interface{}) (*Usage, error) {
	jsonSystemPrompt := systemPrompt + "\n\nIMPORTANT: Return ONLY valid JSON. No markdown, no code blocks, no explanations."

	var lastErr error
	var totalUsage Usage

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if ctx.Err() != nil {
			break
		}

		text, usage, err := c.Complete(ctx, jsonSystemPrompt, userPrompt)
		if err != nil {
			lastErr = err
			// Auth and quota failures will not recover on retry.
			var apiErr *APIError
			if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden || apiErr.StatusCode == http.StatusPaymentRequired) {
				break
			}
			time.Sleep(time.Duration(attempt+1) * time.Second)
			continue
		}

		if usage != nil {
			totalUsage.InputTokens += usage.InputTokens
			totalUsage.OutputTokens += usage.OutputTokens
		}

		jsonStr := extractJSON(text)
		if jsonStr == "" {
			lastErr = fmt.Errorf("no JSON found in response")
			continue
		}

		if err := json.Unmarshal([]byte(jsonStr), result); err != nil {
			lastErr = fmt.Errorf("invalid JSON: %w", err)
			continue
		}

		return &totalUsage, nil
	}

	return &totalUsage, fmt.Errorf("failed after %d attempts: %w", c.maxRetries, lastErr)
}

// doRequest performs the HTTP request
func (c *ClaudeClient) doRequest(ctx context.Context, req Request) (*Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var apiResp Response
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	return &apiResp, nil
}

// calculateCost calculates the cost of a request
func (c *ClaudeClient) calculateCost(usage Usage) float64 {
	// Claude Sonnet pricing: $3 per million input tokens, $15 per million output
	inputCost := float64(usage.InputTokens) / 1000000 * 3.00
	outputCost := float64(usage.OutputTokens) / 1000000 * 15.00
	return inputCost + outputCost
}

// cacheKey generates a cache key from prompts
func (c *ClaudeClient) cacheKey(systemPrompt, userPrompt string) string {
	h := sha256.Sum256([]byte(c.model + "|" + systemPrompt + "|" + userPrompt))
	return hex.EncodeToString(h[:])
}

// GetMetrics returns current metrics
func (c *ClaudeClient) GetMetrics() Metrics {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return Metrics{
		TotalRequests:   atomic.LoadInt64(&c.metrics.TotalRequests),
		SuccessRequests: atomic.LoadInt64(&c.metrics.SuccessRequests),
		FailedRequests:  atomic.LoadInt64(&c.metrics.FailedRequests),
		TotalTokensIn:   atomic.LoadInt64(&c.metrics.TotalTokensIn),
		TotalTokensOut:  atomic.LoadInt64(&c.metrics.TotalTokensOut),
		TotalCost:       c.metrics.TotalCost,
		TotalLatencyMs:  atomic.LoadInt64(&c.metrics.TotalLatencyMs),
		CacheHits:       atomic.LoadInt64(&c.metrics.CacheHits),
		CacheMisses:     atomic.LoadInt64(&c.metrics.CacheMisses),
	}
}

// GetModel returns the model being used
func (c *ClaudeClient) GetModel() string {
	return c.model
}

// extractJSON extracts JSON from a string that might contain markdown or other text
func extractJSON(text string) string {
	// First, try to find JSON in code blocks
	codeBlockPattern := regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)```")
	matches := codeBlockPattern.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// Try to find JSON object or array directly
	text = strings.TrimSpace(text)

	// Find the first { or [
	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")

	start := -1
	isArray := false

	if startObj >= 0 && (startArr < 0 || startObj < startArr) {
		start = startObj
	} else if startArr >= 0 {
		start = startArr
		isArray = true
	}

	if start < 0 {
		return ""
	}

	// Find matching closing bracket
	text = text[start:]
	depth := 0
	inString := false
	escaped := false

	openBracket := byte('{')
	closeBracket := byte('}')
	if isArray {
		openBracket = '['
		closeBracket = ']'
	}

	for i := 0; i < len(text); i++ {
		c := text[i]

		if escaped {
			escaped = false
			continue
		}

		if c == '\\' && inString {
			escaped = true
			continue
		}

		if c == '"' {
			inString = !inString
			continue
		}

		if inString {
			continue
		}

		if c == openBracket {
			depth++
		} else if c == closeBracket {
			depth--
			if depth == 0 {
				return text[:i+1]
			}
		}
	}

	return ""
}
