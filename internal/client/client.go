package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/GriffinCanCode/calcunits/internal/calculator"
	"github.com/GriffinCanCode/calcunits/internal/catalog"
	"github.com/GriffinCanCode/calcunits/internal/logging"
	"github.com/GriffinCanCode/calcunits/internal/numeric"
	"github.com/GriffinCanCode/calcunits/internal/types"
	"github.com/GriffinCanCode/calcunits/internal/units"
)

// ErrUnknownTool is returned when the server has no such tool.
var ErrUnknownTool = errors.New("unknown tool")

// Config configures a Client
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	RetryWait  time.Duration
	// RateLimit caps outgoing requests per second. Zero means unlimited.
	RateLimit float64
	UserAgent string
	Logger    *logging.Logger
}

// DefaultConfig returns client settings for baseURL
func DefaultConfig(baseURL string) Config {
	return Config{
		BaseURL:    baseURL,
		Timeout:    10 * time.Second,
		MaxRetries: 3,
		RetryWait:  200 * time.Millisecond,
		UserAgent:  "calcunits-client/1.0",
	}
}

// Client talks to a calcunits server
type Client struct {
	resty   *resty.Client
	limiter *rate.Limiter
	mu      sync.RWMutex
}

// New creates a client. Transient failures (connection errors, 429, 5xx)
// are retried by the retryablehttp transport.
func New(cfg Config) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.MaxRetries
	if cfg.RetryWait > 0 {
		retryClient.RetryWaitMin = cfg.RetryWait
		retryClient.RetryWaitMax = 10 * cfg.RetryWait
	}
	// Hand the last response back instead of a "giving up" error
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	if cfg.Logger != nil {
		retryClient.Logger = leveledLogger{cfg.Logger.Sugar()}
	} else {
		retryClient.Logger = nil
	}

	restyClient := resty.NewWithClient(retryClient.StandardClient()).
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("Accept", "application/json").
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal)
	if cfg.Timeout > 0 {
		restyClient.SetTimeout(cfg.Timeout)
	}
	if cfg.UserAgent != "" {
		restyClient.SetHeader("User-Agent", cfg.UserAgent)
	}

	c := &Client{resty: restyClient}
	c.SetRateLimit(cfg.RateLimit)
	return c
}

// SetRateLimit configures rate limiting (requests per second)
func (c *Client) SetRateLimit(rps float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if rps <= 0 {
		c.limiter = rate.NewLimiter(rate.Inf, 0)
	} else {
		c.limiter = rate.NewLimiter(rate.Limit(rps), max(1, int(rps)))
	}
}

// request waits for the rate limiter and returns a request bound to ctx
func (c *Client) request(ctx context.Context) (*resty.Request, error) {
	c.mu.RLock()
	limiter := c.limiter
	c.mu.RUnlock()

	if err := limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}
	return c.resty.R().SetContext(ctx), nil
}

// Health fetches the server's health document
func (c *Client) Health(ctx context.Context) (map[string]interface{}, error) {
	req, err := c.request(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := req.Get("/health")
	if err != nil {
		return nil, fmt.Errorf("health request failed: %w", err)
	}
	if resp.IsError() {
		return nil, decodeError(resp)
	}

	var body map[string]interface{}
	if err := sonic.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("failed to decode health response: %w", err)
	}
	return body, nil
}

// Convert converts value between two units on the server
func (c *Client) Convert(ctx context.Context, value float64, from, to string) (types.ConvertResponse, error) {
	var out types.ConvertResponse

	req, err := c.request(ctx)
	if err != nil {
		return out, err
	}
	resp, err := req.
		SetQueryParams(map[string]string{
			"value": strconv.FormatFloat(value, 'g', -1, 64),
			"from":  from,
			"to":    to,
		}).
		Get("/convert")
	if err != nil {
		return out, fmt.Errorf("convert request failed: %w", err)
	}
	if resp.IsError() {
		return out, decodeError(resp)
	}

	if err := sonic.Unmarshal(resp.Body(), &out); err != nil {
		return out, fmt.Errorf("failed to decode convert response: %w", err)
	}
	return out, nil
}

// Execute runs a tool. A failed result is returned together with an
// *APIError that unwraps to the matching sentinel.
func (c *Client) Execute(ctx context.Context, toolID string, params map[string]interface{}) (*types.Result, error) {
	req, err := c.request(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(types.ExecuteRequest{ToolID: toolID, Params: params}).
		Post("/services/execute")
	if err != nil {
		return nil, fmt.Errorf("execute %s failed: %w", toolID, err)
	}

	var result types.Result
	if err := sonic.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to decode %s result (status %d): %w", toolID, resp.StatusCode(), err)
	}
	if !result.Success {
		return &result, newAPIError(resp.StatusCode(), &result)
	}
	return &result, nil
}

// Units fetches the unit catalog, optionally for one category
func (c *Client) Units(ctx context.Context, category string) (catalog.Catalog, error) {
	data, err := c.UnitsRaw(ctx, category, catalog.FormatJSON)
	if err != nil {
		return catalog.Catalog{}, err
	}
	return catalog.Decode(data, catalog.FormatJSON)
}

// UnitsRaw fetches the unit catalog encoded in format
func (c *Client) UnitsRaw(ctx context.Context, category string, format catalog.Format) ([]byte, error) {
	req, err := c.request(ctx)
	if err != nil {
		return nil, err
	}
	req.SetQueryParam("format", string(format))
	if category != "" {
		req.SetQueryParam("category", category)
	}
	resp, err := req.Get("/units")
	if err != nil {
		return nil, fmt.Errorf("units request failed: %w", err)
	}
	if resp.IsError() {
		return nil, decodeError(resp)
	}
	return resp.Body(), nil
}

// APIError is a failed result reported by the server
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap maps the result code back to the package sentinel
func (e *APIError) Unwrap() error {
	switch e.Code {
	case types.CodeInvalidInput:
		return numeric.ErrInvalidInput
	case types.CodeUnknownUnit:
		return units.ErrUnknownUnit
	case types.CodeIncompatibleCategories:
		return units.ErrIncompatibleCategories
	case types.CodeDivideByZero:
		return calculator.ErrDivideByZero
	case types.CodeUnknownTool:
		return ErrUnknownTool
	default:
		return nil
	}
}

func newAPIError(status int, result *types.Result) *APIError {
	e := &APIError{Status: status, Code: result.Code}
	if result.Error != nil {
		e.Message = *result.Error
	}
	return e
}

func decodeError(resp *resty.Response) error {
	var result types.Result
	if err := sonic.Unmarshal(resp.Body(), &result); err != nil || (result.Error == nil && result.Code == "") {
		return &APIError{Status: resp.StatusCode(), Message: http.StatusText(resp.StatusCode())}
	}
	return newAPIError(resp.StatusCode(), &result)
}

// leveledLogger adapts zap to retryablehttp's LeveledLogger
type leveledLogger struct {
	s *zap.SugaredLogger
}

func (l leveledLogger) Error(msg string, kv ...interface{}) { l.s.Errorw(msg, kv...) }
func (l leveledLogger) Info(msg string, kv ...interface{})  { l.s.Debugw(msg, kv...) }
func (l leveledLogger) Debug(msg string, kv ...interface{}) { l.s.Debugw(msg, kv...) }
func (l leveledLogger) Warn(msg string, kv ...interface{})  { l.s.Warnw(msg, kv...) }
