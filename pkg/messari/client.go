package messari

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"

	"github.com/prometa-ai/messari-go/internal/ratelimit"
	"github.com/prometa-ai/messari-go/internal/transport"
)

// Client is a thin Messari API client. It resolves endpoint keys against a
// registry, builds requests, and maps HTTP outcomes to typed errors. The
// client holds no mutable state after construction and is safe for
// concurrent use.
type Client struct {
	config   Config
	registry *Registry
	http     *transport.Client
	limiter  *ratelimit.Limiter
	logger   zerolog.Logger
	headers  map[string]string
}

// Option is a functional option for configuring a Client.
type Option func(*clientOptions)

type clientOptions struct {
	logger    zerolog.Logger
	registry  *Registry
	transport *transport.Client
}

// WithLogger sets the logger used for debug request/response logging.
func WithLogger(l zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = l
	}
}

// WithRegistry replaces the built-in endpoint registry.
func WithRegistry(r *Registry) Option {
	return func(o *clientOptions) {
		o.registry = r
	}
}

// WithTransport replaces the HTTP transport. Intended for tests.
func WithTransport(t *transport.Client) Option {
	return func(o *clientOptions) {
		o.transport = t
	}
}

// New creates a Client from the given configuration. The API key is taken
// from cfg.APIKey, falling back to the MESSARI_API_KEY environment variable;
// a *ConfigError is returned when neither is set. An explicit key never
// consults the environment. A nil cfg uses DefaultConfig.
func New(cfg *Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	config := *cfg

	if config.APIKey == "" {
		config.APIKey = os.Getenv(EnvAPIKey)
	}
	if config.APIKey == "" {
		return nil, &ConfigError{
			Message: "API key is missing: pass Config.APIKey or set " + EnvAPIKey,
		}
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	if err := config.Validate(); err != nil {
		return nil, &ConfigError{Message: err.Error()}
	}
	if config.RateLimitRequests > 0 && config.RateLimitPeriod <= 0 {
		return nil, &ConfigError{Message: "rate limit period must be positive when requests are set"}
	}

	options := &clientOptions{
		logger:   zerolog.Nop(),
		registry: DefaultRegistry(),
	}
	for _, opt := range opts {
		opt(options)
	}

	httpClient := options.transport
	if httpClient == nil {
		var err error
		httpClient, err = transport.NewClient(&transport.Config{
			BaseURL: config.BaseURL,
			Timeout: config.Timeout,
		}, options.logger)
		if err != nil {
			return nil, &ConfigError{Message: err.Error()}
		}
	}

	var limiter *ratelimit.Limiter
	if config.RateLimitRequests > 0 {
		limiter = ratelimit.New(config.RateLimitRequests, config.RateLimitPeriod)
	}

	return &Client{
		config:   config,
		registry: options.registry,
		http:     httpClient,
		limiter:  limiter,
		logger:   options.logger,
		headers: map[string]string{
			"Content-Type":      "application/json",
			"x-messari-api-key": config.APIKey,
		},
	}, nil
}

// Close releases the underlying transport resources.
func (c *Client) Close() error {
	return c.http.Close()
}

// Registry returns the endpoint registry the client dispatches against.
func (c *Client) Registry() *Registry {
	return c.registry
}

// CallOption customizes a single Call invocation.
type CallOption func(*callOptions)

type callOptions struct {
	pathParams  map[string]any
	queryParams map[string]any
	body        any
	headers     map[string]string
}

// WithPathParams supplies values for the placeholders in the endpoint's
// path template.
func WithPathParams(params map[string]any) CallOption {
	return func(o *callOptions) {
		for k, v := range params {
			o.pathParams[k] = v
		}
	}
}

// WithPathParam supplies a single path placeholder value.
func WithPathParam(name string, value any) CallOption {
	return func(o *callOptions) {
		o.pathParams[name] = value
	}
}

// WithQueryParams supplies query parameters. Parameters outside the
// endpoint's allow-list are silently dropped.
func WithQueryParams(params map[string]any) CallOption {
	return func(o *callOptions) {
		for k, v := range params {
			o.queryParams[k] = v
		}
	}
}

// WithQueryParam supplies a single query parameter.
func WithQueryParam(name string, value any) CallOption {
	return func(o *callOptions) {
		o.queryParams[name] = value
	}
}

// WithBody sets a JSON request body for POST and PUT endpoints.
func WithBody(body any) CallOption {
	return func(o *callOptions) {
		o.body = body
	}
}

// WithHeader adds a request header merged over the client's common headers.
func WithHeader(key, value string) CallOption {
	return func(o *callOptions) {
		o.headers[key] = value
	}
}

// Call invokes the endpoint registered under key and returns the decoded
// JSON response as an untyped value. The response is passed through without
// schema validation; an empty body decodes to nil.
//
// Failures surface as typed errors: *UnknownEndpointError,
// *MissingPathParamError, *AuthError, *RateLimitError, or *APIError. Errors
// are never retried or swallowed.
func (c *Client) Call(ctx context.Context, key string, opts ...CallOption) (any, error) {
	resp, err := c.exchange(ctx, key, opts)
	if err != nil {
		return nil, err
	}
	if len(resp.Body) == 0 {
		return nil, nil
	}

	var decoded any
	if err := sonic.Unmarshal(resp.Body, &decoded); err != nil {
		return nil, &APIError{
			Kind:       KindMalformedResponse,
			StatusCode: resp.StatusCode,
			Message:    "response body is not valid JSON",
			URL:        resp.URL,
			cause:      err,
		}
	}
	return decoded, nil
}

// CallRaw invokes the endpoint registered under key and returns the raw
// transport response after status mapping, leaving the body undecoded.
func (c *Client) CallRaw(ctx context.Context, key string, opts ...CallOption) (*transport.Response, error) {
	return c.exchange(ctx, key, opts)
}

// exchange runs one request-response cycle: resolve, validate, send, and
// map the status code. No network I/O happens before validation passes.
func (c *Client) exchange(ctx context.Context, key string, opts []CallOption) (*transport.Response, error) {
	endpoint, err := c.registry.Get(key)
	if err != nil {
		return nil, err
	}

	options := &callOptions{
		pathParams:  make(map[string]any),
		queryParams: make(map[string]any),
		headers:     make(map[string]string),
	}
	for _, opt := range opts {
		opt(options)
	}

	path, err := resolvePath(endpoint, options.pathParams)
	if err != nil {
		return nil, err
	}

	headers := make(map[string]string, len(c.headers)+len(options.headers))
	for k, v := range c.headers {
		headers[k] = v
	}
	for k, v := range options.headers {
		headers[k] = v
	}

	req := &transport.Request{
		Method:  endpoint.Method,
		Path:    path,
		Query:   filterQuery(endpoint, options.queryParams),
		Headers: headers,
		Body:    options.body,
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &APIError{
			Kind:    KindNetwork,
			Message: "rate limiter wait: " + err.Error(),
			URL:     path,
			cause:   err,
		}
	}

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return nil, &APIError{
			Kind:    KindNetwork,
			Message: err.Error(),
			URL:     path,
			cause:   err,
		}
	}

	if err := mapStatus(resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// resolvePath substitutes path parameters into the endpoint's template in
// order of appearance. The first placeholder without a supplied value fails
// the call before any network I/O.
func resolvePath(endpoint Endpoint, params map[string]any) (string, error) {
	path := endpoint.Path
	for _, name := range endpoint.placeholders() {
		value, ok := params[name]
		if !ok || value == nil {
			return "", &MissingPathParamError{Endpoint: endpoint.Key, Param: name}
		}
		path = strings.ReplaceAll(path, "{"+name+"}", url.PathEscape(paramString(value)))
	}
	return path, nil
}

// filterQuery keeps the intersection of the supplied parameters with the
// endpoint's allow-list. Unknown parameters and nil values are dropped
// silently so callers can pass extra context without breaking.
func filterQuery(endpoint Endpoint, params map[string]any) map[string]string {
	filtered := make(map[string]string)
	for name, value := range params {
		if value == nil || !endpoint.allowsQuery(name) {
			continue
		}
		filtered[name] = paramString(value)
	}
	return filtered
}

// paramString renders a parameter value for the wire. Bools normalize to
// "true"/"false"; JSON numbers decoded as float64 keep their shortest form.
func paramString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// mapStatus converts a non-2xx response into the matching typed error:
// 401/403 to *AuthError, 429 to *RateLimitError, everything else to
// *APIError. The error body is decoded best-effort for caller inspection.
func mapStatus(resp *transport.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	var body any
	if len(resp.Body) > 0 {
		if err := sonic.Unmarshal(resp.Body, &body); err != nil {
			body = nil
		}
	}
	message := strings.TrimSpace(string(resp.Body))
	if message == "" {
		message = fmt.Sprintf("HTTP %d", resp.StatusCode)
	}

	apiErr := APIError{
		Kind:       KindHTTP,
		StatusCode: resp.StatusCode,
		Message:    message,
		Body:       body,
		URL:        resp.URL,
	}

	switch resp.StatusCode {
	case 401, 403:
		return &AuthError{APIError: apiErr}
	case 429:
		return &RateLimitError{
			APIError:   apiErr,
			RetryAfter: resp.Header("Retry-After"),
			Limit:      resp.Header("X-RateLimit-Limit"),
			Remaining:  resp.Header("X-RateLimit-Remaining"),
			Reset:      resp.Header("X-RateLimit-Reset"),
		}
	default:
		return &apiErr
	}
}
