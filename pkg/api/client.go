package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/drawhub-lab/client/pkg/errorx"
	"github.com/drawhub-lab/client/pkg/xcontext"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// TokenProvider hands the generator the current bearer token, if any. The
// session store implements it.
type TokenProvider interface {
	Token() (string, bool)
}

type Client interface {
	Header(name, value string) Client
	Query(query *Parameter) Client
	Body(body Body) Client

	// Public marks the call as unauthenticated: no bearer token is attached
	// and a 401 does not fire the unauthorized hook.
	Public() Client

	// Raw marks the call as a blob download: the body is returned verbatim
	// instead of being unwrapped from the JSON envelope.
	Raw() Client

	GET(ctx context.Context, opts ...Opt) (*Response, error)
	POST(ctx context.Context, opts ...Opt) (*Response, error)
	PUT(ctx context.Context, opts ...Opt) (*Response, error)
	DELETE(ctx context.Context, opts ...Opt) (*Response, error)
}

type Generator interface {
	New(path string, args ...any) Client
}

type defaultGenerator struct {
	baseURL      string
	tokens       TokenProvider
	unauthorized func()
	limiter      *rate.Limiter
}

type GeneratorOption func(*defaultGenerator)

func WithTokenProvider(tokens TokenProvider) GeneratorOption {
	return func(g *defaultGenerator) { g.tokens = tokens }
}

// WithUnauthorizedHook registers the single place reacting to HTTP 401 on
// authenticated calls. It runs exactly once per 401 response.
func WithUnauthorizedHook(hook func()) GeneratorOption {
	return func(g *defaultGenerator) { g.unauthorized = hook }
}

// WithLimiter throttles outgoing requests, mainly for bulk export loops.
func WithLimiter(limiter *rate.Limiter) GeneratorOption {
	return func(g *defaultGenerator) { g.limiter = limiter }
}

func NewGenerator(baseURL string, opts ...GeneratorOption) *defaultGenerator {
	g := &defaultGenerator{baseURL: baseURL}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

func (g *defaultGenerator) New(path string, args ...any) Client {
	return &defaultClient{
		gen:     g,
		path:    fmt.Sprintf(path, args...),
		headers: make(http.Header),
	}
}

// Opt tweaks the final request right before it is sent.
type Opt interface {
	Do(defaultClient, *http.Request)
}

type defaultClient struct {
	gen     *defaultGenerator
	method  string
	path    string
	headers http.Header
	query   *Parameter
	body    Body
	public  bool
	raw     bool
}

func (c *defaultClient) Header(name, value string) Client {
	c.headers[name] = []string{value}
	return c
}

func (c *defaultClient) Query(query *Parameter) Client {
	c.query = query
	return c
}

func (c *defaultClient) Body(body Body) Client {
	c.body = body
	return c
}

func (c *defaultClient) Public() Client {
	c.public = true
	return c
}

func (c *defaultClient) Raw() Client {
	c.raw = true
	return c
}

func (c *defaultClient) GET(ctx context.Context, opts ...Opt) (*Response, error) {
	c.method = http.MethodGet
	return c.call(ctx, opts...)
}

func (c *defaultClient) POST(ctx context.Context, opts ...Opt) (*Response, error) {
	c.method = http.MethodPost
	return c.call(ctx, opts...)
}

func (c *defaultClient) PUT(ctx context.Context, opts ...Opt) (*Response, error) {
	c.method = http.MethodPut
	return c.call(ctx, opts...)
}

func (c *defaultClient) DELETE(ctx context.Context, opts ...Opt) (*Response, error) {
	c.method = http.MethodDelete
	return c.call(ctx, opts...)
}

func (c *defaultClient) call(ctx context.Context, opts ...Opt) (*Response, error) {
	if c.gen.limiter != nil {
		if err := c.gen.limiter.Wait(ctx); err != nil {
			return nil, c.transportError(err)
		}
	}

	var reader io.Reader
	var contentType string
	if c.body != nil {
		var err error
		reader, contentType, err = c.body.ToReader()
		if err != nil {
			return nil, c.transportError(err)
		}
	}

	url := c.gen.baseURL + c.path + c.query.QueryString()

	req, err := http.NewRequestWithContext(ctx, c.method, url, reader)
	if err != nil {
		return nil, c.transportError(err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	for h, values := range c.headers {
		for _, v := range values {
			req.Header.Add(h, v)
		}
	}

	// A manually attached Authorization header wins over the provider.
	if !c.public && req.Header.Get("Authorization") == "" && c.gen.tokens != nil {
		if token, ok := c.gen.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	for _, opt := range opts {
		opt.Do(*c, req)
	}

	result, err := xcontext.HTTPClient(ctx).Do(req)
	if err != nil {
		xcontext.Logger(ctx).Warnf("An error occured when calling to %s: %v", url, err)
		return nil, c.transportError(err)
	}
	defer result.Body.Close()

	body, err := io.ReadAll(result.Body)
	if err != nil {
		xcontext.Logger(ctx).Warnf("An error occured when reading body of %s: %v", url, err)
		return nil, c.transportError(err)
	}

	if result.StatusCode == http.StatusUnauthorized && !c.public && c.gen.unauthorized != nil {
		c.gen.unauthorized()
	}

	if c.raw {
		if result.StatusCode < 200 || result.StatusCode >= 300 {
			return nil, errorx.NewHTTP(result.StatusCode, errorx.ExportError,
				"export failed with HTTP %d", result.StatusCode)
		}

		return &Response{Code: result.StatusCode, Header: result.Header, RawBody: body}, nil
	}

	return c.unwrap(result.StatusCode, result.Header, body)
}

// unwrap is the only place the {success, data|error} envelope is parsed and
// failures are folded into the errorx taxonomy.
func (c *defaultClient) unwrap(status int, header http.Header, body []byte) (*Response, error) {
	var env envelope
	parseErr := jsonUnmarshalStrictEmpty(body, &env)

	if status < 200 || status >= 300 {
		if parseErr == nil && env.Error != nil {
			return nil, errorx.Error{
				Code:    env.Error.Code,
				Message: env.Error.Message,
				Details: env.Error.Details,
				Status:  status,
			}
		}

		return nil, errorx.NewHTTP(status, errorx.NetworkError,
			"HTTP %d: %s", status, http.StatusText(status))
	}

	if parseErr != nil {
		return nil, errorx.NewHTTP(status, errorx.NetworkError,
			"malformed response body: %v", parseErr)
	}

	// HTTP 200 with success=false is a valid backend outcome.
	if !env.Success {
		if env.Error != nil {
			return nil, errorx.Error{
				Code:    env.Error.Code,
				Message: env.Error.Message,
				Details: env.Error.Details,
				Status:  status,
			}
		}

		message := env.Message
		if message == "" {
			message = "API request failed"
		}

		return nil, errorx.NewHTTP(status, errorx.APIError, "%s", message)
	}

	return &Response{Code: status, Header: header, Message: env.Message, Data: env.Data}, nil
}

func (c *defaultClient) transportError(err error) error {
	if c.raw {
		return errorx.New(errorx.ExportError, "export failed: %v", err)
	}

	return errorx.New(errorx.NetworkError, "%v", err)
}
