package xcontext

import (
	"context"
	"net/http"

	"github.com/drawhub-lab/client/pkg/logger"
)

type (
	loggerKey     struct{}
	httpClientKey struct{}
)

func WithLogger(ctx context.Context, l logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// Logger returns the logger stored in ctx, or a default INFO logger.
func Logger(ctx context.Context) logger.Logger {
	if l, ok := ctx.Value(loggerKey{}).(logger.Logger); ok {
		return l
	}

	return logger.NewLogger(logger.INFO)
}

func WithHTTPClient(ctx context.Context, client *http.Client) context.Context {
	return context.WithValue(ctx, httpClientKey{}, client)
}

// HTTPClient returns the http client stored in ctx, or http.DefaultClient.
// No extra timeout is imposed here; a stalled request stays in flight until
// the transport settles it.
func HTTPClient(ctx context.Context) *http.Client {
	if c, ok := ctx.Value(httpClientKey{}).(*http.Client); ok {
		return c
	}

	return http.DefaultClient
}
