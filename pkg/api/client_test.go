package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/drawhub-lab/client/pkg/errorx"
	"github.com/stretchr/testify/require"
)

type staticTokens struct {
	token string
}

func (s *staticTokens) Token() (string, bool) {
	return s.token, s.token != ""
}

func TestClientUnwrapsEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/me", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":{"user":{"id":3,"username":"ada"}}}`))
	}))
	defer server.Close()

	gen := NewGenerator(server.URL)
	resp, err := gen.New("/auth/me").GET(context.Background())
	require.NoError(t, err)

	var out struct {
		User struct {
			ID       int    `json:"id"`
			Username string `json:"username"`
		} `json:"user"`
	}
	require.NoError(t, Bind(resp, &out))
	require.Equal(t, 3, out.User.ID)
	require.Equal(t, "ada", out.User.Username)
}

func TestClientLogicalFailureOnHTTP200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error":{"code":"VALIDATION","message":"bad"}}`))
	}))
	defer server.Close()

	_, err := NewGenerator(server.URL).New("/admin/activities").POST(context.Background())
	require.Error(t, err)

	var errx errorx.Error
	require.True(t, errors.As(err, &errx))
	require.Equal(t, "VALIDATION", errx.Code)
	require.Equal(t, "bad", errx.Message)
	require.Equal(t, http.StatusOK, errx.Status)
}

func TestClientSuccessFalseWithoutErrorObject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"nope"}`))
	}))
	defer server.Close()

	_, err := NewGenerator(server.URL).New("/stats").GET(context.Background())

	var errx errorx.Error
	require.True(t, errors.As(err, &errx))
	require.Equal(t, errorx.APIError, errx.Code)
	require.Equal(t, "nope", errx.Message)
}

func TestClientMalformedErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`<html>gateway exploded</html>`))
	}))
	defer server.Close()

	_, err := NewGenerator(server.URL).New("/system/health").GET(context.Background())

	var errx errorx.Error
	require.True(t, errors.As(err, &errx))
	require.Equal(t, errorx.NetworkError, errx.Code)
	require.Equal(t, http.StatusBadGateway, errx.Status)
}

func TestClientStructuredErrorPassthrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"success":false,"error":{"code":"CODE_ALREADY_USED","message":"used","details":"code LK-1"}}`))
	}))
	defer server.Close()

	_, err := NewGenerator(server.URL).New("/lottery/activities/%d/draw", 9).Public().POST(context.Background())

	var errx errorx.Error
	require.True(t, errors.As(err, &errx))
	require.Equal(t, "CODE_ALREADY_USED", errx.Code)
	require.Equal(t, "code LK-1", errx.Details)
	require.Equal(t, http.StatusConflict, errx.Status)
}

func TestClientTransportFailure(t *testing.T) {
	// A server that is already closed refuses connections.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := NewGenerator(server.URL).New("/auth/me").GET(context.Background())

	var errx errorx.Error
	require.True(t, errors.As(err, &errx))
	require.Equal(t, errorx.NetworkError, errx.Code)
	require.Zero(t, errx.Status)
}

func TestClientBearerToken(t *testing.T) {
	var gotAuth, gotPublicAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/login" {
			gotPublicAuth = r.Header.Get("Authorization")
		} else {
			gotAuth = r.Header.Get("Authorization")
		}
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	gen := NewGenerator(server.URL, WithTokenProvider(&staticTokens{token: "tkn-42"}))

	_, err := gen.New("/auth/me").GET(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer tkn-42", gotAuth)

	_, err = gen.New("/auth/login").Public().POST(context.Background())
	require.NoError(t, err)
	require.Empty(t, gotPublicAuth)
}

func TestClientExplicitBearerWins(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`blobdata`))
	}))
	defer server.Close()

	gen := NewGenerator(server.URL, WithTokenProvider(&staticTokens{token: "provider"}))
	resp, err := gen.New("/admin/lottery-codes/template").Raw().GET(context.Background(), Bearer("manual"))
	require.NoError(t, err)
	require.Equal(t, "Bearer manual", gotAuth)
	require.Equal(t, []byte(`blobdata`), resp.RawBody)
}

func TestClientUnauthorizedHook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"error":{"code":"UNAUTHORIZED","message":"expired"}}`))
	}))
	defer server.Close()

	calls := 0
	gen := NewGenerator(server.URL,
		WithTokenProvider(&staticTokens{token: "stale"}),
		WithUnauthorizedHook(func() { calls++ }),
	)

	_, err := gen.New("/auth/me").GET(context.Background())
	require.Error(t, err)
	require.Equal(t, 1, calls)

	var errx errorx.Error
	require.True(t, errors.As(err, &errx))
	require.Equal(t, "UNAUTHORIZED", errx.Code)

	// A public call never fires the hook, even on 401.
	_, err = gen.New("/auth/login").Public().POST(context.Background())
	require.Error(t, err)
	require.Equal(t, 1, calls)
}

func TestClientRawExportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewGenerator(server.URL).New("/admin/activities/%d/lottery-codes/export", 5).Raw().GET(context.Background())

	var errx errorx.Error
	require.True(t, errors.As(err, &errx))
	require.Equal(t, errorx.ExportError, errx.Code)
	require.Equal(t, http.StatusInternalServerError, errx.Status)
}

func TestClientQueryAndMultipart(t *testing.T) {
	var gotQuery, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseMultipartForm(1 << 20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "codes.csv", header.Filename)
		w.Write([]byte(`{"success":true,"data":{"imported_count":2}}`))
	}))
	defer server.Close()

	resp, err := NewGenerator(server.URL).
		New("/admin/activities/%d/lottery-codes/import", 3).
		Query(Params().Add("dry_run", true)).
		Body(FileBody("file", "codes.csv", strings.NewReader("AAAA\nBBBB\n"))).
		POST(context.Background())
	require.NoError(t, err)

	require.Equal(t, "dry_run=true", gotQuery)
	require.Contains(t, gotContentType, "multipart/form-data")

	var out struct {
		ImportedCount int `json:"imported_count"`
	}
	require.NoError(t, Bind(resp, &out))
	require.Equal(t, 2, out.ImportedCount)
}
