package lotterycode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/drawhub-lab/client/model"
	"github.com/drawhub-lab/client/pkg/api"
	"github.com/stretchr/testify/require"
)

type fixedTokens struct{}

func (fixedTokens) Token() (string, bool) { return "tkn-77", true }

func TestImportSendsMultipartFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/activities/4/lottery-codes/import", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "codes.csv", header.Filename)

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"imported_count": 2,
				"lottery_codes": []model.LotteryCode{
					{ID: 1, Code: "AAAA", Status: model.CodeUnused},
					{ID: 2, Code: "BBBB", Status: model.CodeUnused},
				},
			},
		})
	}))
	defer server.Close()

	endpoint := New(api.NewGenerator(server.URL), fixedTokens{})
	out, err := endpoint.Import(context.Background(), 4, "codes.csv", strings.NewReader("AAAA\nBBBB\n"))
	require.NoError(t, err)
	require.Equal(t, 2, out.ImportedCount)
	require.Len(t, out.LotteryCodes, 2)
}

func TestExportAttachesBearerAndReturnsBlob(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/activities/4/lottery-codes/export", r.URL.Path)
		require.Equal(t, "Bearer tkn-77", r.Header.Get("Authorization"))
		require.Equal(t, "status=used", r.URL.RawQuery)
		w.Write([]byte("code,status\nAAAA,used\n"))
	}))
	defer server.Close()

	endpoint := New(api.NewGenerator(server.URL), fixedTokens{})
	blob, err := endpoint.Export(context.Background(), 4, model.LotteryCodeListParams{Status: model.CodeUsed})
	require.NoError(t, err)
	require.Equal(t, "code,status\nAAAA,used\n", string(blob))
}

func TestBatchDeleteSendsIDs(t *testing.T) {
	var gotBody model.BatchDeleteLotteryCodesRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/admin/activities/4/lottery-codes/batch", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer server.Close()

	endpoint := New(api.NewGenerator(server.URL), fixedTokens{})
	require.NoError(t, endpoint.BatchDelete(context.Background(), 4, []int{3, 5, 8}))
	require.Equal(t, []int{3, 5, 8}, gotBody.LotteryCodeIDs)
}
