package lottery

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/drawhub-lab/client/model"
	"github.com/drawhub-lab/client/pkg/api"
	"github.com/stretchr/testify/require"
)

type staticTokens string

func (s staticTokens) Token() (string, bool) { return string(s), true }

// The participation endpoints must work for anonymous visitors even when an
// admin token happens to be stored on the same machine.
func TestDrawIsAnonymous(t *testing.T) {
	var gotAuth, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/lottery/activities/7/draw", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)

		w.Write([]byte(`{"success":true,"data":{"lottery_record":{"id":1,"is_winner":true,
			"lottery_code":{"id":3,"code":"12345678","status":"used"},
			"prize":{"id":2,"name":"Grand Prize"}}}}`))
	}))
	defer server.Close()

	endpoint := New(api.NewGenerator(server.URL, api.WithTokenProvider(staticTokens("admin-token"))))

	record, err := endpoint.Draw(context.Background(), 7, model.DrawLotteryRequest{
		LotteryCode: "12345678",
		ParticipantInfo: &model.ParticipantInfo{Name: "ada", Phone: "13800000000"},
	})
	require.NoError(t, err)

	require.Empty(t, gotAuth)
	require.JSONEq(t, `{"lottery_code":"12345678","participant_info":{"name":"ada","phone":"13800000000"}}`, gotBody)
	require.True(t, record.IsWinner)
	require.Equal(t, "Grand Prize", record.Prize.Name)
}

func TestOfflineDrawAddressesActivity(t *testing.T) {
	gen := &api.MockAPIGenerator{
		MockClient: api.MockAPIClient{
			POSTFunc: func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
				return &api.Response{
					Code: http.StatusOK,
					Data: json.RawMessage(`{"lottery_record":{"id":9,"is_winner":false}}`),
				}, nil
			},
		},
	}

	endpoint := New(gen)
	record, err := endpoint.OfflineDraw(context.Background(), 7, model.OfflineDrawRequest{DrawCount: 3})
	require.NoError(t, err)

	require.Equal(t, []string{"/lottery/activities/7/offline-draw"}, gen.Paths)
	require.Equal(t, 9, record.ID)
	require.False(t, record.IsWinner)
}

func TestRecordsQueryCarriesFilters(t *testing.T) {
	var gotQuery *api.Parameter
	gen := &api.MockAPIGenerator{
		MockClient: api.MockAPIClient{
			GETFunc: func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
				return &api.Response{
					Code: http.StatusOK,
					Data: json.RawMessage(`{"lottery_records":[],"pagination":{"page":1,"limit":10,"total":0,"totalPages":0}}`),
				}, nil
			},
		},
	}
	gen.MockClient.QueryFunc = func(query *api.Parameter) api.Client {
		gotQuery = query
		return &gen.MockClient
	}

	_, err := New(gen).Records(context.Background(), 7, model.LotteryRecordListParams{
		ListParams: model.ListParams{Page: 2, Limit: 10},
		WinnerOnly: true,
		StartDate:  "2026-08-01",
	})
	require.NoError(t, err)

	require.Equal(t, []string{"/lottery/activities/7/records"}, gen.Paths)
	require.Equal(t, "page=2&limit=10&winner_only=true&start_date=2026-08-01", gotQuery.Encode())
}

// The admin listing spans activities; the activity becomes a query filter
// instead of a path segment.
func TestAdminRecordsQuery(t *testing.T) {
	var gotQuery *api.Parameter
	gen := &api.MockAPIGenerator{
		MockClient: api.MockAPIClient{
			GETFunc: func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
				return &api.Response{
					Code: http.StatusOK,
					Data: json.RawMessage(`{"lottery_records":[{"id":4,"is_winner":true}],
						"pagination":{"page":1,"limit":10,"total":1,"totalPages":1}}`),
				}, nil
			},
		},
	}
	gen.MockClient.QueryFunc = func(query *api.Parameter) api.Client {
		gotQuery = query
		return &gen.MockClient
	}

	resp, err := New(gen).AdminRecords(context.Background(), model.AdminLotteryRecordListParams{
		ListParams: model.ListParams{Page: 1, Limit: 10},
		ActivityID: 7,
		WinnerOnly: true,
		StartDate:  "2026-08-01",
		EndDate:    "2026-08-28",
	})
	require.NoError(t, err)

	require.Equal(t, []string{"/admin/lottery-records"}, gen.Paths)
	require.Equal(t, "page=1&limit=10&activity_id=7&winner_only=true&start_date=2026-08-01&end_date=2026-08-28", gotQuery.Encode())
	require.Len(t, resp.LotteryRecords, 1)
	require.True(t, resp.LotteryRecords[0].IsWinner)
}

func TestStatisticsUnwrapsSummary(t *testing.T) {
	gen := &api.MockAPIGenerator{
		MockClient: api.MockAPIClient{
			GETFunc: func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
				return &api.Response{
					Code: http.StatusOK,
					Data: json.RawMessage(`{"statistics":{"total_lottery_codes":100,"used_lottery_codes":40,
						"total_lottery_records":40,"winner_records":4,"win_rate":0.1,
						"prizes_stats":[{"prize_id":2,"prize_name":"Grand Prize","total_quantity":5,
						"remaining_quantity":1,"winner_count":4}]}}`),
				}, nil
			},
		},
	}

	statistics, err := New(gen).Statistics(context.Background(), 7)
	require.NoError(t, err)

	require.Equal(t, []string{"/lottery/activities/7/statistics"}, gen.Paths)
	require.InDelta(t, 0.1, statistics.WinRate, 1e-9)
	require.Len(t, statistics.PrizesStats, 1)
	require.Equal(t, 4, statistics.PrizesStats[0].WinnerCount)
}
