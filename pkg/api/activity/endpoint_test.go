package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/drawhub-lab/client/model"
	"github.com/drawhub-lab/client/pkg/api"
	"github.com/stretchr/testify/require"
)

// fakeBackend keeps one activity and applies updates field by field, the
// way the real backend treats partial updates.
type fakeBackend struct {
	activity model.Activity
}

func (f *fakeBackend) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			writeEnvelope(w, map[string]any{"activity": f.activity})

		case r.Method == http.MethodPut:
			var req map[string]json.RawMessage
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

			if raw, ok := req["name"]; ok {
				require.NoError(t, json.Unmarshal(raw, &f.activity.Name))
			}
			if raw, ok := req["description"]; ok {
				require.NoError(t, json.Unmarshal(raw, &f.activity.Description))
			}
			if raw, ok := req["status"]; ok {
				require.NoError(t, json.Unmarshal(raw, &f.activity.Status))
			}

			writeEnvelope(w, map[string]any{"activity": f.activity})

		default:
			t.Fatalf("unexpected %s %s", r.Method, r.URL.Path)
		}
	})
}

func writeEnvelope(w http.ResponseWriter, data any) {
	json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
}

func TestPartialUpdateRoundTrip(t *testing.T) {
	count := 120
	backend := &fakeBackend{activity: model.Activity{
		ID:                12,
		Name:              "Spring Draw",
		Description:       "spring campaign",
		Status:            model.ActivityActive,
		LotteryMode:       model.ModeOnline,
		StartTime:         "2026-03-01T00:00:00Z",
		CreatedAt:         "2026-02-01T09:00:00Z",
		LotteryCodesCount: &count,
	}}

	server := httptest.NewServer(backend.handler(t))
	defer server.Close()

	endpoint := New(api.NewGenerator(server.URL))
	ctx := context.Background()

	before, err := endpoint.Get(ctx, 12)
	require.NoError(t, err)

	name := "Summer Draw"
	_, err = endpoint.Update(ctx, 12, model.UpdateActivityRequest{Name: &name})
	require.NoError(t, err)

	after, err := endpoint.Get(ctx, 12)
	require.NoError(t, err)

	// Only the name changed; every other field survived the round trip.
	require.Equal(t, "Summer Draw", after.Name)
	after.Name = before.Name
	require.Equal(t, before, after)
}

func TestListPathsAndQuery(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		writeEnvelope(w, map[string]any{
			"activities": []model.Activity{{ID: 1, Name: "a"}},
			"pagination": model.Pagination{Page: 2, Limit: 10, Total: 25, TotalPages: 3},
		})
	}))
	defer server.Close()

	endpoint := New(api.NewGenerator(server.URL))

	out, err := endpoint.List(context.Background(), model.ActivityListParams{
		ListParams: model.ListParams{Page: 2, Limit: 10},
		Status:     model.ActivityActive,
	})
	require.NoError(t, err)

	require.Equal(t, "/admin/activities", gotPath)
	require.Equal(t, "page=2&limit=10&status=active", gotQuery)
	require.Len(t, out.Activities, 1)
	require.Equal(t, model.Pagination{Page: 2, Limit: 10, Total: 25, TotalPages: 3}, out.Pagination)
}

func TestDeleteAddressesResource(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		writeEnvelope(w, nil)
	}))
	defer server.Close()

	endpoint := New(api.NewGenerator(server.URL))
	require.NoError(t, endpoint.Delete(context.Background(), 7))
	require.Equal(t, http.MethodDelete, gotMethod)
	require.Equal(t, fmt.Sprintf("/admin/activities/%d", 7), gotPath)
}
