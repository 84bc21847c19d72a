package prize

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/drawhub-lab/client/model"
	"github.com/drawhub-lab/client/pkg/api"
	"github.com/stretchr/testify/require"
)

func TestListUnwrapsPrizes(t *testing.T) {
	gen := &api.MockAPIGenerator{
		MockClient: api.MockAPIClient{
			GETFunc: func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
				return &api.Response{
					Code: http.StatusOK,
					Data: json.RawMessage(`{"prizes":[
						{"id":2,"name":"Grand Prize","total_quantity":5,"remaining_quantity":1,"probability":0.01,"sort_order":1},
						{"id":3,"name":"Consolation","total_quantity":100,"remaining_quantity":80,"probability":0.3,"sort_order":2}]}`),
				}, nil
			},
		},
	}

	prizes, err := New(gen).List(context.Background(), 7)
	require.NoError(t, err)

	require.Equal(t, []string{"/admin/activities/7/prizes"}, gen.Paths)
	require.Len(t, prizes, 2)
	require.Equal(t, "Grand Prize", prizes[0].Name)
	require.Equal(t, 80, prizes[1].RemainingQuantity)
}

func TestCreateIsActivityScoped(t *testing.T) {
	var gotBody string
	gen := &api.MockAPIGenerator{
		MockClient: api.MockAPIClient{
			POSTFunc: func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
				return &api.Response{
					Code: http.StatusOK,
					Data: json.RawMessage(`{"prize":{"id":4,"name":"Mug","total_quantity":50,"remaining_quantity":50,"probability":0.2}}`),
				}, nil
			},
		},
	}
	gen.MockClient.BodyFunc = func(body api.Body) api.Client {
		reader, _, err := body.ToReader()
		require.NoError(t, err)
		raw, _ := io.ReadAll(reader)
		gotBody = string(raw)
		return &gen.MockClient
	}

	created, err := New(gen).Create(context.Background(), 7, model.CreatePrizeRequest{
		Name:          "Mug",
		TotalQuantity: 50,
		Probability:   0.2,
	})
	require.NoError(t, err)

	require.Equal(t, []string{"/admin/activities/7/prizes"}, gen.Paths)
	require.JSONEq(t, `{"name":"Mug","total_quantity":50,"probability":0.2}`, gotBody)
	require.Equal(t, 4, created.ID)
}

// Update is partial: nil fields stay out of the body, and the prize is
// addressed directly rather than through its activity.
func TestUpdateOmitsUnsetFields(t *testing.T) {
	var gotBody string
	gen := &api.MockAPIGenerator{
		MockClient: api.MockAPIClient{
			PUTFunc: func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
				return &api.Response{
					Code: http.StatusOK,
					Data: json.RawMessage(`{"prize":{"id":4,"name":"Mug","total_quantity":60}}`),
				}, nil
			},
		},
	}
	gen.MockClient.BodyFunc = func(body api.Body) api.Client {
		reader, _, err := body.ToReader()
		require.NoError(t, err)
		raw, _ := io.ReadAll(reader)
		gotBody = string(raw)
		return &gen.MockClient
	}

	quantity := 60
	updated, err := New(gen).Update(context.Background(), 4, model.UpdatePrizeRequest{
		TotalQuantity: &quantity,
	})
	require.NoError(t, err)

	require.Equal(t, []string{"/admin/prizes/4"}, gen.Paths)
	require.JSONEq(t, `{"total_quantity":60}`, gotBody)
	require.Equal(t, 60, updated.TotalQuantity)
}

func TestDeleteAddressesPrize(t *testing.T) {
	gen := &api.MockAPIGenerator{
		MockClient: api.MockAPIClient{
			DELETEFunc: func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
				return &api.Response{Code: http.StatusOK}, nil
			},
		},
	}

	require.NoError(t, New(gen).Delete(context.Background(), 4))
	require.Equal(t, []string{"/admin/prizes/4"}, gen.Paths)
}
