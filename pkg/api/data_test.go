package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParameter(t *testing.T) {
	t.Run("drops empty values and preserves insertion order", func(t *testing.T) {
		var nothing *string
		p := Params().
			Add("a", 1).
			Add("b", "").
			Add("c", nothing).
			Add("d", "x")

		require.Equal(t, "?a=1&d=x", p.QueryString())
	})

	t.Run("empty set yields empty string", func(t *testing.T) {
		require.Equal(t, "", Params().QueryString())
		require.Equal(t, "", Params().Add("a", "").Encode())
	})

	t.Run("percent-encodes values", func(t *testing.T) {
		p := Params().Add("search", "grand prize").Add("status", "used")
		require.Equal(t, "?search=grand%20prize&status=used", p.QueryString())
	})

	t.Run("keeps zero numbers and booleans", func(t *testing.T) {
		enabled := false
		p := Params().Add("page", 0).Add("winner_only", &enabled)
		require.Equal(t, "?page=0&winner_only=false", p.QueryString())
	})
}

func TestBind(t *testing.T) {
	type prize struct {
		ID          int     `json:"id"`
		Name        string  `json:"name"`
		Probability float64 `json:"probability"`
	}

	type payload struct {
		Prizes []prize `json:"prizes"`
	}

	t.Run("decodes envelope data into typed structs", func(t *testing.T) {
		resp := &Response{
			Code: 200,
			Data: json.RawMessage(`{"prizes":[{"id":7,"name":"Grand","probability":0.05}]}`),
		}

		var out payload
		require.NoError(t, Bind(resp, &out))
		require.Len(t, out.Prizes, 1)
		require.Equal(t, 7, out.Prizes[0].ID)
		require.Equal(t, "Grand", out.Prizes[0].Name)
		require.InDelta(t, 0.05, out.Prizes[0].Probability, 1e-9)
	})

	t.Run("no data is a no-op", func(t *testing.T) {
		var out payload
		require.NoError(t, Bind(&Response{Code: 200}, &out))
		require.Empty(t, out.Prizes)
	})
}
