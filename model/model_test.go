package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListParamValues(t *testing.T) {
	t.Run("common cursor fields come first, zero values dropped", func(t *testing.T) {
		p := UserListParams{
			ListParams: ListParams{Page: 2, Limit: 10, Search: "ada"},
			Role:       RoleAdmin,
		}
		require.Equal(t, "?page=2&limit=10&search=ada&role=admin", p.Values().QueryString())
	})

	t.Run("empty params build an empty query", func(t *testing.T) {
		require.Equal(t, "", ActivityListParams{}.Values().QueryString())
	})

	t.Run("winner_only is only sent when set", func(t *testing.T) {
		p := LotteryRecordListParams{WinnerOnly: true, StartDate: "2026-01-01"}
		require.Equal(t, "?winner_only=true&start_date=2026-01-01", p.Values().QueryString())

		require.Equal(t, "", LotteryRecordListParams{}.Values().QueryString())
	})

	t.Run("has_participant_info keeps an explicit false", func(t *testing.T) {
		no := false
		p := LotteryCodeListParams{Status: CodeUnused, HasParticipantInfo: &no}
		require.Equal(t, "?status=unused&has_participant_info=false", p.Values().QueryString())
	})
}

func TestPartialUpdateMarshalling(t *testing.T) {
	t.Run("nil fields stay off the wire", func(t *testing.T) {
		name := "renamed"
		b, err := json.Marshal(UpdateActivityRequest{Name: &name})
		require.NoError(t, err)
		require.JSONEq(t, `{"name":"renamed"}`, string(b))
	})

	t.Run("explicit zero values survive", func(t *testing.T) {
		qty := 0
		b, err := json.Marshal(UpdatePrizeRequest{TotalQuantity: &qty})
		require.NoError(t, err)
		require.JSONEq(t, `{"total_quantity":0}`, string(b))
	})
}
