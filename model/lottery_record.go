package model

import "github.com/drawhub-lab/client/pkg/api"

// LotteryRecord is the immutable outcome of one draw.
type LotteryRecord struct {
	ID          int         `json:"id"`
	IsWinner    bool        `json:"is_winner"`
	CreatedAt   string      `json:"created_at"`
	LotteryCode LotteryCode `json:"lottery_code"`
	Prize       *Prize      `json:"prize,omitempty"`
}

type DrawLotteryRequest struct {
	LotteryCode     string           `json:"lottery_code"`
	ParticipantInfo *ParticipantInfo `json:"participant_info,omitempty"`
}

type OfflineDrawRequest struct {
	// DrawCount asks the backend to resolve this many unused codes in one
	// go; zero means a single draw.
	DrawCount int `json:"draw_count,omitempty"`
}

type DrawLotteryResponse struct {
	LotteryRecord LotteryRecord `json:"lottery_record"`
}

type LotteryRecordListResponse struct {
	LotteryRecords []LotteryRecord `json:"lottery_records"`
	Pagination     Pagination      `json:"pagination"`
}

type LotteryRecordListParams struct {
	ListParams
	WinnerOnly      bool
	ParticipantName string
	LotteryCode     string
	StartDate       string
	EndDate         string
}

func (p LotteryRecordListParams) Values() *api.Parameter {
	out := p.ListParams.Values()
	if p.WinnerOnly {
		out.Add("winner_only", true)
	}

	return out.
		Add("participant_name", p.ParticipantName).
		Add("lottery_code", p.LotteryCode).
		Add("start_date", p.StartDate).
		Add("end_date", p.EndDate)
}

// AdminLotteryRecordListParams filters the cross-activity record listing;
// the activity is a filter here, not part of the path.
type AdminLotteryRecordListParams struct {
	ListParams
	ActivityID int
	WinnerOnly bool
	StartDate  string
	EndDate    string
}

func (p AdminLotteryRecordListParams) Values() *api.Parameter {
	out := p.ListParams.Values()
	if p.ActivityID > 0 {
		out.Add("activity_id", p.ActivityID)
	}
	if p.WinnerOnly {
		out.Add("winner_only", true)
	}

	return out.
		Add("start_date", p.StartDate).
		Add("end_date", p.EndDate)
}

// LotteryStatistics is the per-activity win-rate summary.
type LotteryStatistics struct {
	TotalLotteryCodes   int              `json:"total_lottery_codes"`
	UsedLotteryCodes    int              `json:"used_lottery_codes"`
	TotalLotteryRecords int              `json:"total_lottery_records"`
	WinnerRecords       int              `json:"winner_records"`
	WinRate             float64          `json:"win_rate"`
	PrizesStats         []PrizeStatEntry `json:"prizes_stats"`
}

type PrizeStatEntry struct {
	PrizeID           int    `json:"prize_id"`
	PrizeName         string `json:"prize_name"`
	TotalQuantity     int    `json:"total_quantity"`
	RemainingQuantity int    `json:"remaining_quantity"`
	WinnerCount       int    `json:"winner_count"`
}

type LotteryStatisticsResponse struct {
	Statistics LotteryStatistics `json:"statistics"`
}

// LotteryActivityResponse is the public activity detail used by the
// participation page.
type LotteryActivityResponse struct {
	Activity          Activity `json:"activity"`
	Prizes            []Prize  `json:"prizes"`
	LotteryCodesCount int      `json:"lottery_codes_count"`
}
