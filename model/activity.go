package model

import "github.com/drawhub-lab/client/pkg/api"

type ActivityStatus string

const (
	ActivityDraft  ActivityStatus = "draft"
	ActivityActive ActivityStatus = "active"
	ActivityEnded  ActivityStatus = "ended"
)

type LotteryMode string

const (
	ModeOffline LotteryMode = "offline"
	ModeOnline  LotteryMode = "online"
)

type CodeFormat string

const (
	Format4Digit         CodeFormat = "4_digit_number"
	Format8Digit         CodeFormat = "8_digit_number"
	Format8Alphanumeric  CodeFormat = "8_digit_alphanumeric"
	Format12Digit        CodeFormat = "12_digit_number"
	Format12Alphanumeric CodeFormat = "12_digit_alphanumeric"
)

type ActivitySettings struct {
	MaxLotteryCodes     *int        `json:"max_lottery_codes,omitempty"`
	LotteryCodeFormat   *CodeFormat `json:"lottery_code_format,omitempty"`
	AllowDuplicatePhone *bool       `json:"allow_duplicate_phone,omitempty"`
}

type Activity struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Status      ActivityStatus    `json:"status"`
	LotteryMode LotteryMode       `json:"lottery_mode"`
	StartTime   string            `json:"start_time,omitempty"`
	EndTime     string            `json:"end_time,omitempty"`
	Settings    *ActivitySettings `json:"settings,omitempty"`
	CreatedAt   string            `json:"created_at"`

	// Derived counters, present on admin and public detail responses.
	LotteryCodesCount     *int `json:"lottery_codes_count,omitempty"`
	RemainingLotteryCodes *int `json:"remaining_lottery_codes,omitempty"`
	UsedLotteryCodes      *int `json:"used_lottery_codes,omitempty"`

	Prizes []Prize `json:"prizes,omitempty"`
}

type CreateActivityRequest struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	LotteryMode LotteryMode       `json:"lottery_mode"`
	StartTime   string            `json:"start_time,omitempty"`
	EndTime     string            `json:"end_time,omitempty"`
	Settings    *ActivitySettings `json:"settings,omitempty"`
}

// UpdateActivityRequest is a partial update; only non-nil fields change.
type UpdateActivityRequest struct {
	Name        *string         `json:"name,omitempty"`
	Description *string         `json:"description,omitempty"`
	Status      *ActivityStatus `json:"status,omitempty"`
	StartTime   *string         `json:"start_time,omitempty"`
	EndTime     *string         `json:"end_time,omitempty"`
}

type ActivityResponse struct {
	Activity Activity `json:"activity"`
}

type ActivityListResponse struct {
	Activities []Activity `json:"activities"`
	Pagination Pagination `json:"pagination"`
}

type ActivityListParams struct {
	ListParams
	Status      ActivityStatus
	LotteryMode LotteryMode
}

func (p ActivityListParams) Values() *api.Parameter {
	return p.ListParams.Values().
		Add("status", string(p.Status)).
		Add("lottery_mode", string(p.LotteryMode))
}

type WebhookInfo struct {
	WebhookURL string `json:"webhook_url"`
	Secret     string `json:"secret"`
	ActivityID int    `json:"activity_id"`
}
