package model

import "github.com/drawhub-lab/client/pkg/api"

type CodeStatus string

const (
	CodeUnused CodeStatus = "unused"
	CodeUsed   CodeStatus = "used"
)

type ParticipantInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

type LotteryCode struct {
	ID              int              `json:"id"`
	Code            string           `json:"code"`
	Status          CodeStatus       `json:"status"`
	ParticipantInfo *ParticipantInfo `json:"participant_info,omitempty"`
	UsedAt          string           `json:"used_at,omitempty"`
	CreatedAt       string           `json:"created_at"`
}

type AddLotteryCodeRequest struct {
	Code            string           `json:"code,omitempty"`
	ParticipantInfo *ParticipantInfo `json:"participant_info,omitempty"`
}

type BatchAddLotteryCodesRequest struct {
	Count            int               `json:"count"`
	ParticipantInfos []ParticipantInfo `json:"participant_infos,omitempty"`
}

type BatchDeleteLotteryCodesRequest struct {
	LotteryCodeIDs []int `json:"lottery_code_ids"`
}

type UpdateParticipantInfoRequest struct {
	ParticipantInfo ParticipantInfo `json:"participant_info"`
}

type LotteryCodeResponse struct {
	LotteryCode LotteryCode `json:"lottery_code"`
}

type LotteryCodeListResponse struct {
	LotteryCodes []LotteryCode `json:"lottery_codes"`
	Pagination   Pagination    `json:"pagination"`
}

type BatchCreateResponse struct {
	CreatedCount int           `json:"created_count"`
	LotteryCodes []LotteryCode `json:"lottery_codes"`
}

type ImportResponse struct {
	ImportedCount int           `json:"imported_count"`
	LotteryCodes  []LotteryCode `json:"lottery_codes"`
}

type LotteryCodeListParams struct {
	ListParams
	Status             CodeStatus
	HasParticipantInfo *bool
}

func (p LotteryCodeListParams) Values() *api.Parameter {
	return p.ListParams.Values().
		Add("status", string(p.Status)).
		Add("has_participant_info", p.HasParticipantInfo)
}
