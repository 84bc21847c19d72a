package model

import "github.com/drawhub-lab/client/pkg/api"

// OperationLog is an append-only audit entry. The client only ever reads
// them or bulk-deletes by age.
type OperationLog struct {
	ID            int    `json:"id"`
	UserID        int    `json:"user_id"`
	Username      string `json:"username,omitempty"`
	OperationType string `json:"operation_type"`
	TargetType    string `json:"target_type"`
	TargetID      int    `json:"target_id"`
	Details       string `json:"details,omitempty"`
	IPAddress     string `json:"ip_address,omitempty"`
	UserAgent     string `json:"user_agent,omitempty"`
	CreatedAt     string `json:"created_at"`
}

type OperationLogListResponse struct {
	OperationLogs []OperationLog `json:"operation_logs"`
	Pagination    Pagination     `json:"pagination"`
}

type OperationLogListParams struct {
	ListParams
	UserID        int
	OperationType string
	TargetType    string
	StartDate     string
	EndDate       string
}

func (p OperationLogListParams) Values() *api.Parameter {
	out := p.ListParams.Values()
	if p.UserID > 0 {
		out.Add("user_id", p.UserID)
	}

	return out.
		Add("operation_type", p.OperationType).
		Add("target_type", p.TargetType).
		Add("start_date", p.StartDate).
		Add("end_date", p.EndDate)
}

type OperationTypeStat struct {
	OperationType string `json:"operation_type"`
	Count         int    `json:"count"`
}

type OperationLogStatisticsResponse struct {
	Statistics []OperationTypeStat `json:"statistics"`
}

// CleanupLogsRequest deletes log entries older than the given number of
// days.
type CleanupLogsRequest struct {
	OlderThanDays int `json:"older_than_days"`
}

type CleanupLogsResponse struct {
	DeletedCount int `json:"deleted_count"`
}
