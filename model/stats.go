package model

type SystemOverview struct {
	TotalUsers          int `json:"total_users"`
	ActiveUsers         int `json:"active_users"`
	TotalActivities     int `json:"total_activities"`
	ActiveActivities    int `json:"active_activities"`
	TotalLotteryCodes   int `json:"total_lottery_codes"`
	UsedLotteryCodes    int `json:"used_lottery_codes"`
	TotalLotteryRecords int `json:"total_lottery_records"`
	WinnerRecords       int `json:"winner_records"`
}

type SystemOverviewResponse struct {
	Overview SystemOverview `json:"overview"`
}

type SystemHealth struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Uptime   string `json:"uptime"`
	Version  string `json:"version"`
}

type SystemHealthResponse struct {
	Health SystemHealth `json:"health"`
}

type SystemStats struct {
	TotalUsers          int `json:"total_users"`
	TotalActivities     int `json:"total_activities"`
	TotalLotteryCodes   int `json:"total_lottery_codes"`
	TotalLotteryRecords int `json:"total_lottery_records"`
}
