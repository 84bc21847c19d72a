package lottery

import (
	"context"

	"github.com/drawhub-lab/client/model"
)

type IEndpoint interface {
	GetActivity(ctx context.Context, activityID int) (model.LotteryActivityResponse, error)
	Draw(ctx context.Context, activityID int, req model.DrawLotteryRequest) (model.LotteryRecord, error)
	OfflineDraw(ctx context.Context, activityID int, req model.OfflineDrawRequest) (model.LotteryRecord, error)
	Records(ctx context.Context, activityID int, params model.LotteryRecordListParams) (model.LotteryRecordListResponse, error)
	AdminRecords(ctx context.Context, params model.AdminLotteryRecordListParams) (model.LotteryRecordListResponse, error)
	Statistics(ctx context.Context, activityID int) (model.LotteryStatistics, error)
}
