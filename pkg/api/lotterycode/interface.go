package lotterycode

import (
	"context"
	"io"

	"github.com/drawhub-lab/client/model"
)

type IEndpoint interface {
	List(ctx context.Context, activityID int, params model.LotteryCodeListParams) (model.LotteryCodeListResponse, error)
	Add(ctx context.Context, activityID int, req model.AddLotteryCodeRequest) (model.LotteryCode, error)
	BatchCreate(ctx context.Context, activityID int, req model.BatchAddLotteryCodesRequest) (model.BatchCreateResponse, error)
	Import(ctx context.Context, activityID int, filename string, content io.Reader) (model.ImportResponse, error)
	BatchDelete(ctx context.Context, activityID int, codeIDs []int) error
	UpdateParticipant(ctx context.Context, codeID int, req model.UpdateParticipantInfoRequest) (model.LotteryCode, error)
	Template(ctx context.Context) ([]byte, error)
	Export(ctx context.Context, activityID int, params model.LotteryCodeListParams) ([]byte, error)
}
