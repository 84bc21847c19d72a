package prize

import (
	"context"

	"github.com/drawhub-lab/client/model"
)

type IEndpoint interface {
	List(ctx context.Context, activityID int) ([]model.Prize, error)
	Create(ctx context.Context, activityID int, req model.CreatePrizeRequest) (model.Prize, error)
	Update(ctx context.Context, prizeID int, req model.UpdatePrizeRequest) (model.Prize, error)
	Delete(ctx context.Context, prizeID int) error
}
