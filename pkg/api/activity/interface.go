package activity

import (
	"context"

	"github.com/drawhub-lab/client/model"
)

type IEndpoint interface {
	List(ctx context.Context, params model.ActivityListParams) (model.ActivityListResponse, error)
	Create(ctx context.Context, req model.CreateActivityRequest) (model.Activity, error)
	Get(ctx context.Context, id int) (model.Activity, error)
	Update(ctx context.Context, id int, req model.UpdateActivityRequest) (model.Activity, error)
	Delete(ctx context.Context, id int) error
	WebhookInfo(ctx context.Context, id int) (model.WebhookInfo, error)
}
