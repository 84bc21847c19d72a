package system

import (
	"context"

	"github.com/drawhub-lab/client/model"
)

type IEndpoint interface {
	Users(ctx context.Context, params model.UserListParams) (model.UserListResponse, error)
	CreateUser(ctx context.Context, req model.RegisterRequest) (model.User, error)
	UpdateUser(ctx context.Context, id int, req model.UpdateUserRequest) (model.User, error)
	UpdateUserStatus(ctx context.Context, id int, status model.UserStatus) (model.User, error)
	ResetUserPassword(ctx context.Context, id int, req model.ResetPasswordRequest) error
	DeleteUser(ctx context.Context, id int) error

	OperationLogs(ctx context.Context, params model.OperationLogListParams) (model.OperationLogListResponse, error)
	OperationLogStatistics(ctx context.Context) ([]model.OperationTypeStat, error)
	CleanupLogs(ctx context.Context, req model.CleanupLogsRequest) (model.CleanupLogsResponse, error)

	Overview(ctx context.Context) (model.SystemOverview, error)
	Health(ctx context.Context) (model.SystemHealth, error)
}
