// Package system groups user administration, the audit trail and the
// operational dashboards. Everything here requires a super_admin or admin
// session; enforcement is server-side.
package system

import (
	"context"

	"github.com/drawhub-lab/client/model"
	"github.com/drawhub-lab/client/pkg/api"
)

type Endpoint struct {
	apiGenerator api.Generator
}

func New(apiGenerator api.Generator) *Endpoint {
	return &Endpoint{apiGenerator: apiGenerator}
}

func (e *Endpoint) Users(ctx context.Context, params model.UserListParams) (model.UserListResponse, error) {
	resp, err := e.apiGenerator.New("/system/users").
		Query(params.Values()).
		GET(ctx)
	if err != nil {
		return model.UserListResponse{}, err
	}

	var out model.UserListResponse
	if err := api.Bind(resp, &out); err != nil {
		return model.UserListResponse{}, err
	}

	return out, nil
}

func (e *Endpoint) CreateUser(ctx context.Context, req model.RegisterRequest) (model.User, error) {
	resp, err := e.apiGenerator.New("/system/users").
		Body(api.JSONBody(req)).
		POST(ctx)
	if err != nil {
		return model.User{}, err
	}

	var out model.UserResponse
	if err := api.Bind(resp, &out); err != nil {
		return model.User{}, err
	}

	return out.User, nil
}

func (e *Endpoint) UpdateUser(ctx context.Context, id int, req model.UpdateUserRequest) (model.User, error) {
	resp, err := e.apiGenerator.New("/system/users/%d", id).
		Body(api.JSONBody(req)).
		PUT(ctx)
	if err != nil {
		return model.User{}, err
	}

	var out model.UserResponse
	if err := api.Bind(resp, &out); err != nil {
		return model.User{}, err
	}

	return out.User, nil
}

func (e *Endpoint) UpdateUserStatus(ctx context.Context, id int, status model.UserStatus) (model.User, error) {
	body := struct {
		Status model.UserStatus `json:"status"`
	}{Status: status}

	resp, err := e.apiGenerator.New("/system/users/%d/status", id).
		Body(api.JSONBody(body)).
		PUT(ctx)
	if err != nil {
		return model.User{}, err
	}

	var out model.UserResponse
	if err := api.Bind(resp, &out); err != nil {
		return model.User{}, err
	}

	return out.User, nil
}

func (e *Endpoint) ResetUserPassword(ctx context.Context, id int, req model.ResetPasswordRequest) error {
	_, err := e.apiGenerator.New("/system/users/%d/reset-password", id).
		Body(api.JSONBody(req)).
		POST(ctx)

	return err
}

func (e *Endpoint) DeleteUser(ctx context.Context, id int) error {
	_, err := e.apiGenerator.New("/system/users/%d", id).DELETE(ctx)
	return err
}

func (e *Endpoint) OperationLogs(ctx context.Context, params model.OperationLogListParams) (model.OperationLogListResponse, error) {
	resp, err := e.apiGenerator.New("/system/operation-logs").
		Query(params.Values()).
		GET(ctx)
	if err != nil {
		return model.OperationLogListResponse{}, err
	}

	var out model.OperationLogListResponse
	if err := api.Bind(resp, &out); err != nil {
		return model.OperationLogListResponse{}, err
	}

	return out, nil
}

func (e *Endpoint) OperationLogStatistics(ctx context.Context) ([]model.OperationTypeStat, error) {
	resp, err := e.apiGenerator.New("/system/operation-logs/statistics").GET(ctx)
	if err != nil {
		return nil, err
	}

	var out model.OperationLogStatisticsResponse
	if err := api.Bind(resp, &out); err != nil {
		return nil, err
	}

	return out.Statistics, nil
}

// CleanupLogs bulk-deletes audit entries older than the requested age.
func (e *Endpoint) CleanupLogs(ctx context.Context, req model.CleanupLogsRequest) (model.CleanupLogsResponse, error) {
	resp, err := e.apiGenerator.New("/system/operation-logs/cleanup").
		Body(api.JSONBody(req)).
		DELETE(ctx)
	if err != nil {
		return model.CleanupLogsResponse{}, err
	}

	var out model.CleanupLogsResponse
	if err := api.Bind(resp, &out); err != nil {
		return model.CleanupLogsResponse{}, err
	}

	return out, nil
}

func (e *Endpoint) Overview(ctx context.Context) (model.SystemOverview, error) {
	resp, err := e.apiGenerator.New("/system/overview").GET(ctx)
	if err != nil {
		return model.SystemOverview{}, err
	}

	var out model.SystemOverviewResponse
	if err := api.Bind(resp, &out); err != nil {
		return model.SystemOverview{}, err
	}

	return out.Overview, nil
}

func (e *Endpoint) Health(ctx context.Context) (model.SystemHealth, error) {
	resp, err := e.apiGenerator.New("/system/health").GET(ctx)
	if err != nil {
		return model.SystemHealth{}, err
	}

	var out model.SystemHealthResponse
	if err := api.Bind(resp, &out); err != nil {
		return model.SystemHealth{}, err
	}

	return out.Health, nil
}
