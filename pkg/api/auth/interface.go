package auth

import (
	"context"

	"github.com/drawhub-lab/client/model"
)

type IEndpoint interface {
	Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error)
	Register(ctx context.Context, req model.RegisterRequest) (model.User, error)
	Me(ctx context.Context) (model.User, error)
	ChangePassword(ctx context.Context, req model.ChangePasswordRequest) error
	Logout(ctx context.Context) error
}
