package auth

import (
	"context"

	"github.com/drawhub-lab/client/model"
	"github.com/drawhub-lab/client/pkg/api"
)

// Endpoint is stateless; persisting the token returned by Login is the
// session store's job.
type Endpoint struct {
	apiGenerator api.Generator
}

func New(apiGenerator api.Generator) *Endpoint {
	return &Endpoint{apiGenerator: apiGenerator}
}

func (e *Endpoint) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	resp, err := e.apiGenerator.New("/auth/login").
		Body(api.JSONBody(req)).
		Public().
		POST(ctx)
	if err != nil {
		return model.LoginResponse{}, err
	}

	var out model.LoginResponse
	if err := api.Bind(resp, &out); err != nil {
		return model.LoginResponse{}, err
	}

	return out, nil
}

func (e *Endpoint) Register(ctx context.Context, req model.RegisterRequest) (model.User, error) {
	resp, err := e.apiGenerator.New("/auth/register").
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

func (e *Endpoint) Me(ctx context.Context) (model.User, error) {
	resp, err := e.apiGenerator.New("/auth/me").GET(ctx)
	if err != nil {
		return model.User{}, err
	}

	var out model.UserResponse
	if err := api.Bind(resp, &out); err != nil {
		return model.User{}, err
	}

	return out.User, nil
}

func (e *Endpoint) ChangePassword(ctx context.Context, req model.ChangePasswordRequest) error {
	_, err := e.apiGenerator.New("/auth/password").
		Body(api.JSONBody(req)).
		PUT(ctx)

	return err
}

func (e *Endpoint) Logout(ctx context.Context) error {
	_, err := e.apiGenerator.New("/auth/logout").POST(ctx)
	return err
}
