// Package lotterycode handles code inventory: single and bulk creation,
// spreadsheet import/export and participant bookkeeping.
package lotterycode

import (
	"context"
	"io"

	"github.com/drawhub-lab/client/model"
	"github.com/drawhub-lab/client/pkg/api"
)

type Endpoint struct {
	apiGenerator api.Generator
	tokens       api.TokenProvider
}

// New takes the token provider separately because the blob endpoints attach
// the bearer token explicitly instead of through the generator.
func New(apiGenerator api.Generator, tokens api.TokenProvider) *Endpoint {
	return &Endpoint{apiGenerator: apiGenerator, tokens: tokens}
}

func (e *Endpoint) List(ctx context.Context, activityID int, params model.LotteryCodeListParams) (model.LotteryCodeListResponse, error) {
	resp, err := e.apiGenerator.New("/admin/activities/%d/lottery-codes", activityID).
		Query(params.Values()).
		GET(ctx)
	if err != nil {
		return model.LotteryCodeListResponse{}, err
	}

	var out model.LotteryCodeListResponse
	if err := api.Bind(resp, &out); err != nil {
		return model.LotteryCodeListResponse{}, err
	}

	return out, nil
}

func (e *Endpoint) Add(ctx context.Context, activityID int, req model.AddLotteryCodeRequest) (model.LotteryCode, error) {
	resp, err := e.apiGenerator.New("/admin/activities/%d/lottery-codes", activityID).
		Body(api.JSONBody(req)).
		POST(ctx)
	if err != nil {
		return model.LotteryCode{}, err
	}

	var out model.LotteryCodeResponse
	if err := api.Bind(resp, &out); err != nil {
		return model.LotteryCode{}, err
	}

	return out.LotteryCode, nil
}

func (e *Endpoint) BatchCreate(ctx context.Context, activityID int, req model.BatchAddLotteryCodesRequest) (model.BatchCreateResponse, error) {
	resp, err := e.apiGenerator.New("/admin/activities/%d/lottery-codes/batch", activityID).
		Body(api.JSONBody(req)).
		POST(ctx)
	if err != nil {
		return model.BatchCreateResponse{}, err
	}

	var out model.BatchCreateResponse
	if err := api.Bind(resp, &out); err != nil {
		return model.BatchCreateResponse{}, err
	}

	return out, nil
}

func (e *Endpoint) Import(ctx context.Context, activityID int, filename string, content io.Reader) (model.ImportResponse, error) {
	resp, err := e.apiGenerator.New("/admin/activities/%d/lottery-codes/import", activityID).
		Body(api.FileBody("file", filename, content)).
		POST(ctx)
	if err != nil {
		return model.ImportResponse{}, err
	}

	var out model.ImportResponse
	if err := api.Bind(resp, &out); err != nil {
		return model.ImportResponse{}, err
	}

	return out, nil
}

func (e *Endpoint) BatchDelete(ctx context.Context, activityID int, codeIDs []int) error {
	req := model.BatchDeleteLotteryCodesRequest{LotteryCodeIDs: codeIDs}
	_, err := e.apiGenerator.New("/admin/activities/%d/lottery-codes/batch", activityID).
		Body(api.JSONBody(req)).
		DELETE(ctx)

	return err
}

func (e *Endpoint) UpdateParticipant(ctx context.Context, codeID int, req model.UpdateParticipantInfoRequest) (model.LotteryCode, error) {
	resp, err := e.apiGenerator.New("/admin/lottery-codes/%d/participant-info", codeID).
		Body(api.JSONBody(req)).
		PUT(ctx)
	if err != nil {
		return model.LotteryCode{}, err
	}

	var out model.LotteryCodeResponse
	if err := api.Bind(resp, &out); err != nil {
		return model.LotteryCode{}, err
	}

	return out.LotteryCode, nil
}

// Template downloads the spreadsheet import template as raw bytes.
func (e *Endpoint) Template(ctx context.Context) ([]byte, error) {
	resp, err := e.apiGenerator.New("/admin/lottery-codes/template").
		Raw().
		GET(ctx, e.bearer()...)
	if err != nil {
		return nil, err
	}

	return resp.RawBody, nil
}

// Export downloads the activity's codes, honoring the same filters as List.
func (e *Endpoint) Export(ctx context.Context, activityID int, params model.LotteryCodeListParams) ([]byte, error) {
	resp, err := e.apiGenerator.New("/admin/activities/%d/lottery-codes/export", activityID).
		Query(params.Values()).
		Raw().
		GET(ctx, e.bearer()...)
	if err != nil {
		return nil, err
	}

	return resp.RawBody, nil
}

func (e *Endpoint) bearer() []api.Opt {
	if e.tokens == nil {
		return nil
	}

	token, ok := e.tokens.Token()
	if !ok {
		return nil
	}

	return []api.Opt{api.Bearer(token)}
}
