// Package lottery covers the public participation surface plus the
// admin-run offline draw.
package lottery

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

// GetActivity is public: participants load it before redeeming a code.
func (e *Endpoint) GetActivity(ctx context.Context, activityID int) (model.LotteryActivityResponse, error) {
	resp, err := e.apiGenerator.New("/lottery/activities/%d", activityID).
		Public().
		GET(ctx)
	if err != nil {
		return model.LotteryActivityResponse{}, err
	}

	var out model.LotteryActivityResponse
	if err := api.Bind(resp, &out); err != nil {
		return model.LotteryActivityResponse{}, err
	}

	return out, nil
}

// Draw redeems a lottery code. Public; the code itself is the credential.
func (e *Endpoint) Draw(ctx context.Context, activityID int, req model.DrawLotteryRequest) (model.LotteryRecord, error) {
	resp, err := e.apiGenerator.New("/lottery/activities/%d/draw", activityID).
		Body(api.JSONBody(req)).
		Public().
		POST(ctx)
	if err != nil {
		return model.LotteryRecord{}, err
	}

	var out model.DrawLotteryResponse
	if err := api.Bind(resp, &out); err != nil {
		return model.LotteryRecord{}, err
	}

	return out.LotteryRecord, nil
}

func (e *Endpoint) OfflineDraw(ctx context.Context, activityID int, req model.OfflineDrawRequest) (model.LotteryRecord, error) {
	resp, err := e.apiGenerator.New("/lottery/activities/%d/offline-draw", activityID).
		Body(api.JSONBody(req)).
		POST(ctx)
	if err != nil {
		return model.LotteryRecord{}, err
	}

	var out model.DrawLotteryResponse
	if err := api.Bind(resp, &out); err != nil {
		return model.LotteryRecord{}, err
	}

	return out.LotteryRecord, nil
}

func (e *Endpoint) Records(ctx context.Context, activityID int, params model.LotteryRecordListParams) (model.LotteryRecordListResponse, error) {
	resp, err := e.apiGenerator.New("/lottery/activities/%d/records", activityID).
		Query(params.Values()).
		GET(ctx)
	if err != nil {
		return model.LotteryRecordListResponse{}, err
	}

	var out model.LotteryRecordListResponse
	if err := api.Bind(resp, &out); err != nil {
		return model.LotteryRecordListResponse{}, err
	}

	return out, nil
}

// AdminRecords lists draw records across every activity.
func (e *Endpoint) AdminRecords(ctx context.Context, params model.AdminLotteryRecordListParams) (model.LotteryRecordListResponse, error) {
	resp, err := e.apiGenerator.New("/admin/lottery-records").
		Query(params.Values()).
		GET(ctx)
	if err != nil {
		return model.LotteryRecordListResponse{}, err
	}

	var out model.LotteryRecordListResponse
	if err := api.Bind(resp, &out); err != nil {
		return model.LotteryRecordListResponse{}, err
	}

	return out, nil
}

func (e *Endpoint) Statistics(ctx context.Context, activityID int) (model.LotteryStatistics, error) {
	resp, err := e.apiGenerator.New("/lottery/activities/%d/statistics", activityID).GET(ctx)
	if err != nil {
		return model.LotteryStatistics{}, err
	}

	var out model.LotteryStatisticsResponse
	if err := api.Bind(resp, &out); err != nil {
		return model.LotteryStatistics{}, err
	}

	return out.Statistics, nil
}
