package main

import (
	"github.com/drawhub-lab/client/model"

	"github.com/urfave/cli/v2"
)

// drawOnline hits the public participation endpoint, so it works without a
// session.
func (a *drawctl) drawOnline(c *cli.Context) error {
	activityID, err := argInt(c, 0, "activity-id")
	if err != nil {
		return err
	}

	req := model.DrawLotteryRequest{LotteryCode: c.String("code")}
	if c.IsSet("name") || c.IsSet("phone") {
		req.ParticipantInfo = &model.ParticipantInfo{
			Name:  c.String("name"),
			Phone: c.String("phone"),
			Email: c.String("email"),
		}
	}

	record, err := a.lotteryAPI.Draw(a.ctx(c), activityID, req)
	if err != nil {
		return err
	}

	return printJSON(record)
}

func (a *drawctl) drawOffline(c *cli.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	activityID, err := argInt(c, 0, "activity-id")
	if err != nil {
		return err
	}

	record, err := a.lotteryAPI.OfflineDraw(a.ctx(c), activityID, model.OfflineDrawRequest{
		DrawCount: c.Int("count"),
	})
	if err != nil {
		return err
	}

	return printJSON(record)
}

func (a *drawctl) recordList(c *cli.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	// Without an activity argument this is the cross-activity admin listing.
	if c.Args().Len() == 0 {
		resp, err := a.lotteryAPI.AdminRecords(a.ctx(c), model.AdminLotteryRecordListParams{
			ListParams: model.ListParams{
				Page:   c.Int("page"),
				Limit:  c.Int("limit"),
				Search: c.String("search"),
			},
			ActivityID: c.Int("activity"),
			WinnerOnly: c.Bool("winners"),
			StartDate:  c.String("from"),
			EndDate:    c.String("to"),
		})
		if err != nil {
			return err
		}

		return printJSON(resp)
	}

	activityID, err := argInt(c, 0, "activity-id")
	if err != nil {
		return err
	}

	resp, err := a.lotteryAPI.Records(a.ctx(c), activityID, model.LotteryRecordListParams{
		ListParams: model.ListParams{
			Page:   c.Int("page"),
			Limit:  c.Int("limit"),
			Search: c.String("search"),
		},
		WinnerOnly:      c.Bool("winners"),
		ParticipantName: c.String("participant"),
		LotteryCode:     c.String("code"),
		StartDate:       c.String("from"),
		EndDate:         c.String("to"),
	})
	if err != nil {
		return err
	}

	return printJSON(resp)
}

func (a *drawctl) statisticsShow(c *cli.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	activityID, err := argInt(c, 0, "activity-id")
	if err != nil {
		return err
	}

	statistics, err := a.lotteryAPI.Statistics(a.ctx(c), activityID)
	if err != nil {
		return err
	}

	return printJSON(statistics)
}

// lotteryShow is the participant view of an activity, also public.
func (a *drawctl) lotteryShow(c *cli.Context) error {
	activityID, err := argInt(c, 0, "activity-id")
	if err != nil {
		return err
	}

	detail, err := a.lotteryAPI.GetActivity(a.ctx(c), activityID)
	if err != nil {
		return err
	}

	return printJSON(detail)
}
