package main

import (
	"fmt"

	"github.com/drawhub-lab/client/model"

	"github.com/urfave/cli/v2"
)

func (a *drawctl) activityList(c *cli.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	resp, err := a.activityAPI.List(a.ctx(c), model.ActivityListParams{
		ListParams: model.ListParams{
			Page:   c.Int("page"),
			Limit:  c.Int("limit"),
			Search: c.String("search"),
		},
		Status:      model.ActivityStatus(c.String("status")),
		LotteryMode: model.LotteryMode(c.String("mode")),
	})
	if err != nil {
		return err
	}

	return printJSON(resp)
}

func (a *drawctl) activityShow(c *cli.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	id, err := argInt(c, 0, "activity-id")
	if err != nil {
		return err
	}

	act, err := a.activityAPI.Get(a.ctx(c), id)
	if err != nil {
		return err
	}

	return printJSON(act)
}

func (a *drawctl) activityCreate(c *cli.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	req := model.CreateActivityRequest{
		Name:        c.String("name"),
		Description: c.String("description"),
		LotteryMode: model.LotteryMode(c.String("mode")),
		StartTime:   c.String("start"),
		EndTime:     c.String("end"),
	}

	if c.IsSet("max-codes") || c.IsSet("code-format") || c.IsSet("allow-duplicate-phone") {
		settings := &model.ActivitySettings{
			MaxLotteryCodes: intFlag(c, "max-codes"),
		}
		if c.IsSet("code-format") {
			format := model.CodeFormat(c.String("code-format"))
			settings.LotteryCodeFormat = &format
		}
		if c.IsSet("allow-duplicate-phone") {
			allow := c.Bool("allow-duplicate-phone")
			settings.AllowDuplicatePhone = &allow
		}
		req.Settings = settings
	}

	act, err := a.activityAPI.Create(a.ctx(c), req)
	if err != nil {
		return err
	}

	return printJSON(act)
}

func (a *drawctl) activityUpdate(c *cli.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	id, err := argInt(c, 0, "activity-id")
	if err != nil {
		return err
	}

	req := model.UpdateActivityRequest{
		Name:        stringFlag(c, "name"),
		Description: stringFlag(c, "description"),
		StartTime:   stringFlag(c, "start"),
		EndTime:     stringFlag(c, "end"),
	}
	if c.IsSet("status") {
		status := model.ActivityStatus(c.String("status"))
		req.Status = &status
	}

	act, err := a.activityAPI.Update(a.ctx(c), id, req)
	if err != nil {
		return err
	}

	return printJSON(act)
}

func (a *drawctl) activityDelete(c *cli.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	id, err := argInt(c, 0, "activity-id")
	if err != nil {
		return err
	}

	if err := a.activityAPI.Delete(a.ctx(c), id); err != nil {
		return err
	}

	fmt.Println("deleted activity", id)
	return nil
}

func (a *drawctl) activityWebhook(c *cli.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	id, err := argInt(c, 0, "activity-id")
	if err != nil {
		return err
	}

	info, err := a.activityAPI.WebhookInfo(a.ctx(c), id)
	if err != nil {
		return err
	}

	return printJSON(info)
}
