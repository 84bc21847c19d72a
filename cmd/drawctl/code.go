package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/drawhub-lab/client/model"

	"github.com/urfave/cli/v2"
)

func (a *drawctl) codeList(c *cli.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	activityID, err := argInt(c, 0, "activity-id")
	if err != nil {
		return err
	}

	params := model.LotteryCodeListParams{
		ListParams: model.ListParams{
			Page:   c.Int("page"),
			Limit:  c.Int("limit"),
			Search: c.String("search"),
		},
		Status: model.CodeStatus(c.String("status")),
	}
	if c.IsSet("has-participant") {
		has, err := strconv.ParseBool(c.String("has-participant"))
		if err != nil {
			return fmt.Errorf("--has-participant must be true or false")
		}
		params.HasParticipantInfo = &has
	}

	resp, err := a.codeAPI.List(a.ctx(c), activityID, params)
	if err != nil {
		return err
	}

	return printJSON(resp)
}

func (a *drawctl) codeAdd(c *cli.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	activityID, err := argInt(c, 0, "activity-id")
	if err != nil {
		return err
	}

	req := model.AddLotteryCodeRequest{Code: c.String("code")}
	if c.IsSet("name") || c.IsSet("phone") {
		req.ParticipantInfo = &model.ParticipantInfo{
			Name:  c.String("name"),
			Phone: c.String("phone"),
			Email: c.String("email"),
		}
	}

	created, err := a.codeAPI.Add(a.ctx(c), activityID, req)
	if err != nil {
		return err
	}

	return printJSON(created)
}

func (a *drawctl) codeBatch(c *cli.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	activityID, err := argInt(c, 0, "activity-id")
	if err != nil {
		return err
	}

	resp, err := a.codeAPI.BatchCreate(a.ctx(c), activityID, model.BatchAddLotteryCodesRequest{
		Count: c.Int("count"),
	})
	if err != nil {
		return err
	}

	return printJSON(resp)
}

func (a *drawctl) codeImport(c *cli.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	activityID, err := argInt(c, 0, "activity-id")
	if err != nil {
		return err
	}

	path := c.Args().Get(1)
	if path == "" {
		return fmt.Errorf("missing <file> argument")
	}

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	resp, err := a.codeAPI.Import(a.ctx(c), activityID, filepath.Base(path), file)
	if err != nil {
		return err
	}

	return printJSON(resp)
}

func (a *drawctl) codeExport(c *cli.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	activityID, err := argInt(c, 0, "activity-id")
	if err != nil {
		return err
	}

	content, err := a.codeAPI.Export(a.ctx(c), activityID, model.LotteryCodeListParams{
		ListParams: model.ListParams{Search: c.String("search")},
		Status:     model.CodeStatus(c.String("status")),
	})
	if err != nil {
		return err
	}

	out := c.String("out")
	if out == "" {
		out = fmt.Sprintf("lottery-codes-%d.xlsx", activityID)
	}
	if err := writeFileOrStdout(out, content); err != nil {
		return err
	}

	if out != "-" {
		a.log.Infof("wrote %d bytes to %s", len(content), out)
	}
	return nil
}

func (a *drawctl) codeTemplate(c *cli.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	content, err := a.codeAPI.Template(a.ctx(c))
	if err != nil {
		return err
	}

	out := c.String("out")
	if out == "" {
		out = "lottery-codes-template.xlsx"
	}
	if err := writeFileOrStdout(out, content); err != nil {
		return err
	}

	if out != "-" {
		a.log.Infof("wrote %d bytes to %s", len(content), out)
	}
	return nil
}

func (a *drawctl) codeDelete(c *cli.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	activityID, err := argInt(c, 0, "activity-id")
	if err != nil {
		return err
	}

	if c.Args().Len() < 2 {
		return fmt.Errorf("missing <code-id> arguments")
	}

	var ids []int
	for i := 1; i < c.Args().Len(); i++ {
		id, err := argInt(c, i, "code-id")
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}

	if err := a.codeAPI.BatchDelete(a.ctx(c), activityID, ids); err != nil {
		return err
	}

	fmt.Printf("deleted %d codes\n", len(ids))
	return nil
}

func (a *drawctl) codeParticipant(c *cli.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	codeID, err := argInt(c, 0, "code-id")
	if err != nil {
		return err
	}

	updated, err := a.codeAPI.UpdateParticipant(a.ctx(c), codeID, model.UpdateParticipantInfoRequest{
		ParticipantInfo: model.ParticipantInfo{
			Name:  c.String("name"),
			Phone: c.String("phone"),
			Email: c.String("email"),
		},
	})
	if err != nil {
		return err
	}

	return printJSON(updated)
}
