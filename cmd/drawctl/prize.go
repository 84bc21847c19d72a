package main

import (
	"fmt"

	"github.com/drawhub-lab/client/model"

	"github.com/urfave/cli/v2"
)

func (a *drawctl) prizeList(c *cli.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	activityID, err := argInt(c, 0, "activity-id")
	if err != nil {
		return err
	}

	prizes, err := a.prizeAPI.List(a.ctx(c), activityID)
	if err != nil {
		return err
	}

	return printJSON(prizes)
}

func (a *drawctl) prizeAdd(c *cli.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	activityID, err := argInt(c, 0, "activity-id")
	if err != nil {
		return err
	}

	created, err := a.prizeAPI.Create(a.ctx(c), activityID, model.CreatePrizeRequest{
		Name:          c.String("name"),
		Description:   c.String("description"),
		TotalQuantity: c.Int("quantity"),
		Probability:   c.Float64("probability"),
		SortOrder:     intFlag(c, "sort-order"),
	})
	if err != nil {
		return err
	}

	return printJSON(created)
}

func (a *drawctl) prizeUpdate(c *cli.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	prizeID, err := argInt(c, 0, "prize-id")
	if err != nil {
		return err
	}

	updated, err := a.prizeAPI.Update(a.ctx(c), prizeID, model.UpdatePrizeRequest{
		Name:          stringFlag(c, "name"),
		Description:   stringFlag(c, "description"),
		TotalQuantity: intFlag(c, "quantity"),
		Probability:   float64Flag(c, "probability"),
		SortOrder:     intFlag(c, "sort-order"),
	})
	if err != nil {
		return err
	}

	return printJSON(updated)
}

func (a *drawctl) prizeDelete(c *cli.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	prizeID, err := argInt(c, 0, "prize-id")
	if err != nil {
		return err
	}

	if err := a.prizeAPI.Delete(a.ctx(c), prizeID); err != nil {
		return err
	}

	fmt.Println("deleted prize", prizeID)
	return nil
}
