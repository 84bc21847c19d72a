package main

import (
	"fmt"

	"github.com/drawhub-lab/client/model"

	"github.com/urfave/cli/v2"
)

func (a *drawctl) userList(c *cli.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	resp, err := a.systemAPI.Users(a.ctx(c), model.UserListParams{
		ListParams: model.ListParams{
			Page:   c.Int("page"),
			Limit:  c.Int("limit"),
			Search: c.String("search"),
		},
		Role:   model.Role(c.String("role")),
		Status: model.UserStatus(c.String("status")),
	})
	if err != nil {
		return err
	}

	return printJSON(resp)
}

func (a *drawctl) userCreate(c *cli.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	user, err := a.systemAPI.CreateUser(a.ctx(c), model.RegisterRequest{
		Username: c.String("username"),
		Email:    c.String("email"),
		Password: c.String("password"),
		Role:     model.Role(c.String("role")),
	})
	if err != nil {
		return err
	}

	return printJSON(user)
}

func (a *drawctl) userUpdate(c *cli.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	id, err := argInt(c, 0, "user-id")
	if err != nil {
		return err
	}

	req := model.UpdateUserRequest{
		Username: stringFlag(c, "username"),
		Email:    stringFlag(c, "email"),
	}
	if c.IsSet("role") {
		role := model.Role(c.String("role"))
		req.Role = &role
	}

	user, err := a.systemAPI.UpdateUser(a.ctx(c), id, req)
	if err != nil {
		return err
	}

	return printJSON(user)
}

func (a *drawctl) userStatus(c *cli.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	id, err := argInt(c, 0, "user-id")
	if err != nil {
		return err
	}

	status := model.UserStatus(c.Args().Get(1))
	if status != model.UserActive && status != model.UserInactive {
		return fmt.Errorf("status must be active or inactive")
	}

	user, err := a.systemAPI.UpdateUserStatus(a.ctx(c), id, status)
	if err != nil {
		return err
	}

	return printJSON(user)
}

func (a *drawctl) userResetPassword(c *cli.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	id, err := argInt(c, 0, "user-id")
	if err != nil {
		return err
	}

	err = a.systemAPI.ResetUserPassword(a.ctx(c), id, model.ResetPasswordRequest{
		NewPassword: c.String("password"),
	})
	if err != nil {
		return err
	}

	fmt.Println("password reset for user", id)
	return nil
}

func (a *drawctl) userDelete(c *cli.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	id, err := argInt(c, 0, "user-id")
	if err != nil {
		return err
	}

	if err := a.systemAPI.DeleteUser(a.ctx(c), id); err != nil {
		return err
	}

	fmt.Println("deleted user", id)
	return nil
}

func (a *drawctl) logList(c *cli.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	resp, err := a.systemAPI.OperationLogs(a.ctx(c), model.OperationLogListParams{
		ListParams: model.ListParams{
			Page:   c.Int("page"),
			Limit:  c.Int("limit"),
			Search: c.String("search"),
		},
		UserID:        c.Int("user-id"),
		OperationType: c.String("type"),
		TargetType:    c.String("target"),
		StartDate:     c.String("from"),
		EndDate:       c.String("to"),
	})
	if err != nil {
		return err
	}

	return printJSON(resp)
}

func (a *drawctl) logStats(c *cli.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	statistics, err := a.systemAPI.OperationLogStatistics(a.ctx(c))
	if err != nil {
		return err
	}

	return printJSON(statistics)
}

func (a *drawctl) logCleanup(c *cli.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	resp, err := a.systemAPI.CleanupLogs(a.ctx(c), model.CleanupLogsRequest{
		OlderThanDays: c.Int("older-than"),
	})
	if err != nil {
		return err
	}

	return printJSON(resp)
}

func (a *drawctl) systemOverview(c *cli.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	overview, err := a.systemAPI.Overview(a.ctx(c))
	if err != nil {
		return err
	}

	return printJSON(overview)
}

func (a *drawctl) systemHealth(c *cli.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	health, err := a.systemAPI.Health(a.ctx(c))
	if err != nil {
		return err
	}

	return printJSON(health)
}

func (a *drawctl) statsShow(c *cli.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	systemStats, err := a.statsAPI.System(a.ctx(c))
	if err != nil {
		return err
	}

	return printJSON(systemStats)
}
