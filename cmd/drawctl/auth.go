package main

import (
	"fmt"

	"github.com/drawhub-lab/client/model"

	"github.com/urfave/cli/v2"
)

func (a *drawctl) login(c *cli.Context) error {
	user, err := a.session.Login(a.ctx(c), model.LoginRequest{
		Username: c.String("username"),
		Password: c.String("password"),
	})
	if err != nil {
		return err
	}

	if exp, ok := a.tokens.ExpiresAt(); ok {
		a.log.Infof("session valid until %s", exp.Format("2006-01-02 15:04:05"))
	}

	return printJSON(user)
}

func (a *drawctl) logout(c *cli.Context) error {
	if err := a.session.Logout(a.ctx(c)); err != nil {
		// Local state is already gone, the remote failure is only worth a
		// warning.
		a.log.Warnf("remote logout failed: %v", err)
	}

	fmt.Println("logged out")
	return nil
}

func (a *drawctl) whoami(c *cli.Context) error {
	if c.Bool("remote") {
		if err := a.requireLogin(); err != nil {
			return err
		}

		user, err := a.session.FetchUser(a.ctx(c))
		if err != nil {
			return err
		}

		return printJSON(user)
	}

	user, ok := a.currentUser(c)
	if !ok {
		fmt.Println("not logged in")
		return nil
	}

	return printJSON(user)
}

func (a *drawctl) changePassword(c *cli.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	err := a.authAPI.ChangePassword(a.ctx(c), model.ChangePasswordRequest{
		OldPassword: c.String("old"),
		NewPassword: c.String("new"),
	})
	if err != nil {
		return err
	}

	fmt.Println("password changed")
	return nil
}
