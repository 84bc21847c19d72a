package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"
)

func argInt(c *cli.Context, index int, name string) (int, error) {
	raw := c.Args().Get(index)
	if raw == "" {
		return 0, fmt.Errorf("missing <%s> argument", name)
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("<%s> must be a number, got %q", name, raw)
	}

	return id, nil
}

func stringFlag(c *cli.Context, name string) *string {
	if !c.IsSet(name) {
		return nil
	}

	v := c.String(name)
	return &v
}

func intFlag(c *cli.Context, name string) *int {
	if !c.IsSet(name) {
		return nil
	}

	v := c.Int(name)
	return &v
}

func float64Flag(c *cli.Context, name string) *float64 {
	if !c.IsSet(name) {
		return nil
	}

	v := c.Float64(name)
	return &v
}
