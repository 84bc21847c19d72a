package main

import "github.com/urfave/cli/v2"

func (a *drawctl) loadApp() {
	app := cli.NewApp()
	app.Name = "drawctl"
	app.Usage = "DrawHub lottery platform console"
	app.Before = a.setup
	app.Flags = []cli.Flag{
		&cli.StringFlag{Name: "config", Usage: "path to a TOML config file"},
		&cli.StringFlag{Name: "base-url", Usage: "API base URL, overrides the config file"},
	}

	app.Commands = []*cli.Command{
		{
			Name:     "login",
			Usage:    "Authenticate and persist the session token",
			Category: "Auth",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Required: true},
				&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Required: true},
			},
			Action: a.login,
		},
		{
			Name:     "logout",
			Usage:    "Invalidate the session on the backend and locally",
			Category: "Auth",
			Action:   a.logout,
		},
		{
			Name:     "whoami",
			Usage:    "Show the authenticated user",
			Category: "Auth",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "remote", Usage: "refresh the profile from the backend"},
			},
			Action: a.whoami,
		},
		{
			Name:     "passwd",
			Usage:    "Change the current user's password",
			Category: "Auth",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "old", Required: true},
				&cli.StringFlag{Name: "new", Required: true},
			},
			Action: a.changePassword,
		},

		{
			Name:     "activity",
			Usage:    "Manage lottery activities",
			Category: "Activity",
			Subcommands: []*cli.Command{
				{
					Name:  "list",
					Usage: "List activities",
					Flags: append(listFlags(),
						&cli.StringFlag{Name: "status", Usage: "draft, active or ended"},
						&cli.StringFlag{Name: "mode", Usage: "online or offline"},
					),
					Action: a.activityList,
				},
				{
					Name:      "show",
					Usage:     "Show one activity",
					ArgsUsage: "<activity-id>",
					Action:    a.activityShow,
				},
				{
					Name:  "create",
					Usage: "Create an activity",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "name", Required: true},
						&cli.StringFlag{Name: "description"},
						&cli.StringFlag{Name: "mode", Value: "offline", Usage: "online or offline"},
						&cli.StringFlag{Name: "start", Usage: "start time, RFC 3339"},
						&cli.StringFlag{Name: "end", Usage: "end time, RFC 3339"},
						&cli.IntFlag{Name: "max-codes"},
						&cli.StringFlag{Name: "code-format"},
						&cli.BoolFlag{Name: "allow-duplicate-phone"},
					},
					Action: a.activityCreate,
				},
				{
					Name:      "update",
					Usage:     "Update an activity; only the given flags change",
					ArgsUsage: "<activity-id>",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "name"},
						&cli.StringFlag{Name: "description"},
						&cli.StringFlag{Name: "status"},
						&cli.StringFlag{Name: "start"},
						&cli.StringFlag{Name: "end"},
					},
					Action: a.activityUpdate,
				},
				{
					Name:      "delete",
					Usage:     "Delete an activity",
					ArgsUsage: "<activity-id>",
					Action:    a.activityDelete,
				},
				{
					Name:      "webhook",
					Usage:     "Show the webhook endpoint and secret for an activity",
					ArgsUsage: "<activity-id>",
					Action:    a.activityWebhook,
				},
			},
		},

		{
			Name:     "prize",
			Usage:    "Manage the prizes of an activity",
			Category: "Activity",
			Subcommands: []*cli.Command{
				{
					Name:      "list",
					ArgsUsage: "<activity-id>",
					Action:    a.prizeList,
				},
				{
					Name:      "add",
					ArgsUsage: "<activity-id>",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "name", Required: true},
						&cli.StringFlag{Name: "description"},
						&cli.IntFlag{Name: "quantity", Required: true},
						&cli.Float64Flag{Name: "probability", Required: true},
						&cli.IntFlag{Name: "sort-order"},
					},
					Action: a.prizeAdd,
				},
				{
					Name:      "update",
					ArgsUsage: "<prize-id>",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "name"},
						&cli.StringFlag{Name: "description"},
						&cli.IntFlag{Name: "quantity"},
						&cli.Float64Flag{Name: "probability"},
						&cli.IntFlag{Name: "sort-order"},
					},
					Action: a.prizeUpdate,
				},
				{
					Name:      "delete",
					ArgsUsage: "<prize-id>",
					Action:    a.prizeDelete,
				},
			},
		},

		{
			Name:     "code",
			Usage:    "Manage lottery codes",
			Category: "Codes",
			Subcommands: []*cli.Command{
				{
					Name:      "list",
					ArgsUsage: "<activity-id>",
					Flags: append(listFlags(),
						&cli.StringFlag{Name: "status", Usage: "unused or used"},
						&cli.StringFlag{Name: "has-participant", Usage: "true or false"},
					),
					Action: a.codeList,
				},
				{
					Name:      "add",
					Usage:     "Add a single code, generated when --code is omitted",
					ArgsUsage: "<activity-id>",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "code"},
						&cli.StringFlag{Name: "name"},
						&cli.StringFlag{Name: "phone"},
						&cli.StringFlag{Name: "email"},
					},
					Action: a.codeAdd,
				},
				{
					Name:      "batch",
					Usage:     "Generate a batch of codes",
					ArgsUsage: "<activity-id>",
					Flags: []cli.Flag{
						&cli.IntFlag{Name: "count", Required: true},
					},
					Action: a.codeBatch,
				},
				{
					Name:      "import",
					Usage:     "Import codes from an Excel file",
					ArgsUsage: "<activity-id> <file>",
					Action:    a.codeImport,
				},
				{
					Name:      "export",
					Usage:     "Export codes to an Excel file",
					ArgsUsage: "<activity-id>",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file, '-' for stdout"},
						&cli.StringFlag{Name: "status"},
						&cli.StringFlag{Name: "search"},
					},
					Action: a.codeExport,
				},
				{
					Name:   "template",
					Usage:  "Download the import template",
					Flags:  []cli.Flag{&cli.StringFlag{Name: "out", Aliases: []string{"o"}}},
					Action: a.codeTemplate,
				},
				{
					Name:      "delete",
					Usage:     "Delete codes by id",
					ArgsUsage: "<activity-id> <code-id>...",
					Action:    a.codeDelete,
				},
				{
					Name:      "participant",
					Usage:     "Attach participant info to a code",
					ArgsUsage: "<code-id>",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "name", Required: true},
						&cli.StringFlag{Name: "phone", Required: true},
						&cli.StringFlag{Name: "email"},
					},
					Action: a.codeParticipant,
				},
			},
		},

		{
			Name:     "draw",
			Usage:    "Run lottery draws",
			Category: "Lottery",
			Subcommands: []*cli.Command{
				{
					Name:      "online",
					Usage:     "Redeem a code on the public participation endpoint",
					ArgsUsage: "<activity-id>",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "code", Required: true},
						&cli.StringFlag{Name: "name"},
						&cli.StringFlag{Name: "phone"},
						&cli.StringFlag{Name: "email"},
					},
					Action: a.drawOnline,
				},
				{
					Name:      "offline",
					Usage:     "Draw from the pool of unused codes",
					ArgsUsage: "<activity-id>",
					Flags: []cli.Flag{
						&cli.IntFlag{Name: "count", Usage: "number of draws, defaults to one"},
					},
					Action: a.drawOffline,
				},
			},
		},
		{
			Name:      "records",
			Usage:     "List draw records, across all activities unless one is given",
			Category:  "Lottery",
			ArgsUsage: "[activity-id]",
			Flags: append(listFlags(),
				&cli.BoolFlag{Name: "winners", Usage: "winning records only"},
				&cli.IntFlag{Name: "activity", Usage: "filter the cross-activity listing"},
				&cli.StringFlag{Name: "participant"},
				&cli.StringFlag{Name: "code"},
				&cli.StringFlag{Name: "from", Usage: "start date, YYYY-MM-DD"},
				&cli.StringFlag{Name: "to", Usage: "end date, YYYY-MM-DD"},
			),
			Action: a.recordList,
		},
		{
			Name:      "statistics",
			Usage:     "Win-rate summary of an activity",
			Category:  "Lottery",
			ArgsUsage: "<activity-id>",
			Action:    a.statisticsShow,
		},
		{
			Name:      "show",
			Usage:     "Public activity detail, no authentication needed",
			Category:  "Lottery",
			ArgsUsage: "<activity-id>",
			Action:    a.lotteryShow,
		},

		{
			Name:     "user",
			Usage:    "Manage console users",
			Category: "System",
			Subcommands: []*cli.Command{
				{
					Name:  "list",
					Flags: append(listFlags(),
						&cli.StringFlag{Name: "role"},
						&cli.StringFlag{Name: "status"},
					),
					Action: a.userList,
				},
				{
					Name: "create",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "username", Required: true},
						&cli.StringFlag{Name: "email", Required: true},
						&cli.StringFlag{Name: "password", Required: true},
						&cli.StringFlag{Name: "role", Value: "admin"},
					},
					Action: a.userCreate,
				},
				{
					Name:      "update",
					ArgsUsage: "<user-id>",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "username"},
						&cli.StringFlag{Name: "email"},
						&cli.StringFlag{Name: "role"},
					},
					Action: a.userUpdate,
				},
				{
					Name:      "status",
					Usage:     "Activate or deactivate a user",
					ArgsUsage: "<user-id> <active|inactive>",
					Action:    a.userStatus,
				},
				{
					Name:      "reset-password",
					ArgsUsage: "<user-id>",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "password", Required: true},
					},
					Action: a.userResetPassword,
				},
				{
					Name:      "delete",
					ArgsUsage: "<user-id>",
					Action:    a.userDelete,
				},
			},
		},
		{
			Name:     "logs",
			Usage:    "Operation audit log",
			Category: "System",
			Subcommands: []*cli.Command{
				{
					Name: "list",
					Flags: append(listFlags(),
						&cli.IntFlag{Name: "user-id"},
						&cli.StringFlag{Name: "type", Usage: "operation type"},
						&cli.StringFlag{Name: "target", Usage: "target type"},
						&cli.StringFlag{Name: "from"},
						&cli.StringFlag{Name: "to"},
					),
					Action: a.logList,
				},
				{
					Name:   "stats",
					Usage:  "Counts per operation type",
					Action: a.logStats,
				},
				{
					Name:  "cleanup",
					Usage: "Delete log entries older than a number of days",
					Flags: []cli.Flag{
						&cli.IntFlag{Name: "older-than", Required: true, Usage: "age in days"},
					},
					Action: a.logCleanup,
				},
			},
		},
		{
			Name:     "overview",
			Usage:    "Platform-wide counters",
			Category: "System",
			Action:   a.systemOverview,
		},
		{
			Name:     "health",
			Usage:    "Backend health report",
			Category: "System",
			Action:   a.systemHealth,
		},
		{
			Name:     "stats",
			Usage:    "Aggregate platform statistics",
			Category: "System",
			Action:   a.statsShow,
		},
	}

	a.cli = app
}

func listFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "page", Value: 1},
		&cli.IntFlag{Name: "limit", Value: 10},
		&cli.StringFlag{Name: "search"},
	}
}
