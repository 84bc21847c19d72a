package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/drawhub-lab/client/config"
	"github.com/drawhub-lab/client/model"
	"github.com/drawhub-lab/client/pkg/api"
	"github.com/drawhub-lab/client/pkg/api/activity"
	"github.com/drawhub-lab/client/pkg/api/auth"
	"github.com/drawhub-lab/client/pkg/api/lottery"
	"github.com/drawhub-lab/client/pkg/api/lotterycode"
	"github.com/drawhub-lab/client/pkg/api/prize"
	"github.com/drawhub-lab/client/pkg/api/stats"
	"github.com/drawhub-lab/client/pkg/api/system"
	"github.com/drawhub-lab/client/pkg/errorx"
	"github.com/drawhub-lab/client/pkg/kv"
	"github.com/drawhub-lab/client/pkg/logger"
	"github.com/drawhub-lab/client/pkg/session"
	"github.com/drawhub-lab/client/pkg/xcontext"

	"github.com/urfave/cli/v2"
	"golang.org/x/time/rate"
)

type drawctl struct {
	cli *cli.App

	configs    config.Configs
	log        logger.Logger
	apiLog     logger.Logger
	httpClient *http.Client

	store   kv.Store
	tokens  *session.Tokens
	session *session.Store

	apiGenerator api.Generator

	authAPI     auth.IEndpoint
	activityAPI activity.IEndpoint
	prizeAPI    prize.IEndpoint
	codeAPI     lotterycode.IEndpoint
	lotteryAPI  lottery.IEndpoint
	systemAPI   system.IEndpoint
	statsAPI    stats.IEndpoint
}

// setup runs once before any command action. The order matters: the API
// generator needs the token provider, the session store needs the auth
// endpoint built on that generator, and the 401 hook closes over the
// session store that does not exist yet when the generator is created.
func (a *drawctl) setup(c *cli.Context) error {
	if err := a.loadConfig(c); err != nil {
		return err
	}
	a.loadLogger()
	if err := a.loadStores(); err != nil {
		return err
	}
	a.loadAPI()
	a.loadSession()

	return nil
}

func (a *drawctl) loadConfig(c *cli.Context) error {
	path := c.String("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := config.Load(c.Context, path)
	if err != nil {
		return err
	}

	if c.IsSet("base-url") {
		cfg.API.BaseURL = c.String("base-url")
	}

	a.configs = cfg
	return nil
}

func (a *drawctl) loadLogger() {
	base := logger.NewLogger(logger.ParseLevel(a.configs.Log.Level))
	a.log = base

	// Lines emitted from inside the request wrapper are marked so they read
	// apart from command output.
	a.apiLog = base.WithPrefix("api:")
}

func (a *drawctl) loadStores() error {
	dir, err := a.configs.StateDir()
	if err != nil {
		return err
	}

	store, err := kv.OpenFile(filepath.Join(dir, "state.json"))
	if err != nil {
		return err
	}

	a.store = store
	a.tokens = session.NewTokens(store)
	return nil
}

func (a *drawctl) loadAPI() {
	a.httpClient = &http.Client{Timeout: a.configs.API.Timeout}

	opts := []api.GeneratorOption{
		api.WithTokenProvider(a.tokens),
		// The session store is built after the generator, so the hook
		// resolves it at call time.
		api.WithUnauthorizedHook(func() {
			if a.session != nil {
				a.session.HandleUnauthorized()
			}
			a.log.Warnf("session expired, run `drawctl login` to re-authenticate")
		}),
	}
	if a.configs.API.RateLimit > 0 {
		opts = append(opts, api.WithLimiter(rate.NewLimiter(rate.Limit(a.configs.API.RateLimit), 1)))
	}

	a.apiGenerator = api.NewGenerator(a.configs.API.BaseURL, opts...)

	a.authAPI = auth.New(a.apiGenerator)
	a.activityAPI = activity.New(a.apiGenerator)
	a.prizeAPI = prize.New(a.apiGenerator)
	a.codeAPI = lotterycode.New(a.apiGenerator, a.tokens)
	a.lotteryAPI = lottery.New(a.apiGenerator)
	a.systemAPI = system.New(a.apiGenerator)
	a.statsAPI = stats.New(a.apiGenerator)
}

func (a *drawctl) loadSession() {
	a.session = session.NewStore(a.store, a.tokens, a.authAPI, a.log)
}

// ctx carries the logger and HTTP client to the request wrapper.
func (a *drawctl) ctx(c *cli.Context) context.Context {
	ctx := xcontext.WithLogger(c.Context, a.apiLog)
	return xcontext.WithHTTPClient(ctx, a.httpClient)
}

// requireLogin fails fast with a readable message instead of letting the
// backend answer 401 for every sub-request.
func (a *drawctl) requireLogin() error {
	if _, ok := a.tokens.Token(); !ok {
		return errorx.New(errorx.APIError, "not logged in, run `drawctl login` first")
	}

	return nil
}

func (a *drawctl) currentUser(c *cli.Context) (model.User, bool) {
	if user, ok := a.session.User(); ok {
		return user, true
	}

	if _, ok := a.tokens.Token(); !ok {
		return model.User{}, false
	}

	user, err := a.session.FetchUser(a.ctx(c))
	if err != nil {
		return model.User{}, false
	}

	return user, true
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))
	return nil
}

func writeFileOrStdout(path string, content []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(content)
		return err
	}

	return os.WriteFile(path, content, 0o644)
}
