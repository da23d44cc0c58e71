// Package command implements the climesync command handlers and the
// registry the dispatcher drives them through.
//
// Handlers never terminate the process and never panic: every outcome,
// including "not connected" and remote failures, is a Result value that the
// caller prints. The one invariant all handlers share is that no
// data-mutating call is attempted without an active session.
package command

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/osuosl/climesync/internal/config"
	"github.com/osuosl/climesync/internal/keyring"
	"github.com/osuosl/climesync/internal/prompt"
	"github.com/osuosl/climesync/internal/timesync"
)

// Record aliases the client's record type so handler signatures stay short.
type Record = timesync.Record

// Client is the surface of the TimeSync client the handlers need. It is an
// interface so tests can swap in a fake without a server.
type Client interface {
	BaseURL() string
	Test() bool
	User() string
	Token() string
	TokenExpired() (bool, error)

	Authenticate(ctx context.Context, username, password string) ([]Record, error)

	CreateTime(ctx context.Context, t Record) ([]Record, error)
	UpdateTime(ctx context.Context, uuid string, t Record) ([]Record, error)
	GetTimes(ctx context.Context, query Record) ([]Record, error)
	DeleteTime(ctx context.Context, uuid string) ([]Record, error)

	CreateProject(ctx context.Context, p Record) ([]Record, error)
	UpdateProject(ctx context.Context, slug string, p Record) ([]Record, error)
	GetProjects(ctx context.Context, query Record) ([]Record, error)
	DeleteProject(ctx context.Context, slug string) ([]Record, error)

	CreateActivity(ctx context.Context, a Record) ([]Record, error)
	UpdateActivity(ctx context.Context, slug string, a Record) ([]Record, error)
	GetActivities(ctx context.Context, query Record) ([]Record, error)
	DeleteActivity(ctx context.Context, slug string) ([]Record, error)

	CreateUser(ctx context.Context, u Record) ([]Record, error)
	UpdateUser(ctx context.Context, username string, u Record) ([]Record, error)
	GetUsers(ctx context.Context, username string) ([]Record, error)
	DeleteUser(ctx context.Context, username string) ([]Record, error)
}

// Session is the process's current connection and authenticated identity.
// There is at most one; connect replaces it, disconnect clears it, and
// sign-out swaps in a fresh unauthenticated client for the same server.
type Session struct {
	Client Client
	URL    string
	Test   bool
}

// Username is the authenticated user, empty before sign-in.
func (s *Session) Username() string {
	return s.Client.User()
}

// App carries everything a handler touches: the session, configuration,
// terminal I/O, and secret storage. Command execution is strictly
// sequential, so no locking guards the session.
type App struct {
	Session *Session

	Config     config.Config
	ConfigPath string

	Prompt  *prompt.Prompter
	Out     io.Writer
	Keyring keyring.Store
	Log     *zap.Logger

	// Test routes all connections into the client's offline test mode.
	Test bool

	// NewClient builds the client for a connect. Tests replace it.
	NewClient func(url string, test bool) Client

	ctx context.Context
}

// NewApp wires an App with the real TimeSync client factory.
func NewApp(cfg config.Config, configPath string, p *prompt.Prompter, out io.Writer, store keyring.Store, log *zap.Logger) *App {
	a := &App{
		Config:     cfg,
		ConfigPath: configPath,
		Prompt:     p,
		Out:        out,
		Keyring:    store,
		Log:        log,
		ctx:        context.Background(),
	}

	a.NewClient = func(url string, test bool) Client {
		opts := []timesync.Option{timesync.WithLogger(a.Log)}
		if test {
			opts = append(opts, timesync.WithTest())
		}
		return timesync.NewClient(url, opts...)
	}

	return a
}

// EnableDebug swaps in a console logger so subsequently built clients log
// each request. Credentials and tokens stay redacted at the client level.
func (a *App) EnableDebug() error {
	log, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("building debug logger: %w", err)
	}
	a.Log = log
	return nil
}

// Context is the context handler network calls run under.
func (a *App) Context() context.Context {
	if a.ctx == nil {
		return context.Background()
	}
	return a.ctx
}
