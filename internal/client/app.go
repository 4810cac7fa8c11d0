package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-purchase-tracker/internal/adapter"
	"github.com/MKhiriev/go-purchase-tracker/internal/config"
	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
	"github.com/MKhiriev/go-purchase-tracker/internal/service"
	"github.com/MKhiriev/go-purchase-tracker/internal/store"
	"github.com/MKhiriev/go-purchase-tracker/models"
	"github.com/spf13/cobra"
)

// ServicesFactory builds the client services for cfg. The returned closer
// releases whatever the services hold open.
type ServicesFactory func(ctx context.Context, cfg *config.ClientConfig, notify service.SessionCheckFunc, log *logger.Logger) (*service.ClientServices, func() error, error)

// App is the cobra based terminal client.
type App struct {
	root  *cobra.Command
	build models.AppBuildInfo

	loadConfig  func(jsonPath string, overrides config.ClientConfig) (*config.ClientConfig, error)
	newServices ServicesFactory
	browse      func(cmd *cobra.Command, filter models.PurchaseFilter) error

	// persistent flag values
	configPath string
	overrides  config.ClientConfig
	asJSON     bool

	cfg           *config.ClientConfig
	services      *service.ClientServices
	closeServices func() error
	stopWatch     context.CancelFunc

	logger *logger.Logger
}

func NewApp(build models.AppBuildInfo, logger *logger.Logger) *App {
	a := &App{
		build:       build,
		loadConfig:  config.GetClientConfig,
		newServices: newClientServices,
		logger:      logger,
	}
	a.browse = func(cmd *cobra.Command, filter models.PurchaseFilter) error {
		return runBrowser(a, cmd, filter)
	}
	a.root = a.newRootCommand()

	return a
}

// Run executes the command line of the current process until it finishes
// or the process receives an interrupt.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	return a.Execute(ctx, os.Args[1:])
}

// Execute runs the command tree for args.
func (a *App) Execute(ctx context.Context, args []string) error {
	a.root.SetArgs(args)

	if err := a.root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(a.root.ErrOrStderr(), "Error:", describeError(err))
		return err
	}

	return nil
}

// SetOutput redirects command output. Used by tests.
func (a *App) SetOutput(out, errOut io.Writer) {
	a.root.SetOut(out)
	a.root.SetErr(errOut)
}

// SetInput replaces standard input. Used by tests.
func (a *App) SetInput(in io.Reader) {
	a.root.SetIn(in)
}

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "purchase-client",
		Short: "Terminal client for the purchase tracker API",
		Long: `purchase-client talks to the purchase tracker API.

Log in once with "login"; the session is stored locally and reused by the
other commands until it expires. "watch" keeps the session alive.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.teardown()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "path to a JSON config file")
	flags.StringVarP(&a.overrides.Adapter.ServerURL, "server", "s", "", "purchase API base URL")
	flags.DurationVar(&a.overrides.Adapter.RequestTimeout, "timeout", 0, "request timeout")
	flags.StringVar(&a.overrides.Storage.SessionDSN, "session", "", "session database file")
	flags.BoolVar(&a.asJSON, "json", false, "print JSON instead of tables")

	root.AddCommand(
		a.newLoginCommand(),
		a.newLogoutCommand(),
		a.newStatusCommand(),
		a.newRefreshCommand(),
		a.newWatchCommand(),
		a.newPurchasesCommand(),
		a.newBrowseCommand(),
		a.newCurrenciesCommand(),
		a.newRateCommand(),
		a.newSyncStatusCommand(),
		a.newVersionCommand(),
	)

	return root
}

// setup loads the configuration and builds the services once per run.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	if a.services != nil {
		return nil
	}

	cfg, err := a.loadConfig(a.configPath, a.overrides)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	services, closer, err := a.newServices(cmd.Context(), cfg, a.onSessionCheck, a.logger)
	if err != nil {
		return fmt.Errorf("create client services: %w", err)
	}

	a.cfg = cfg
	a.services = services
	a.closeServices = closer

	return nil
}

func (a *App) teardown() error {
	if a.closeServices == nil {
		return nil
	}

	err := a.closeServices()
	a.closeServices = nil
	a.services = nil

	return err
}

// requireSession attaches the saved token to the adapter.
func (a *App) requireSession(ctx context.Context) (models.Session, error) {
	return a.services.SessionService.Current(ctx)
}

func newClientServices(ctx context.Context, cfg *config.ClientConfig, notify service.SessionCheckFunc, log *logger.Logger) (*service.ClientServices, func() error, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, nil, err
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		_ = storages.Close()
		return nil, nil, err
	}

	return service.NewClientServices(storages, serverAdapter, notify, log), storages.Close, nil
}

// describeError turns the service errors a user can act on into hints.
func describeError(err error) string {
	switch {
	case errors.Is(err, service.ErrNotLoggedIn):
		return "not logged in, run \"login\" first"
	case errors.Is(err, service.ErrSessionExpired):
		return "session expired, run \"login\" again"
	case errors.Is(err, service.ErrInvalidCredentials):
		return "invalid username or password"
	case errors.Is(err, adapter.ErrTooManyRequests):
		return "too many requests, try again later"
	case errors.Is(err, adapter.ErrTimeout):
		return "the server did not answer in time"
	default:
		return err.Error()
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}
