package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/bakery/internal/client/catalog"
	"github.com/dmitrijs2005/bakery/internal/client/client"
	"github.com/dmitrijs2005/bakery/internal/client/config"
	"github.com/dmitrijs2005/bakery/internal/client/metrics"
	"github.com/dmitrijs2005/bakery/internal/client/promo"
	"github.com/dmitrijs2005/bakery/internal/client/repositories/kv"
	"github.com/dmitrijs2005/bakery/internal/client/services"
	"github.com/dmitrijs2005/bakery/internal/client/storage"
	"github.com/dmitrijs2005/bakery/internal/logging"
)

type App struct {
	config  *config.Config
	account services.AccountService
	shop    services.Shop
	store   storage.Store
	metrics *metrics.Metrics
	log     logging.Logger
	closer  io.Closer
	reader  *bufio.Reader
	out     io.Writer

	userName string
	// lastRegistered pre-fills the login prompt right after registration.
	lastRegistered string
}

// NewApp opens the durable store named in c and builds the services on top
// of it. The session store lives in memory for the life of the process.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log, err := logging.New(c.LogFormat, c.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, c.DatabaseDriver, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "driver", c.DatabaseDriver, "error", err)
		return nil, err
	}

	st := storage.New(kv.NewSQLRepository(db), kv.NewMemoryRepository())
	a := newApp(c, st, log, bufio.NewReader(os.Stdin), os.Stdout)
	a.closer = db

	return a, nil
}

func newApp(c *config.Config, st storage.Store, log logging.Logger, reader *bufio.Reader, out io.Writer) *App {
	m := metrics.New()
	a := &App{config: c, store: st, metrics: m, log: log, reader: reader, out: out}

	a.account = services.NewAccountService(st, m, log,
		services.OnRegistered(func(_ context.Context, username string) { a.lastRegistered = username }))

	orders := services.NewOrderRecorder(st, log)
	a.shop = services.NewShop(orders, promo.NewEngine(promo.DefaultCatalog()), catalog.Default(), m, log)
	a.shop.SetListener(newConsoleListener(out))

	return a
}

// Run blocks in the REPL and ends the session when it returns.
func (a *App) Run(ctx context.Context) {
	defer a.shutdown(ctx)
	a.Root(ctx)
}

func (a *App) shutdown(ctx context.Context) {
	if err := a.store.EndSession(ctx); err != nil {
		a.log.Warn(ctx, "session not cleared", "error", err)
	}
	if a.closer != nil {
		if err := a.closer.Close(); err != nil {
			a.log.Warn(ctx, "database not closed cleanly", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}
