// Command proposal-server serves voice logs and their proposals over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	proposal "github.com/alnah/go-proposal"
	"github.com/alnah/go-proposal/internal/config"
	"github.com/alnah/go-proposal/internal/fileutil"
	"github.com/alnah/go-proposal/internal/hints"
	"github.com/alnah/go-proposal/internal/logger"
	"github.com/alnah/go-proposal/internal/server"
	"github.com/alnah/go-proposal/internal/store"
)

// Version is set at build time via ldflags.
var Version = "dev"

const (
	dotenvFile      = ".env"
	shutdownTimeout = 10 * time.Second
	readHeaderLimit = 10 * time.Second
)

// serverFlags holds command-line flags. Flags win over the environment.
type serverFlags struct {
	config  string
	memory  bool
	seed    bool
	port    string
	version bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run starts the server and blocks until it stops. It returns the process
// exit code.
func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("proposal-server", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var f serverFlags
	fs.StringVarP(&f.config, "config", "c", "", "proposal config file name or path")
	fs.BoolVar(&f.memory, "memory", false, "keep voice logs in memory instead of PostgreSQL")
	fs.BoolVar(&f.seed, "seed", false, "insert demo voice logs into an empty store")
	fs.StringVarP(&f.port, "port", "p", "", "listen port (default $PORT or 8080)")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}
	if f.version {
		fmt.Fprintf(stderr, "proposal-server %s\n", Version)
		return 0
	}

	dotenvErr := loadDotenv()

	cfg, err := loadServerConfig(os.Getenv)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	applyFlags(&f, cfg)

	log := logger.New(cfg.LogLevel, cfg.LogFormat, stderr)
	if dotenvErr != nil {
		log.WithError(dotenvErr).Warn("could not load .env")
	}
	if _, err := maxprocs.Set(maxprocs.Logger(log.Debugf)); err != nil {
		log.WithError(err).Warn("could not set GOMAXPROCS")
	}
	if log.IsLevelEnabled(logrus.DebugLevel) {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, f.memory, log)
	if err != nil {
		log.WithError(err).Error("startup failed")
		return 1
	}
	defer a.close()

	if err := serve(ctx, a.handler, cfg.Port, log); err != nil {
		log.WithError(err).Error("server stopped")
		return 1
	}
	return 0
}

// loadDotenv loads .env from the working directory when present.
func loadDotenv() error {
	if !fileutil.FileExists(dotenvFile) {
		return nil
	}
	return godotenv.Load(dotenvFile)
}

func applyFlags(f *serverFlags, cfg *serverConfig) {
	if f.config != "" {
		cfg.ConfigPath = f.config
	}
	if f.port != "" {
		cfg.Port = f.port
	}
	if f.seed {
		cfg.Seed = true
	}
}

// app is the assembled service.
type app struct {
	handler http.Handler
	close   func()
}

// newApp opens the store, seeds it on request and builds the HTTP handler.
func newApp(ctx context.Context, cfg *serverConfig, memory bool, log *logrus.Logger) (*app, error) {
	genCfg := config.DefaultConfig()
	if cfg.ConfigPath != "" {
		var err error
		if genCfg, err = config.LoadConfig(cfg.ConfigPath); err != nil {
			return nil, fmt.Errorf("loading proposal config: %w", err)
		}
	}

	st, closeStore, err := openStore(ctx, cfg, memory, log)
	if err != nil {
		return nil, err
	}

	if cfg.Seed {
		n, err := store.Seed(ctx, st, time.Now())
		if err != nil {
			closeStore()
			return nil, fmt.Errorf("seeding: %w", err)
		}
		log.WithField("added", n).Info("seed complete")
	}

	pool, err := proposal.NewGeneratorPool(proposal.ResolvePoolSize(cfg.Workers), genCfg.GeneratorOptions(time.Now, cfg.Timeout)...)
	if err != nil {
		closeStore()
		return nil, fmt.Errorf("creating generator pool: %w", err)
	}
	log.WithField("workers", pool.Size()).Info("generator pool ready")

	if cfg.APIKey == "" {
		log.Warn("PROPOSAL_API_KEY is not set; the webhook rejects every request")
	}

	srv := server.New(server.Config{
		APIKey:     cfg.APIKey,
		RateLimit:  cfg.RateLimit,
		RatePeriod: cfg.RatePeriod,
	}, st, pool, log)

	return &app{
		handler: srv.Router(),
		close: func() {
			_ = pool.Close()
			closeStore()
		},
	}, nil
}

// openStore returns the memory store or connects to PostgreSQL.
func openStore(ctx context.Context, cfg *serverConfig, memory bool, log logrus.FieldLogger) (store.Store, func(), error) {
	if memory {
		log.Info("using in-memory store")
		return store.NewMemoryStore(), func() {}, nil
	}
	if cfg.DatabaseURL == "" {
		return nil, nil, fmt.Errorf("no database configured%s", hints.ForDatabaseConnect(""))
	}

	db, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("%w%s", err, hints.ForDatabaseConnect(cfg.DatabaseURL))
	}
	pg := store.NewPostgresStore(db)
	if err := pg.EnsureSchema(ctx); err != nil {
		_ = pg.Close()
		return nil, nil, err
	}
	log.Info("connected to PostgreSQL")

	return pg, func() {
		if err := pg.Close(); err != nil {
			log.WithError(err).Warn("closing database")
		}
	}, nil
}

// serve runs the HTTP server until ctx is done, then shuts it down.
func serve(ctx context.Context, handler http.Handler, port string, log logrus.FieldLogger) error {
	srv := &http.Server{
		Addr:              net.JoinHostPort("", port),
		Handler:           handler,
		ReadHeaderTimeout: readHeaderLimit,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
