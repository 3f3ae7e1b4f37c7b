package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/spec-kit/autoassess-client/internal/config"
	"github.com/spec-kit/autoassess-client/internal/credstore"
	"github.com/spec-kit/autoassess-client/internal/gateway"
	"github.com/spec-kit/autoassess-client/internal/guard"
	"github.com/spec-kit/autoassess-client/internal/observability"
	"github.com/spec-kit/autoassess-client/internal/session"
)

const teacherLoginTarget = "autoassess teacher login"

var errHelp = errors.New("help provided")

type commandLine struct {
	cfg     *config.Config
	client  *gateway.Client
	store   credstore.Store
	session *session.Session
	guard   *guard.Guard
	logger  *zap.Logger
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	store, closeStore := newStore(cfg, logger)
	defer closeStore()

	metrics := observability.NewMetrics()
	client := gateway.New(cfg.API, cfg.Auth, gateway.Deps{
		Credentials: store,
		Metrics:     metrics,
		Logger:      logger,
	})

	sess := session.New(ctx, store, logger)

	cli := &commandLine{
		cfg:     cfg,
		client:  client,
		store:   store,
		session: sess,
		guard:   guard.New(sess, teacherLoginTarget),
		logger:  logger,
	}

	if err := cli.run(ctx, os.Args); err != nil {
		if !errors.Is(err, errHelp) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func newStore(cfg *config.Config, logger *zap.Logger) (credstore.Store, func()) {
	switch cfg.Credentials.Backend {
	case "redis":
		store := credstore.NewRedisStore(cfg.Redis, cfg.App.Name, logger)
		return store, store.Close
	case "memory":
		return credstore.NewMemoryStore(), func() {}
	default:
		return credstore.NewFileStore(cfg.Credentials.File, logger), func() {}
	}
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  autoassess teacher <login|logout|status|generate|generate-text|generate-file|packages|assignments|create-assignment|results|release|analyze|codes|stats>")
	fmt.Println("  autoassess student <login|assignments|assignment|run|submit|result|analyze|profile|update-profile|change-dob>")
}

func (cli *commandLine) run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "teacher":
		return cli.runTeacher(ctx, args[2:])
	case "student":
		return cli.runStudent(ctx, args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
