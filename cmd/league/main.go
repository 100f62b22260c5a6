package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	embedded "github.com/goserg/tennisleague"
	"github.com/goserg/tennisleague/internal/auth"
	"github.com/goserg/tennisleague/internal/config"
	"github.com/goserg/tennisleague/internal/logger"
	"github.com/goserg/tennisleague/internal/service"
	"github.com/goserg/tennisleague/internal/storage"
	"github.com/goserg/tennisleague/internal/storage/file"
	"github.com/goserg/tennisleague/internal/storage/sqlite"
)

var errUsage = errors.New("usage: league [-config path] [-password pw] <command> [args]")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	// .env is optional
	_ = godotenv.Load()

	fs := flag.NewFlagSet("league", flag.ContinueOnError)
	configPath := fs.String("config", config.DefaultPath, "path to the TOML config")
	password := fs.String("password", os.Getenv("LEAGUE_ADMIN_PASSWORD"), "admin password, empty for read-only access")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errUsage
	}
	name, cmdArgs := fs.Arg(0), fs.Args()[1:]

	if name == "hash-password" {
		return hashPassword(cmdArgs, out)
	}

	cfg, err := config.New(*configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	l := logger.New(cfg.Debug)

	sess, err := auth.NewGate(cfg.Admin.PasswordHash).Login(*password)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var backups storage.BackupStorage
	if cfg.Storage.SqliteFile != "" {
		b, err := sqlite.New(l, cfg.Storage.SqliteFile)
		if err != nil {
			return fmt.Errorf("backup storage: %w", err)
		}
		defer b.Close()
		backups = b
	}

	svc, err := service.New(ctx, l, file.New(l, cfg.Storage.StateFile, embedded.Seed), backups)
	if err != nil {
		return err
	}
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q\n%w", name, errUsage)
	}
	l.WithFields(logrus.Fields{"command": name, "role": sess.Role}).Debug("running command")
	return cmd(ctx, env{svc: svc, sess: sess, out: out}, cmdArgs)
}

func hashPassword(args []string, out io.Writer) error {
	if len(args) != 1 {
		return errors.New("usage: league hash-password <password>")
	}
	hash, err := auth.HashPassword(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(out, hash)
	return nil
}
