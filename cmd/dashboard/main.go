package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"anoa.com/internfundraiser/internal/client"
	"anoa.com/internfundraiser/internal/config"
	"anoa.com/internfundraiser/internal/dashboard"
	applog "anoa.com/internfundraiser/pkg/logger"

	"go.uber.org/zap"
)

const defaultCurrency = "USD"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dashboard: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadClient()
	if err != nil {
		return err
	}

	view := flag.String("view", "all", "page to render: dashboard, leaderboard or all")
	email := flag.String("email", cfg.Email, "login email (DASHBOARD_EMAIL)")
	password := flag.String("password", cfg.Password, "login password (DASHBOARD_PASSWORD)")
	flag.Parse()

	switch *view {
	case "all", "dashboard", "leaderboard":
	default:
		return fmt.Errorf("unknown view %q", *view)
	}
	if *email == "" || *password == "" {
		flag.Usage()
		return errors.New("email and password are required")
	}

	logger := applog.New(cfg.AppEnv, cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := client.New(cfg, logger)
	session, err := api.SignIn(ctx, *email, *password)
	if err != nil {
		return err
	}
	logger.Debug("signed in",
		zap.String("email", session.Email),
		zap.Bool("local", session.Local),
		zap.Time("expires_at", session.ExpiresAt),
	)

	renderer := dashboard.NewRenderer(os.Stdout)
	currency := defaultCurrency

	if *view == "all" || *view == "dashboard" {
		res, err := api.LoadIntern(ctx)
		if err != nil {
			return err
		}
		if res.Intern.Currency != "" {
			currency = res.Intern.Currency
		}
		if err := renderer.RenderDashboard(res.Intern, res.Fallback); err != nil {
			return err
		}
		fmt.Println()
	}

	if *view == "all" || *view == "leaderboard" {
		res, err := api.LoadLeaderboard(ctx)
		if err != nil {
			return err
		}
		if err := renderer.RenderLeaderboard(res.Entries, currency, res.Fallback); err != nil {
			return err
		}
	}

	return nil
}
