package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli"
	"go.yaml.in/yaml/v3"

	"interview-scheduler/internal/app"
	"interview-scheduler/internal/application/dto"
	"interview-scheduler/internal/pkg/auth"
	"interview-scheduler/internal/pkg/config"
	appLogger "interview-scheduler/internal/pkg/logger"
)

const operator = "schedctl"

func newApp(out io.Writer) *cli.App {
	a := cli.NewApp()
	a.Name = "schedctl"
	a.HelpName = "schedctl"
	a.Usage = "operate the interview scheduler"
	a.UsageText = "schedctl <command> [arguments...]"
	a.Writer = out
	a.Commands = []cli.Command{
		{
			Name:   "sweep",
			Usage:  "send the reminders that are due now",
			Action: sweep,
		},
		{
			Name:   "token",
			Usage:  "mint a bearer token for an email",
			Action: token,
			Flags: []cli.Flag{
				cli.StringFlag{Name: "email, e", Usage: "email claim of the token"},
				cli.DurationFlag{Name: "ttl", Usage: "token lifetime", Value: 24 * time.Hour},
			},
		},
		{
			Name:  "policy",
			Usage: "inspect or change the scheduling policy",
			Subcommands: []cli.Command{
				{
					Name:   "show",
					Usage:  "print the current policy as YAML",
					Action: policyShow,
				},
				{
					Name:      "apply",
					Usage:     "apply a YAML settings update",
					ArgsUsage: "<file>",
					Action:    policyApply,
				},
			},
		},
	}
	return a
}

// withContainer loads the configuration and runs fn against wired services.
func withContainer(fn func(ctx context.Context, c *app.Container) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := appLogger.NewWriter(os.Stderr, cfg.LogLevel)
	ctx := context.Background()

	c, err := app.Build(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			log.Error("Error closing database", err)
		}
	}()
	return fn(ctx, c)
}

func sweep(ctx *cli.Context) error {
	return withContainer(func(rctx context.Context, c *app.Container) error {
		res, err := c.Reminder.RunSweep(rctx)
		if err != nil {
			return err
		}
		if res.Disabled {
			fmt.Fprintln(ctx.App.Writer, "reminders are disabled")
			return nil
		}
		fmt.Fprintf(ctx.App.Writer, "window %s .. %s: due=%d sent=%d suppressed=%d alreadySent=%d failed=%d\n",
			res.WindowStart.Format(time.RFC3339), res.WindowEnd.Format(time.RFC3339),
			res.Due, res.Sent, res.Suppressed, res.AlreadySent, res.Failed)
		return nil
	})
}

func token(ctx *cli.Context) error {
	email := ctx.String("email")
	if email == "" {
		return errors.New("--email is required")
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET is not set")
	}
	tok, err := auth.MakeToken(email, cfg.JWTSecret, ctx.Duration("ttl"))
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, tok)
	return nil
}

func policyShow(ctx *cli.Context) error {
	return withContainer(func(rctx context.Context, c *app.Container) error {
		p, err := c.Policy.GetPolicy(rctx)
		if err != nil {
			return err
		}
		return writeYAML(ctx.App.Writer, dto.ToPolicyDocument(p))
	})
}

func policyApply(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "" {
		return errors.New("policy file is required")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var req dto.UpdatePolicyRequest
	if err := yaml.Unmarshal(raw, &req); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return withContainer(func(rctx context.Context, c *app.Container) error {
		p, err := c.Policy.UpdatePolicy(rctx, operator, req)
		if err != nil {
			return err
		}
		return writeYAML(ctx.App.Writer, dto.ToPolicyDocument(p))
	})
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
