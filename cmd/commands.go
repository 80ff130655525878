package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"egress/cmd/bootstrap"
	"egress/internal/handler/dto/response"
	"egress/internal/handler/middleware"
	"egress/internal/infra/db"
	"egress/internal/pkg/config"
	"egress/internal/pkg/jwt"
	"egress/internal/usecase/commands"
	"egress/internal/usecase/queries"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// withApp builds the non-HTTP part of the application, fills targets and
// keeps it running for the duration of run.
func withApp(ctx context.Context, run func() error, targets ...any) error {
	app := fx.New(
		bootstrap.Module,
		fx.NopLogger,
		fx.Decorate(func(_ *middleware.Logger, cfg config.Config) *middleware.Logger {
			return middleware.NewCLILogger(cfg.Log)
		}),
		fx.Populate(targets...),
	)
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			slog.Error("failed to stop application cleanly", "error", err)
		}
	}()
	return run()
}

func addDispatch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "dispatch",
		Short: "Run one dispatch pass and print the counts",
		Long:  "Run one dispatch pass. Intended for an external scheduler such as a Kubernetes CronJob.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var processor commands.DispatchCommands
			return withApp(cmd.Context(), func() error {
				res, err := processor.RunPass(cmd.Context())
				if err != nil {
					return err
				}
				printDispatchResult(res)
				return nil
			}, &processor)
		},
	}

	topLevel.AddCommand(cmd)
}

func printDispatchResult(res *commands.DispatchResult) {
	bold := color.New(color.Bold)
	failed := color.New(color.FgRed)
	if res.Failed == 0 {
		failed = color.New(color.Faint)
	}

	_, _ = fmt.Fprintln(color.Output, bold.Sprint(response.FromDispatchResult(res).Message))
	_, _ = fmt.Fprintf(color.Output, "  %s  %s  %s\n",
		color.GreenString("sent %d", res.Sent),
		failed.Sprintf("failed %d", res.Failed),
		color.YellowString("skipped %d", res.Skipped))
}

func addMigrate(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			middleware.NewCLILogger(cfg.Log)

			if err := db.RunMigrations(cmd.Context(), cfg.DB); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(color.Output, color.GreenString("%s schema is up to date", cfg.DB.Driver))
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

func addReminders(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "reminders",
		Short: "Inspect stored reminders",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List the most recently created reminders",
		Example: `
egress reminders list
egress reminders list --limit 50
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var q queries.ReminderQueries
			return withApp(cmd.Context(), func() error {
				views, err := q.ListRecent(cmd.Context(), limit)
				if err != nil {
					return err
				}
				printReminders(views)
				return nil
			}, &q)
		},
	}
	list.Flags().IntVarP(&limit, "limit", "n", queries.DefaultRecentLimit, "Number of reminders to show.")

	cmd.AddCommand(list)
	topLevel.AddCommand(cmd)
}

var statusColors = map[string]*color.Color{
	"pending":    color.New(color.FgYellow),
	"processing": color.New(color.FgCyan),
	"sent":       color.New(color.FgGreen),
	"failed":     color.New(color.FgRed),
	"cancelled":  color.New(color.Faint),
}

func printReminders(views []*queries.ReminderView) {
	if len(views) == 0 {
		_, _ = fmt.Fprintln(color.Output, color.New(color.Faint).Sprint("no reminders"))
		return
	}

	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	tbl.AddRow(
		bold.Sprint("ID"),
		bold.Sprint("SERVICE"),
		bold.Sprint("EMAIL"),
		bold.Sprint("STATUS"),
		bold.Sprint("TRIGGER"),
		bold.Sprint("READY"),
		bold.Sprint("MINUTES"),
	)
	for _, v := range views {
		status := v.Status
		if c, ok := statusColors[v.Status]; ok {
			status = c.Sprint(v.Status)
		}
		tbl.AddRow(
			v.ID.String()[:8],
			v.Service,
			v.Email,
			status,
			v.TriggerTimeLocal,
			strconv.FormatBool(v.IsReady),
			v.TimeUntilTriggerMinutes,
		)
	}
	tbl.RightAlign(6)

	_, _ = fmt.Fprintln(color.Output, tbl)
}

func addToken(topLevel *cobra.Command) {
	var caller string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a short-lived bearer token for the dispatch endpoint",
		Example: `
curl -H "Authorization: Bearer $(egress token --caller nightly)" https://egress.example.com/api/cron
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			token, err := jwt.NewService(cfg.Dispatch.CronSecret, cfg.Dispatch.TokenTTL).GenerateDispatchToken(caller)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().StringVar(&caller, "caller", "cli", "Caller name recorded in the token.")

	topLevel.AddCommand(cmd)
}
