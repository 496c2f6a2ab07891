package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"pcg_compliance/internal/adapter/http/dto/response"
	"pcg_compliance/internal/config"
	"pcg_compliance/internal/infrastructure/auth"
	"pcg_compliance/internal/infrastructure/logger"
	"pcg_compliance/internal/infrastructure/scheduler"
	"pcg_compliance/internal/infrastructure/wiring"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCommand()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "pcgctl: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pcgctl",
		Short: "PCG compliance operations CLI",
		Long: `pcgctl runs the daily compliance scheduler, replays a single company step
and issues development tokens. Configuration is read from the environment (and .env).`,
		SilenceUsage: true,
	}
	cmd.AddCommand(
		newSchedulerCmd(),
		newProcessCmd(),
		newTokenCmd(),
	)
	return cmd
}

func newSchedulerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scheduler",
		Short: "Run the daily compliance pass",
	}

	daemon := &cobra.Command{
		Use:   "daemon",
		Short: "Run the pass on SCHEDULER_CRON until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			runner := scheduler.NewRunner(c.SchedulerUseCase, c.Log, c.Config.SchedulerJobTimeout)
			if err := runner.Schedule(ctx, c.Config.SchedulerCron); err != nil {
				return err
			}
			runner.Start(ctx)
			return nil
		},
	}

	var at string
	runOnce := &cobra.Command{
		Use:   "run-once",
		Short: "Run a single pass over every enabled company",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			now, err := parseAt(at, time.Now())
			if err != nil {
				return err
			}
			c, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			runner := scheduler.NewRunner(c.SchedulerUseCase, c.Log, c.Config.SchedulerJobTimeout)
			report, err := runner.RunOnce(ctx, now)
			if err != nil {
				return err
			}
			for _, o := range report.Outcomes {
				if o.Err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\tFAILED\t%v\n", o.CompanyID, o.Err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", o.CompanyID, o.Result.PeriodID, describe(o.Result.Skipped, string(o.Result.Estado)))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "processed=%d skipped=%d failed=%d\n", report.Processed, report.Skipped, report.Failed)
			return nil
		},
	}
	runOnce.Flags().StringVar(&at, "at", "", "Instant to evaluate (RFC3339, default now)")

	cmd.AddCommand(daemon, runOnce)
	return cmd
}

func newProcessCmd() *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "process <companyId>",
		Short: "Run the period step for one company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			now, err := parseAt(at, time.Now())
			if err != nil {
				return err
			}
			c, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			res, err := c.PeriodUseCase.ProcessCompany(ctx, args[0], now)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), response.FromProcessResult(res))
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "Instant to evaluate (RFC3339, default now)")
	return cmd
}

func newTokenCmd() *cobra.Command {
	var (
		company string
		role    string
		sub     string
		uid     string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a signed bearer token for local testing",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, ok := auth.ParseRole(role)
			if !ok {
				return fmt.Errorf("unknown role %q", role)
			}
			if r == auth.RoleSubcontratista && strings.TrimSpace(sub) == "" {
				return fmt.Errorf("--sub is required for role %s", r)
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			v := auth.NewJWTValidator(cfg.JWTSecret, cfg.JWTIssuer)
			token, err := v.Issue(auth.Principal{
				UID:             uid,
				CompanyID:       company,
				Role:            r,
				SubcontractorID: sub,
			}, ttl, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&company, "company", "", "Company id")
	cmd.Flags().StringVar(&role, "role", string(auth.RoleAdmin), "admin, revisor or subcontratista")
	cmd.Flags().StringVar(&sub, "sub", "", "Subcontractor id (subcontratista only)")
	cmd.Flags().StringVar(&uid, "uid", "dev-user", "Subject uid")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "Token lifetime")
	_ = cmd.MarkFlagRequired("company")
	return cmd
}

func bootstrap(ctx context.Context) (*wiring.Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	lg := logger.New(cfg.LogLevel, cfg.Env, os.Stderr)
	return wiring.Build(ctx, cfg, lg)
}

func parseAt(v string, now time.Time) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return now.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --at %q: want RFC3339", v)
	}
	return t.UTC(), nil
}

func describe(skipped bool, estado string) string {
	if skipped {
		return "skipped"
	}
	return estado
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
