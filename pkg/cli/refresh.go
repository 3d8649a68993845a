package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ecotrack/pkg/cli/config"
	"github.com/secmon-lab/ecotrack/pkg/domain/types"
	"github.com/secmon-lab/ecotrack/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// ErrAllEndpointsFailed is returned by the refresh command when no endpoint answered
var ErrAllEndpointsFailed = goerr.New("all endpoints failed")

func cmdRefresh() *cli.Command {
	var (
		backendCfg   config.Backend
		dashboardCfg config.Dashboard
	)

	return &cli.Command{
		Name:  "refresh",
		Usage: "Run a single refresh cycle and print its summary",
		Flags: joinFlags(backendCfg.Flags(), dashboardCfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctxlog.From(ctx).Debug("Running refresh",
				slog.Any("backend", backendCfg),
				slog.Any("dashboard", dashboardCfg),
			)

			deps, err := buildApp(&backendCfg, &dashboardCfg)
			if err != nil {
				return err
			}
			defer deps.registry.Close()

			result := deps.loader().RefreshAll(ctx)
			printRefreshResult(c.Root().Writer, result, deps.renderer)

			if result.AllFailed() {
				return goerr.Wrap(ErrAllEndpointsFailed, "refresh failed",
					goerr.V("cycle_id", result.CycleID))
			}
			return nil
		},
	}
}

func printRefreshResult(w io.Writer, result *usecase.RefreshResult, dashboard usecase.DashboardReader) {
	fmt.Fprintf(w, "cycle %s (%s)\n", result.CycleID, result.FinishedAt.Sub(result.StartedAt))

	for _, ep := range result.Succeeded {
		fmt.Fprintf(w, "  ok     %s\n", ep)
	}

	failed := make([]types.Endpoint, 0, len(result.Failed))
	for ep := range result.Failed {
		failed = append(failed, ep)
	}
	sort.Slice(failed, func(i, j int) bool { return failed[i] < failed[j] })
	for _, ep := range failed {
		fmt.Fprintf(w, "  failed %s: %s\n", ep, result.Failed[ep])
	}

	counters := dashboard.Snapshot().Counters
	fmt.Fprintf(w, "total=%d pending=%d resolved=%d critical=%d\n",
		counters.TotalReports, counters.PendingReports, counters.ResolvedReports, counters.CriticalReports)
}
