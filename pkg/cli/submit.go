package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ecotrack/pkg/cli/config"
	"github.com/secmon-lab/ecotrack/pkg/domain/model"
	"github.com/secmon-lab/ecotrack/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// ErrReportRejected is returned by the submit command when the report was not accepted
var ErrReportRejected = goerr.New("report rejected")

func cmdSubmit() *cli.Command {
	var (
		backendCfg   config.Backend
		dashboardCfg config.Dashboard
		values       model.FormValues
	)

	formFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "title",
			Usage:       "Report title",
			Category:    "Report",
			Destination: &values.Title,
		},
		&cli.StringFlag{
			Name:        "description",
			Usage:       "Report description",
			Category:    "Report",
			Destination: &values.Description,
		},
		&cli.StringFlag{
			Name:        "category-id",
			Usage:       "Category ID",
			Category:    "Report",
			Destination: &values.CategoryID,
		},
		&cli.StringFlag{
			Name:        "location-id",
			Usage:       "Location ID (optional)",
			Category:    "Report",
			Destination: &values.LocationID,
		},
		&cli.StringFlag{
			Name:        "severity",
			Usage:       "Severity (low, medium, high, critical)",
			Category:    "Report",
			Value:       "medium",
			Destination: &values.Severity,
		},
	}

	return &cli.Command{
		Name:  "submit",
		Usage: "Submit an environmental issue report",
		Flags: joinFlags(formFlags, backendCfg.Flags(), dashboardCfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			deps, err := buildApp(&backendCfg, &dashboardCfg)
			if err != nil {
				return err
			}
			defer deps.registry.Close()

			state := usecase.NewSubmission(deps.client, nil).Submit(ctx, values)
			if state.Message != nil {
				fmt.Fprintln(c.Root().Writer, state.Message.Text)
			}

			if !state.Succeeded() {
				return goerr.Wrap(ErrReportRejected, "failed to submit report",
					goerr.V("failure", state.Failure))
			}
			return nil
		},
	}
}
