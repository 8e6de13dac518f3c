package commands

import (
	"encoding/json"
	"fmt"

	"event-voting-backend/internal/service"

	"github.com/spf13/cobra"
)

func NewVotesCommand() *cobra.Command {
	votesCmd := &cobra.Command{
		Use:   "votes",
		Short: "Inspect recorded votes",
	}
	votesCmd.AddCommand(newVotesReportCommand())
	return votesCmd
}

func newVotesReportCommand() *cobra.Command {
	var (
		query  service.VoteQuery
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print filtered votes with count, total and average score",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer a.Close()

			report, err := a.reports.QueryVotes(cmd.Context(), &query, cliActor)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			renderReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&query.ProjectTitle, "title", "", "project title contains (case-insensitive)")
	flags.StringVar(&query.TeamNumber, "team", "", "exact team number")
	flags.StringVar(&query.Department, "department", "", "department contains (case-insensitive)")
	flags.StringVar(&query.Sector, "sector", "", "sector contains (case-insensitive)")
	flags.StringVar(&query.VoterName, "voter", "", "voter name contains (case-insensitive)")
	flags.StringVar(&query.MinScore, "min-score", "", fmt.Sprintf("minimum score (%d-%d)", service.MinScore, service.MaxScore))
	flags.StringVar(&query.MaxScore, "max-score", "", fmt.Sprintf("maximum score (%d-%d)", service.MinScore, service.MaxScore))
	flags.BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}
