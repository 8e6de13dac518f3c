package commands

import (
	"fmt"
	"io"

	"event-voting-backend/internal/service"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
)

func renderReport(w io.Writer, report *service.VoteReport) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Team", "Project", "Department", "Sector", "Voter", "Score", "Device", "Submitted"})
	tw.AppendRows(lo.Map(report.Votes, func(v service.VoteView, _ int) table.Row {
		return table.Row{
			v.TeamNumber,
			text.Trim(v.ProjectTitle, 40),
			v.Department,
			v.Sector,
			v.VoterName,
			v.Score,
			shortHash(v.DeviceHash),
			v.CreatedAt,
		}
	}))
	tw.AppendFooter(table.Row{
		"", "", "", "",
		fmt.Sprintf("count %d", report.Stats.Count),
		report.Stats.TotalScore,
		fmt.Sprintf("avg %.2f", report.Stats.AverageScore),
		"",
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 6, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})
	tw.Render()
}

func renderStatus(w io.Writer, status *service.DatabaseStatus) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendRows([]table.Row{
		{"Schema version", status.SchemaVersion},
		{"Dirty", status.Dirty},
		{"Projects", status.Projects},
		{"Devices", status.Devices},
		{"Votes", status.Votes},
	})
	tw.Render()
}

func shortHash(hash string) string {
	if len(hash) <= 12 {
		return hash
	}
	return hash[:12] + "..."
}
