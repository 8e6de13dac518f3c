package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewCleanupCommand() *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete every vote, device and project",
		Long:  "Resets the event. Activity logs and the voting status are kept.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return fmt.Errorf("refusing to delete all voting data without --yes")
			}

			a, err := openApp(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer a.Close()

			summary, err := a.maintenance.Reset(cmd.Context(), cliActor)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d votes, %d devices, %d projects\n",
				summary.Votes, summary.Devices, summary.Projects)
			return nil
		},
	}
	cmd.Flags().BoolVar(&confirmed, "yes", false, "confirm the reset")
	return cmd
}
