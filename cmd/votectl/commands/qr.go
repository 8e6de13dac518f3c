package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"event-voting-backend/internal/service"

	"github.com/spf13/cobra"
)

type qrSource interface {
	List(ctx context.Context) ([]service.ProjectResponse, error)
	QRCode(ctx context.Context, id string) ([]byte, error)
}

func NewQRCommand() *cobra.Command {
	qrCmd := &cobra.Command{
		Use:   "qr",
		Short: "Project QR codes",
	}
	qrCmd.AddCommand(newQRExportCommand())
	return qrCmd
}

func newQRExportCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write <projectId>.png for every project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer a.Close()

			written, err := exportQRCodes(cmd.Context(), a.projects, out)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d QR codes to %s\n", written, out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "qr", "output directory")
	return cmd
}

func exportQRCodes(ctx context.Context, source qrSource, dir string) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	projects, err := source.List(ctx)
	if err != nil {
		return 0, err
	}

	written := 0
	for _, p := range projects {
		png, err := source.QRCode(ctx, p.ID)
		if err != nil {
			return written, fmt.Errorf("project %s: %w", p.ID, err)
		}
		if err := os.WriteFile(filepath.Join(dir, qrFileName(p.ID)), png, 0o644); err != nil {
			return written, fmt.Errorf("failed to write QR code for %s: %w", p.ID, err)
		}
		written++
	}
	return written, nil
}

// Team numbers are free text
var fileNameReplacer = strings.NewReplacer("/", "_", "\\", "_")

func qrFileName(id string) string {
	return fileNameReplacer.Replace(id) + ".png"
}
