package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	apperrors "event-voting-backend/internal/errors"
	"event-voting-backend/internal/logger"
	"event-voting-backend/internal/service"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// SeedFile is the YAML layout accepted by votectl seed
type SeedFile struct {
	Projects []service.CreateProjectRequest `yaml:"projects"`
}

// SeedResult counts what a seed run did
type SeedResult struct {
	Created int
	Skipped int
}

type projectCreator interface {
	Create(ctx context.Context, req *service.CreateProjectRequest, actor service.Actor) (*service.ProjectResponse, error)
}

func NewSeedCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Register projects from a YAML file",
		Long:  "Creates every project listed in the file. Projects that already exist are skipped.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := loadSeedFile(file)
			if err != nil {
				return err
			}

			a, err := openApp(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := seedProjects(cmd.Context(), a.projects, projects)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %d projects, skipped %d existing\n", result.Created, result.Skipped)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "data/projects.yaml", "YAML file with a projects list")
	return cmd
}

func loadSeedFile(path string) ([]service.CreateProjectRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()
	return parseSeed(f)
}

func parseSeed(r io.Reader) ([]service.CreateProjectRequest, error) {
	var seed SeedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("seed file is empty")
		}
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return seed.Projects, nil
}

// seedProjects creates each project in order and stops at the first error
// other than an existing project.
func seedProjects(ctx context.Context, creator projectCreator, projects []service.CreateProjectRequest) (SeedResult, error) {
	var result SeedResult
	for i := range projects {
		req := projects[i]
		if _, err := creator.Create(ctx, &req, cliActor); err != nil {
			if errors.Is(err, apperrors.ErrProjectExists) {
				logger.New().WithField("team_number", req.TeamNumber).Info("Project already exists, skipping")
				result.Skipped++
				continue
			}
			return result, fmt.Errorf("project %d (%s): %w", i+1, req.TeamNumber, err)
		}
		result.Created++
	}
	return result, nil
}
