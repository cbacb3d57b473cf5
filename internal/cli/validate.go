package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"forgeconf/internal/app"
)

type validateOptions struct {
	PackageJSON string
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate package metadata used by the makers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.PackageJSON, "package-json", "", "package.json path (defaults to <project-dir>/package.json)")
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, opts validateOptions) error {
	path := opts.PackageJSON
	if !flagChanged(cmd, "package-json") {
		path = filepath.Join(viper.GetString("project_dir"), "package.json")
	}
	service := newAppService()
	result, err := service.Validate(ctx, app.ValidateRequest{PackageJSON: path})
	if err != nil {
		return err
	}
	fmt.Printf("validated: %s %s\n", result.PackageName, result.Version)
	return nil
}
