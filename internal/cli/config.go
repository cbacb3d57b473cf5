package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"forgeconf/internal/app"
	"forgeconf/internal/types"
)

type configOptions struct {
	PackageJSON string
	HookCommand string
	Format      string
}

func newConfigCommand() *cobra.Command {
	opts := configOptions{}
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Render the packaging framework configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfig(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.PackageJSON, "package-json", "", "package.json path (defaults to <project-dir>/package.json)")
	cmd.Flags().StringVar(&opts.HookCommand, "hook-command", "forgeconf", "Command the framework runs for lifecycle hooks")
	cmd.Flags().StringVar(&opts.Format, "format", string(types.OutputFormatJSON), "Output format (json or yaml)")
	_ = viper.BindPFlag("package_json", cmd.Flags().Lookup("package-json"))
	_ = viper.BindPFlag("hook_command", cmd.Flags().Lookup("hook-command"))
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	return cmd
}

func runConfig(ctx context.Context, cmd *cobra.Command, opts configOptions) error {
	service := newAppService()
	result, err := service.Config(ctx, app.ConfigRequest{
		Env:         readEnvironment(),
		ProjectDir:  viper.GetString("project_dir"),
		PackageJSON: resolveString(cmd, opts.PackageJSON, "package_json", "package-json"),
		HookCommand: resolveString(cmd, opts.HookCommand, "hook_command", "hook-command"),
		Format:      types.OutputFormat(resolveString(cmd, opts.Format, "format", "format")),
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(result.Rendered))
	return err
}
