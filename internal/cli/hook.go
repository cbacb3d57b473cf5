package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"forgeconf/internal/app"
	"forgeconf/internal/types"
)

// hookOptions mirrors the (path, electronVersion, platform) arguments the
// packaging framework hands to its lifecycle hooks.
type hookOptions struct {
	Path            string
	ElectronVersion string
	Platform        string
}

func newHookCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hook",
		Short: "Run packaging lifecycle hooks",
	}
	cmd.AddCommand(newAfterCopyCommand())
	cmd.AddCommand(newAfterExtractCommand())
	return cmd
}

func newAfterCopyCommand() *cobra.Command {
	opts := hookOptions{}
	cmd := &cobra.Command{
		Use:   "after-copy",
		Short: "Write buildInfo.json and drop unused platform data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAfterCopy(cmd.Context(), opts)
		},
	}
	bindHookFlags(cmd, &opts)
	return cmd
}

func newAfterExtractCommand() *cobra.Command {
	opts := hookOptions{}
	cmd := &cobra.Command{
		Use:   "after-extract",
		Short: "Flip fuses of the extracted Electron runtime",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAfterExtract(cmd.Context(), opts)
		},
	}
	bindHookFlags(cmd, &opts)
	return cmd
}

func bindHookFlags(cmd *cobra.Command, opts *hookOptions) {
	cmd.Flags().StringVar(&opts.Path, "path", "", "Packaged app or extracted runtime directory")
	cmd.Flags().StringVar(&opts.ElectronVersion, "electron-version", "", "Electron version being packaged")
	cmd.Flags().StringVar(&opts.Platform, "platform", "", "Target platform (darwin, mas, win32, linux)")
	_ = cmd.MarkFlagRequired("path")
	_ = cmd.MarkFlagRequired("platform")
}

func runAfterCopy(ctx context.Context, opts hookOptions) error {
	service := newAppService()
	result, err := service.AfterCopy(ctx, app.AfterCopyRequest{
		Env:             readEnvironment(),
		ProjectDir:      viper.GetString("project_dir"),
		AppPath:         opts.Path,
		ElectronVersion: opts.ElectronVersion,
		Platform:        types.Platform(opts.Platform),
	})
	if err != nil {
		return err
	}
	fmt.Printf("build info written: type=%s\n", result.BuildInfo.Type)
	return nil
}

func runAfterExtract(ctx context.Context, opts hookOptions) error {
	service := newAppService()
	result, err := service.AfterExtract(ctx, app.AfterExtractRequest{
		Env:             readEnvironment(),
		ExtractPath:     opts.Path,
		ElectronVersion: opts.ElectronVersion,
		Platform:        types.Platform(opts.Platform),
	})
	if err != nil {
		return err
	}
	fmt.Printf("fuses flipped: %s\n", result.Executable)
	return nil
}
