package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newBuildIDCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "build-id",
		Short: "Print the build identifier derived from WEBCORD_BUILD",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service := newAppService()
			_, err := fmt.Fprintln(cmd.OutOrStdout(), service.BuildID(readEnvironment()))
			return err
		},
	}
}

func newCommitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "commit",
		Short: "Print the commit the project is checked out at",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service := newAppService()
			commit, err := service.Commit(cmd.Context(), viper.GetString("project_dir"))
			if err != nil {
				return err
			}
			if commit == nil {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "null")
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), *commit)
			return err
		},
	}
}
