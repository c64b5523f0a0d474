package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muurk/catalog/internal/config"
	"github.com/muurk/catalog/internal/ui"
)

func newConfigCmd(global *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the preferences file",
		Long: `Create and inspect the preferences file.

Preferences set the page size, search delay, starting layout, price
formatting and an optional seed file. Command-line flags override them.`,
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a preferences file with default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(global)
			if err != nil {
				return err
			}

			if force {
				err = config.NewPreferences().SaveTo(path)
			} else {
				err = config.CreateDefaultConfig(path)
			}
			if err != nil {
				return fmt.Errorf("failed to write preferences: %w", err)
			}

			ui.NewPrinter(cmd.OutOrStdout()).PrintResult(
				ui.NewSuccessResult("Preferences written", ui.Param{Key: "Path", Value: path}),
			)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(global)
			if err != nil {
				return err
			}

			s, err := loadSettings(cmd, global)
			if err != nil {
				return err
			}

			data, err := config.Marshal(s.prefs)
			if err != nil {
				return err
			}

			p := ui.NewPrinter(cmd.OutOrStdout())
			p.PrintHeader("Preferences", cmd.CommandPath(), ui.Param{Key: "File", Value: path})
			p.Print(string(data))
			return nil
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the preferences file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(global)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.AddCommand(initCmd, showCmd, pathCmd)
	return cmd
}

func configPath(global *globalFlags) (string, error) {
	if global.configPath != "" {
		return global.configPath, nil
	}
	path, err := config.GetConfigPath()
	if err != nil {
		return "", fmt.Errorf("failed to get config path: %w", err)
	}
	return path, nil
}
