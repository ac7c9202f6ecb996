package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nhle/todo/internal/app"
	"github.com/nhle/todo/internal/model"
)

func (r *runner) addCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add [message]",
		Short: "Add a new task",
		Long: "Add a new task. Quote messages that contain spaces.\n" +
			"Without a message, an interactive prompt is shown when stdin is a terminal.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var message string
			if len(args) == 1 {
				message = args[0]
			} else {
				m, err := r.promptMessage(cmd)
				if err != nil {
					return err
				}
				message = m
			}
			return r.dispatch(cmd, app.Command{Kind: app.CommandAdd, Message: message})
		},
	}
}

func (r *runner) promptMessage(cmd *cobra.Command) (string, error) {
	if r.deps.Interactive == nil || r.deps.PromptMessage == nil || !r.deps.Interactive() {
		return "", errors.New("add requires a message")
	}
	return r.deps.PromptMessage(cmd.Context())
}

func (r *runner) listCommand() *cobra.Command {
	var completed bool
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.dispatch(cmd, app.Command{Kind: app.CommandList, CompletedOnly: completed})
		},
	}
	cmd.Flags().BoolVarP(&completed, "completed", "c", false, "show only completed tasks")
	return cmd
}

func (r *runner) doneCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task as done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return r.dispatch(cmd, app.Command{Kind: app.CommandDone, ID: id})
		},
	}
}

func (r *runner) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return r.dispatch(cmd, app.Command{Kind: app.CommandDelete, ID: id})
		},
	}
}

func (r *runner) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := os.Stat(r.configPath); err == nil && !force {
				return fmt.Errorf("config %s already exists (use --force to overwrite)", r.configPath)
			}
			if err := model.SaveConfig(r.configPath, model.DefaultAppConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", r.configPath)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file and database locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "config:   %s\ndatabase: %s\n", r.configPath, r.dbPath)
			return nil
		},
	}

	cmd.AddCommand(initCmd, pathCmd)
	return cmd
}
