package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/chests/internal/command"
	"github.com/mesh-intelligence/chests/internal/store"
	"github.com/mesh-intelligence/chests/pkg/types"
)

// execOutput is the --json form of a command result.
type execOutput struct {
	Command string `json:"command"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

func newExecCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <command>",
		Short: "Run one inventory command",
		Long: `Exec parses and applies one command, saving the inventory if it changed.
Arguments are joined with spaces. Put "--" before commands that start with a
dash so they are not read as flags.

Example:
  chests exec 'UPD:B:01:5:(Diamond Sword, 1)'
  chests exec REM:B:01:5
  chests exec '~:A:03:0:(Oak Log, 64)'
  chests exec -- -:A:03:0`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			line := strings.Join(args, " ")
			return a.withInventory(func(st store.Store, inv *types.Inventory) error {
				res := command.Execute(line, inv)
				a.logger.Debug("command executed",
					zap.String("command", line), zap.Stringer("status", res.Status))

				if res.Changed() {
					if err := save(st, inv); err != nil {
						return err
					}
				}

				out := cmd.OutOrStdout()
				if a.flags.jsonMode {
					if err := printJSON(out, execOutput{Command: line, Status: res.Status.String(), Message: res.Message}); err != nil {
						return err
					}
				} else if res.Status != command.StatusFailed {
					fmt.Fprintln(out, res.Message)
				}

				if res.Status == command.StatusFailed {
					return &exitError{code: exitUserError, err: res.Err, reported: a.flags.jsonMode}
				}
				return nil
			})
		},
	}
}
