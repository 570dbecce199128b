// ratcycle - switch a mouse to its next firmware profile.
// Drives ratbagctl and reports the outcome through a desktop notification.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lazyvibe/ratcycle/internal/app"
	"github.com/lazyvibe/ratcycle/internal/cycler"
	"github.com/spf13/cobra"
)

const appName = "ratcycle"

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// newRootCmd builds the root command. The cycle's exit code is stored in code.
func newRootCmd(code *int) *cobra.Command {
	return &cobra.Command{
		Use:   appName,
		Short: "Cycle the connected mouse to its next enabled profile",
		Long: `ratcycle advances the single connected mouse to its next enabled
firmware profile using ratbagctl and announces the result with notify-send.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			*code = app.Run(cmd.Context(), app.Options{
				Getenv: os.Getenv,
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
			})
			return nil
		},
	}
}

func execute(args []string, stdout, stderr io.Writer) int {
	code := cycler.ExitOK
	cmd := newRootCmd(&code)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return cycler.ExitFailure
	}
	return code
}
