package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Refresh the cached catalog unconditionally",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			stop := withSpinner(cmd.Context(), "Fetching the full catalog...")
			state, err := a.engine.Latest(cmd.Context())
			stop()
			if err != nil {
				return err
			}

			if err := a.engine.UpdateCache(state); err != nil {
				return err
			}

			fmt.Printf("%s Cached %s formulae and %s casks\n",
				green("✓"), bold(state.Formulae.All.Len()), bold(state.Casks.All.Len()))
			return nil
		},
	}
}
