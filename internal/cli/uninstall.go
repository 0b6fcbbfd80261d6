package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUninstallCmd() *cobra.Command {
	var cask bool

	cmd := &cobra.Command{
		Use:   "uninstall <name>...",
		Short: "Uninstall formulae or casks through brew",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			state, err := a.currentState(cmd.Context())
			if err != nil {
				return err
			}

			kegs, err := resolveKegs(state, args, cask)
			if err != nil {
				return err
			}

			var failed int
			for _, keg := range kegs {
				if err := a.brew.Uninstall(cmd.Context(), keg); err != nil {
					fmt.Printf("%s %s: %v\n", red("✗"), keg.Key(), err)
					failed++
					continue
				}
				fmt.Printf("%s %s\n", green("✓"), bold(keg.Key()))
			}

			if failed > 0 {
				return fmt.Errorf("failed to uninstall %d unit(s)", failed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&cask, "cask", false, "Uninstall casks")
	return cmd
}
