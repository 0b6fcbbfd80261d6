package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/teamcutter/brewer/internal/domain"
)

func newWhichCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "which <executable>",
		Short: "Locate the formulae which provide the given executable",
		Args:  cobra.ExactArgs(1),
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

			executable := args[0]

			var hits []domain.Formula
			for _, f := range state.Formulae.All {
				if f.Executables.Contains(executable) {
					hits = append(hits, f)
				}
			}

			if len(hits) == 0 {
				return fmt.Errorf("no formula provides %q", executable)
			}

			sort.Slice(hits, func(i, j int) bool { return hits[i].Name < hits[j].Name })

			fmt.Println(header(fmt.Sprintf("Formulae providing %s", bold(executable))))

			table := newTable()
			for _, f := range hits {
				name := f.Name
				if _, ok := state.Formulae.Installed.Get(f.Name); ok {
					name += " " + green("✓")
				}
				table.AddRow(name, f.Versions.Stable, dim(f.Desc))
			}
			fmt.Println(table)

			return nil
		},
	}
}
