package cli

import (
	"fmt"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/teamcutter/brewer/internal/domain"
)

func newSearchCmd() *cobra.Command {
	var cask bool
	var show int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Fuzzy-search the catalog",
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

			var keys []string
			if cask {
				keys = state.Casks.All.Keys()
			} else {
				keys = state.Formulae.All.Keys()
			}

			matches := fuzzy.Find(args[0], keys)
			if len(matches) == 0 {
				fmt.Printf("%s No results found for %q\n", dim("○"), args[0])
				return nil
			}

			size := min(len(matches), show)

			fmt.Println(header(fmt.Sprintf("Showing %s of %s results for %q", green(size), green(len(matches)), args[0])))

			table := newTable()
			for _, m := range matches[:size] {
				if cask {
					c, _ := state.Casks.All.Get(m.Str)
					table.AddRow(caskLabel(state, c), c.Version, dim(c.Desc))
				} else {
					f, _ := state.Formulae.All.Get(m.Str)
					table.AddRow(formulaLabel(state, f), f.Versions.Stable, dim(f.Desc))
				}
			}
			fmt.Println(table)

			if len(matches) > size {
				fmt.Printf("%s %d more available, use %s to see all\n",
					dim("..."), len(matches)-size, cyan(fmt.Sprintf("--show %d", len(matches))))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&cask, "cask", false, "Search casks instead of formulae")
	cmd.Flags().IntVarP(&show, "show", "s", 25, "Show the first n results")
	return cmd
}

func formulaLabel(state *domain.State, f domain.Formula) string {
	if _, ok := state.Formulae.Installed.Get(f.Name); ok {
		return bold(f.Name) + " " + green("✓")
	}
	return bold(f.Name)
}

func caskLabel(state *domain.State, c domain.Cask) string {
	if _, ok := state.Casks.Installed.Get(c.Token); ok {
		return bold(c.Token) + " " + green("✓")
	}
	return bold(c.Token)
}
