package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teamcutter/brewer/internal/domain"
)

func newListCmd() *cobra.Command {
	var cask bool
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed formulae and casks",
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

			if cask {
				return listCasks(state.Casks.Installed)
			}
			return listFormulae(state.Formulae.Installed, all)
		},
	}

	cmd.Flags().BoolVar(&cask, "cask", false, "List installed casks")
	cmd.Flags().BoolVar(&all, "all", false, "Include formulae installed as dependencies")
	return cmd
}

func listFormulae(installed domain.Store[domain.InstalledFormula], all bool) error {
	var units []domain.InstalledFormula
	for _, f := range installed {
		if !all && !f.Receipt.InstalledOnRequest {
			continue
		}
		units = append(units, f)
	}

	if len(units) == 0 {
		fmt.Printf("%s No formulae installed\n", dim("○"))
		return nil
	}

	sort.Slice(units, func(i, j int) bool { return units[i].Upstream.Name < units[j].Upstream.Name })

	fmt.Println(header("Installed formulae"))

	table := newTable()
	for _, f := range units {
		name := bold(f.Upstream.Name)
		if f.Receipt.InstalledAsDependency {
			name = fmt.Sprintf("%s %s", bold(f.Upstream.Name), dim("(dependency)"))
		}
		table.AddRow(name, f.Receipt.Source.Version(), dim(f.Upstream.Desc))
	}
	fmt.Println(table)

	return nil
}

func listCasks(installed domain.Store[domain.InstalledCask]) error {
	var units []domain.InstalledCask
	for _, c := range installed {
		units = append(units, c)
	}

	if len(units) == 0 {
		fmt.Printf("%s No casks installed\n", dim("○"))
		return nil
	}

	sort.Slice(units, func(i, j int) bool { return units[i].Upstream.Token < units[j].Upstream.Token })

	fmt.Println(header("Installed casks"))

	table := newTable()
	for _, c := range units {
		table.AddRow(bold(c.Upstream.Token), strings.Join(c.Versions.Slice(), ", "), dim(c.Upstream.Desc))
	}
	fmt.Println(table)

	return nil
}
