package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teamcutter/brewer/internal/domain"
)

func newInfoCmd() *cobra.Command {
	var cask bool

	cmd := &cobra.Command{
		Use:   "info <name>",
		Short: "Show catalog and install details for one unit",
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

			if cask {
				return caskInfo(state, args[0])
			}
			return formulaInfo(state, args[0])
		},
	}

	cmd.Flags().BoolVar(&cask, "cask", false, "Look up a cask instead of a formula")
	return cmd
}

func formulaInfo(state *domain.State, name string) error {
	f, ok := state.Formulae.All.Get(name)
	if !ok {
		// Aliases and old names resolve too.
		for _, candidate := range state.Formulae.All {
			if candidate.Aliases.Contains(name) || candidate.OldNames.Contains(name) {
				f, ok = candidate, true
				break
			}
		}
	}
	if !ok {
		return fmt.Errorf("formula %q not found", name)
	}

	fmt.Println(header(fmt.Sprintf("%s %s", bold(f.Name), f.Versions.Stable)))

	table := newTable()
	table.AddRow(cyan("tap:"), f.Tap)
	table.AddRow(cyan("desc:"), f.Desc)
	table.AddRow(cyan("homepage:"), dim(f.Homepage))
	if f.Versions.Head != "" {
		table.AddRow(cyan("head:"), f.Versions.Head)
	}
	if len(f.Dependencies) > 0 {
		table.AddRow(cyan("depends on:"), strings.Join(f.Dependencies, ", "))
	}
	if len(f.BuildDependencies) > 0 {
		table.AddRow(cyan("build deps:"), strings.Join(f.BuildDependencies, ", "))
	}
	if f.Aliases.Len() > 0 {
		table.AddRow(cyan("aliases:"), strings.Join(f.Aliases.Slice(), ", "))
	}
	if f.Executables.Len() > 0 {
		table.AddRow(cyan("executables:"), strings.Join(f.Executables.Slice(), ", "))
	}
	if f.Analytics != nil {
		table.AddRow(cyan("installs (30d):"), fmt.Sprintf("%d", f.Analytics.Install30d))
	}
	if f.Deprecated {
		table.AddRow(yellow("deprecated:"), "yes")
	}
	if f.Disabled {
		table.AddRow(red("disabled:"), "yes")
	}

	if installed, ok := state.Formulae.Installed.Get(f.Name); ok {
		status := fmt.Sprintf("%s %s", green("✓"), installed.Receipt.Source.Version())
		if installed.Receipt.InstalledAsDependency {
			status += " " + dim("(as dependency)")
		}
		table.AddRow(cyan("installed:"), status)
	} else {
		table.AddRow(cyan("installed:"), dim("no"))
	}

	fmt.Println(table)
	return nil
}

func caskInfo(state *domain.State, token string) error {
	c, ok := state.Casks.All.Get(token)
	if !ok {
		return fmt.Errorf("cask %q not found", token)
	}

	fmt.Println(header(fmt.Sprintf("%s %s", bold(c.Token), c.Version)))

	table := newTable()
	table.AddRow(cyan("tap:"), c.Tap)
	if c.Names.Len() > 0 {
		table.AddRow(cyan("name:"), strings.Join(c.Names.Slice(), ", "))
	}
	table.AddRow(cyan("desc:"), c.Desc)
	table.AddRow(cyan("homepage:"), dim(c.Homepage))
	if len(c.Dependencies) > 0 {
		table.AddRow(cyan("depends on:"), strings.Join(c.Dependencies, ", "))
	}
	if c.Deprecated {
		table.AddRow(yellow("deprecated:"), "yes")
	}
	if c.Disabled {
		table.AddRow(red("disabled:"), "yes")
	}

	if installed, ok := state.Casks.Installed.Get(c.Token); ok {
		table.AddRow(cyan("installed:"), fmt.Sprintf("%s %s", green("✓"), strings.Join(installed.Versions.Slice(), ", ")))
	} else {
		table.AddRow(cyan("installed:"), dim("no"))
	}

	fmt.Println(table)
	return nil
}
