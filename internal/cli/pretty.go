package cli

import (
	"fmt"

	"github.com/gosuri/uitable"
)

func header(text string) string {
	return fmt.Sprintf("%s %s", green("==>"), bold(text))
}

func newTable() *uitable.Table {
	table := uitable.New()
	table.MaxColWidth = 72
	table.Wrap = true
	return table
}
