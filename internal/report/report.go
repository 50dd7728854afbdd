// Package report renders recipes as plain text for the CLI.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"recipeview/internal/model"
	"recipeview/internal/nav"
)

// Generate renders the controller's current page. Verbose adds the page
// position and the resolved image path.
func Generate(c *nav.Controller, baseDir string, verbose bool) string {
	snap := c.Snapshot()

	var b strings.Builder
	b.WriteString(snap.Name + "\n")
	b.WriteString(strings.Repeat("=", len([]rune(snap.Name))) + "\n\n")
	b.WriteString(snap.PortionsText + "\n\n")
	b.WriteString(snap.IngredientsText + "\n")
	b.WriteString(snap.InstructionsText)

	if verbose {
		info := model.ResolveImage(baseDir, snap.Image)
		b.WriteString("\n")
		fmt.Fprintf(&b, "Page:       %d of %d (previous %s, next %s)\n",
			snap.Page, snap.Total, snap.PreviousLabel, labelOrNone(snap.NextLabel))
		fmt.Fprintf(&b, "Multiplier: %s\n", model.FormatQuantity(snap.Multiplier))
		if info.Exists {
			fmt.Fprintf(&b, "Image:      %s (%d bytes)\n", info.Path, info.Size)
		} else {
			fmt.Fprintf(&b, "Image:      %s %s\n", model.IconImageMissing, info.ErrorMsg)
		}
	}
	return b.String()
}

func labelOrNone(label string) string {
	if label == "" {
		return "none"
	}
	return label
}

// List renders every recipe as a table.
func List(recipes *model.Collection) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Name", "Portions", "Ingredients", "Steps", "Image"})

	for i, r := range recipes.All() {
		tw.AppendRow(table.Row{
			strconv.Itoa(i),
			r.Name,
			model.FormatQuantity(r.Portions),
			strconv.Itoa(len(r.Ingredients)),
			strconv.Itoa(len(r.Instructions)),
			r.Image,
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
