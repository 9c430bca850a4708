package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/krau/assetlist/output"
	"github.com/krau/assetlist/pkg/assettypes"
	"github.com/krau/assetlist/pkg/enums/format"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	sizeStyle   = cellStyle.Align(lipgloss.Right)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Print the asset listing",
		RunE:    runList,
	}
	cmd.Flags().Bool("json", false, "print the listing as JSON")
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	l, err := newLister()
	if err != nil {
		return err
	}
	descs, err := l.List(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return output.Encode(out, format.JSON, descs)
	}
	fmt.Fprintln(out, renderTable(descs))
	fmt.Fprintf(out, "%d assets, %s\n", len(descs), humanize.IBytes(uint64(assettypes.TotalSize(descs))))
	return nil
}

func renderTable(descs []assettypes.FileDescriptor) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("NAME", "SIZE", "PATH").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1:
				return sizeStyle
			default:
				return cellStyle
			}
		})
	for _, d := range descs {
		t.Row(d.Name, humanize.IBytes(uint64(d.Size)), d.Path)
	}
	return t.String()
}
