package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/tessella/tessella/pkg/pattern"
)

// newGroupsCmd creates the groups command, which lists the 17 wallpaper
// groups with their symmetry descriptions.
func newGroupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List the supported wallpaper groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(groupsTable())
			return nil
		},
	}
}

// groupsTable renders the group listing as a bordered lipgloss table.
func groupsTable() string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	rows := make([][]string, 0, len(pattern.Groups))
	for _, g := range pattern.Groups {
		rows = append(rows, []string{string(g), g.Describe()})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Group", "Symmetries").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleHighlight.PaddingRight(1)
			}
			return StyleValue
		})

	return t.String()
}
