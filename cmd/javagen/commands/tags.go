package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/javagen/code/proto"
)

// TagsCmd prints the instruction tag table
var TagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the instruction tags",
	Long:  `Print every instruction tag with its value and category, in tag order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return pterm.DefaultTable.WithHasHeader().WithData(tagTable()).Render()
	},
}

func tagTable() pterm.TableData {
	data := pterm.TableData{{"Value", "Tag", "Category"}}
	for _, t := range proto.AllTags() {
		data = append(data, []string{
			fmt.Sprintf("%d", int32(t)),
			t.String(),
			proto.CategoryOf(t).String(),
		})
	}
	return data
}
