package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/ppiankov/legisearch/internal/model"
	"github.com/ppiankov/legisearch/internal/pipeline"
	"github.com/ppiankov/legisearch/internal/roster"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var listChamber string

// listCmd represents the roster table
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the roster as a table",
	Long: `List fetches the roster and prints every member, House first, ordered
by district.

Example:
  legisearch list
  legisearch list --chamber S`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listChamber, "chamber", "c", "", "only list one chamber (H or S)")
}

func runList(cmd *cobra.Command, args []string) error {
	chambers := model.Chambers
	if listChamber != "" {
		c, err := model.ParseChamber(listChamber)
		if err != nil {
			return err
		}
		chambers = []model.Chamber{c}
	}

	result, err := pipeline.NewPipeline(cfg).BuildRoster(cmd.Context(), nil)
	if err != nil {
		return eris.Wrap(err, "gather legislators")
	}

	renderTable(cmd.OutOrStdout(), result.Roster, chambers)
	if len(result.Skipped) > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d roster entries could not be parsed and are not listed\n", len(result.Skipped))
	}
	return nil
}

func renderTable(w io.Writer, r *roster.Roster, chambers []model.Chamber) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Chamber", "District", "Name", "Party", "Title", "Email", "Phone"})

	total := 0
	for _, c := range chambers {
		for _, leg := range r.Members(c) {
			t.AppendRow(table.Row{c, leg.District, leg.Name, leg.Party, leg.Title, leg.Email, leg.Phone})
			total++
		}
	}
	t.AppendFooter(table.Row{"", "", fmt.Sprintf("%d members", total)})
	t.Render()
}
