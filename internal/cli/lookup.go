package cli

import (
	"strconv"

	"github.com/ppiankov/legisearch/internal/model"
	"github.com/ppiankov/legisearch/internal/pipeline"
	"github.com/ppiankov/legisearch/internal/query"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var (
	lookupChamber  string
	lookupDistrict int
)

// lookupCmd represents a single non-interactive query
var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Print the legislator holding one seat",
	Long: `Lookup fetches the roster and prints the record for one seat.
A seat nobody holds is reported, not treated as an error.

Example:
  legisearch lookup --chamber H --district 5
  legisearch lookup -c senate -d 21`,
	Args: cobra.NoArgs,
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)

	lookupCmd.Flags().StringVarP(&lookupChamber, "chamber", "c", "", "chamber: H/house or S/senate")
	lookupCmd.Flags().IntVarP(&lookupDistrict, "district", "d", 0, "district number")
	_ = lookupCmd.MarkFlagRequired("chamber")
	_ = lookupCmd.MarkFlagRequired("district")
}

func runLookup(cmd *cobra.Command, args []string) error {
	chamber, err := model.ParseChamber(lookupChamber)
	if err != nil {
		return err
	}

	result, err := pipeline.NewPipeline(cfg).BuildRoster(cmd.Context(), nil)
	if err != nil {
		return eris.Wrap(err, "gather legislators")
	}

	return query.Render(cmd.OutOrStdout(), query.Lookup(result.Roster, chamber, strconv.Itoa(lookupDistrict)))
}
