package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ramsey-systems/goramsey/goramsey"
	"github.com/ramsey-systems/goramsey/libramsey"
	"github.com/ramsey-systems/goramsey/libramsey/catalog"
)

var (
	showMinOrder int
	showMaxOrder int
	showMatrix   bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print stored witnesses from a catalog",
	Long: `Opens a witness catalog read-only and prints every stored graph in the
selected order range.

Example:
  goramsey show --db ./witnesses --min-order 8 --max-order 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := goramsey.NewCatalogContext()
		cat, err := catalog.OpenCatalog(ctx, goramsey.CatalogOpts{
			DbPathName: dbPathArg,
			ReadOnly:   true,
		})
		if err != nil {
			return err
		}

		sel := goramsey.WitnessSelector{
			MinOrder: showMinOrder,
			MaxOrder: showMaxOrder,
		}
		opts := goramsey.DefaultPrintOpts
		opts.Matrix = showMatrix

		libramsey.SelectFromCatalog(cat, sel).
			Print(os.Stdout, opts).
			PullAll()

		ctx.Close()
		<-ctx.Done()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().IntVar(&showMinOrder, "min-order", 1, "smallest order to print")
	showCmd.Flags().IntVar(&showMaxOrder, "max-order", goramsey.MaxVtx, "largest order to print")
	showCmd.Flags().BoolVar(&showMatrix, "matrix", false, "also print adjacency matrices")
}
