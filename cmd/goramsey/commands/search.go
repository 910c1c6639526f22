package commands

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ramsey-systems/goramsey/goramsey"
	"github.com/ramsey-systems/goramsey/libramsey"
	"github.com/ramsey-systems/goramsey/libramsey/catalog"
)

var (
	searchMaxOrder int
	searchPrint    bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Exhaustively enumerate witnesses up to an order",
	Long: `Extends graphs one vertex at a time, pruning any branch that grows a
forbidden book in either color, and tallies the survivors per order.

Example:
  goramsey search --pattern B2:B8 --max-order 10
  goramsey search --pattern B2:B8 --max-order 10 --db ./witnesses --print`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern, err := libramsey.ParsePattern(patternArg)
		if err != nil {
			return err
		}
		if pattern.Kind != goramsey.Books {
			return errors.Wrap(goramsey.ErrBooksOnly, "exhaustive search prunes on books")
		}

		pruner, err := libramsey.NewPruner(pattern.Size0, pattern.Size1, nil)
		if err != nil {
			return err
		}
		eng, err := libramsey.NewEngine(pruner, searchMaxOrder)
		if err != nil {
			return err
		}

		ctx := goramsey.NewCatalogContext()
		cat, err := catalog.OpenCatalog(ctx, goramsey.CatalogOpts{
			DbPathName: dbPathArg,
			MaxOrder:   searchMaxOrder,
		})
		if err != nil {
			return err
		}

		stream := eng.EnumerateWitnesses().AddTo(cat)
		if searchPrint {
			stream = stream.Print(os.Stdout, goramsey.DefaultPrintOpts)
		}
		numFinal := stream.PullAll()

		eng.Summary(os.Stdout)
		fmt.Printf("witnesses of order %d: %d\n", searchMaxOrder, numFinal)

		ctx.Close()
		<-ctx.Done()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVar(&searchMaxOrder, "max-order", 10, "largest graph order to search")
	searchCmd.Flags().BoolVar(&searchPrint, "print", false, "print each witness of the target order")
}
