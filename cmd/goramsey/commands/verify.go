package commands

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ramsey-systems/goramsey/libramsey"
)

var verifyGraphExpr string

var verifyCmd = &cobra.Command{
	Use:   "verify [matrix-file]",
	Short: "Recount forbidden patterns in a saved coloring",
	Long: `Reads an adjacency matrix saved by tabu (or an edge-list expression given
with --graph) and recounts the forbidden patterns in both colors with an
independent counter.

Example:
  goramsey verify --pattern W5:W5 final_adj_matrix_W5:W5_13.txt
  goramsey verify --pattern B1:B1 --graph 1-2-3-4-5-1`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern, err := libramsey.ParsePattern(patternArg)
		if err != nil {
			return err
		}

		var X *libramsey.Graph
		switch {
		case verifyGraphExpr != "":
			X, err = libramsey.ParseGraphExpr(verifyGraphExpr)
		case len(args) == 1:
			var f *os.File
			f, err = os.Open(args[0])
			if err != nil {
				return err
			}
			X, err = libramsey.ParseMatrix(f)
			f.Close()
		default:
			return errors.New("give a matrix file or --graph expression")
		}
		if err != nil {
			return err
		}
		defer X.Reclaim()

		n0, n1 := libramsey.CountForbidden(X, pattern)
		fmt.Printf("order %d, pattern %v: %d in color 0, %d in color 1\n",
			X.VtxCount(), pattern, n0, n1)
		if n0 == 0 && n1 == 0 {
			fmt.Println("witness verified")
			return nil
		}
		return errors.New("not a witness")
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().StringVar(&verifyGraphExpr, "graph", "", "edge-list expression to verify instead of a file")
}
