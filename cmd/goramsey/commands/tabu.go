package commands

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/ramsey-systems/goramsey/goramsey"
	"github.com/ramsey-systems/goramsey/libramsey"
)

var (
	tabuOrder    int
	tabuSeed     int64
	tabuWorkers  int
	tabuMaxSteps int
	tabuOutDir   string
)

var tabuCmd = &cobra.Command{
	Use:   "tabu",
	Short: "Heuristic witness search at a fixed order",
	Long: `Runs parallel tabu descents from random colorings, flipping one edge at a
time toward fewer monochromatic forbidden patterns.  A descent that reaches
zero is a witness; its adjacency matrix is saved.

Example:
  goramsey tabu --pattern W5:W5 --order 13
  goramsey tabu --pattern B2:B8 --order 15 --workers 8`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern, err := libramsey.ParsePattern(patternArg)
		if err != nil {
			return err
		}

		opts := libramsey.TabuOpts{
			Order:    tabuOrder,
			Pattern:  pattern,
			Seed:     tabuSeed,
			MaxSteps: tabuMaxSteps,
		}
		if opts.Seed == 0 {
			opts.Seed = time.Now().UnixNano()
		}
		workers := tabuWorkers
		if workers <= 0 {
			workers = runtime.NumCPU()
		}

		res, err := libramsey.ParallelTabu(opts, workers)
		if err != nil {
			return err
		}
		if !res.Succeeded {
			fmt.Printf("no witness found at order %d, best score %d after %d steps\n",
				tabuOrder, res.Score, res.Steps)
			return nil
		}

		X := res.Coloring.Graph()
		defer X.Reclaim()
		if err := libramsey.VerifyWitness(X, pattern); err != nil {
			return err
		}

		outPath := fmt.Sprintf("final_adj_matrix_%s_%d.txt", pattern, tabuOrder)
		if tabuOutDir != "" {
			outPath = tabuOutDir + string(os.PathSeparator) + outPath
		}
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		res.Coloring.WriteMatrix(f)
		if err := f.Close(); err != nil {
			return err
		}

		fmt.Printf("witness found at order %d, verified, saved to %s\n", tabuOrder, outPath)
		X.WriteAsString(os.Stdout, goramsey.DefaultPrintOpts)
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tabuCmd)
	tabuCmd.Flags().IntVar(&tabuOrder, "order", 13, "graph order to search at")
	tabuCmd.Flags().Int64Var(&tabuSeed, "seed", 0, "master random seed (0 means time-based)")
	tabuCmd.Flags().IntVar(&tabuWorkers, "workers", 0, "parallel descents (0 means NumCPU)")
	tabuCmd.Flags().IntVar(&tabuMaxSteps, "max-steps", 0, "step cap per descent (0 means unlimited)")
	tabuCmd.Flags().StringVar(&tabuOutDir, "out", "", "directory for saved witness matrices")
}
