package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	patternArg string
	dbPathArg  string
)

var rootCmd = &cobra.Command{
	Use:   "goramsey",
	Short: "Ramsey witness search tools",
	Long: `goramsey - exhaustive and heuristic searches for Ramsey witness graphs

A witness for a pattern pair such as B2:B8 is a 2-coloring of a complete
graph with no monochromatic copy of the forbidden pattern in either color.`,
	Version: "0.1.0",
	// Run: nil (Forces help output).
	Run: nil,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&patternArg, "pattern", "B2:B8", "forbidden pattern pair, e.g. B2:B8 or W5:W7")
	rootCmd.PersistentFlags().StringVar(&dbPathArg, "db", "", "witness catalog path (empty means in-memory)")
}
