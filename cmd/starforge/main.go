package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "starforge",
	Short: "Starforge - procedural star system generation toolkit",
	Long: `Starforge generates sectors of procedurally built star systems from a
seed and a galaxy shape, the same core the API server runs. Use it to
inspect generation output offline or to pre-populate a database.

Available commands:
  generate - Generate sectors from a preset file
  token    - Mint a service JWT for the API`,
}

func main() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(tokenCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
