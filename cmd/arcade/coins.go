package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagSetCoins int

var coinsCmd = &cobra.Command{
	Use:   "coins",
	Short: "Show the coin balance",
	Long: `Show the coin balance. --set overwrites it, which is meant for
testing the shop; negative values are clamped to zero.

Examples:
  arcade coins
  arcade coins --set 50`,
	Args: cobra.NoArgs,
	Run:  runCoins,
}

func init() {
	coinsCmd.Flags().IntVar(&flagSetCoins, "set", 0, "Overwrite the balance")
}

func runCoins(cmd *cobra.Command, _ []string) {
	e := openEnv(cmd)
	defer e.Close()

	if cmd.Flags().Changed("set") {
		e.store.SetCoins(flagSetCoins)
	}
	fmt.Printf("◎ %d coins\n", e.store.Coins())
}
