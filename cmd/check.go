package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sentinelhq/sentinel/client"
	"github.com/sentinelhq/sentinel/logx"
)

var (
	checkEndpoint string
	checkWallet   string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Query a wallet's risk state and spend decision",
	Run: func(cmd *cobra.Command, args []string) {
		checkWalletState()
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVar(&checkEndpoint, "endpoint", "http://127.0.0.1:8645", "Verifier JSON-RPC endpoint")
	checkCmd.Flags().StringVar(&checkWallet, "wallet", "", "Wallet address (base58)")
	_ = checkCmd.MarkFlagRequired("wallet")
}

func checkWalletState() {
	c := client.NewClient(client.Config{Endpoint: checkEndpoint})
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), rpcCallTimeout)
	defer cancel()

	risk, err := c.GetRisk(ctx, checkWallet)
	if err != nil {
		logx.Error("CHECK", "Query failed: ", err)
		os.Exit(1)
	}
	perm, err := c.CheckPermission(ctx, checkWallet)
	if err != nil {
		logx.Error("CHECK", "Query failed: ", err)
		os.Exit(1)
	}

	fmt.Println("wallet:", checkWallet)
	if risk.Found {
		fmt.Println("risk score:", risk.State.RiskScore)
		fmt.Println("last updated:", risk.State.LastUpdated)
	} else {
		fmt.Println("risk score: none recorded")
	}
	if perm.Decision.Kind == "limit" {
		fmt.Printf("decision: %s (cap %d)\n", perm.Decision.Kind, perm.Decision.Limit)
	} else {
		fmt.Println("decision:", perm.Decision.Kind)
	}
}
