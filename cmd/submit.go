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
	submitEndpoint  string
	submitKeyDir    string
	submitWallet    string
	submitScore     uint32
	submitTimestamp uint64
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Sign a risk payload and submit it to a running node",
	Run: func(cmd *cobra.Command, args []string) {
		submitRisk()
	},
}

func init() {
	rootCmd.AddCommand(submitCmd)
	submitCmd.Flags().StringVar(&submitEndpoint, "endpoint", "http://127.0.0.1:8645", "Verifier JSON-RPC endpoint")
	submitCmd.Flags().StringVar(&submitKeyDir, "key-dir", "./keys", "Directory holding key files")
	submitCmd.Flags().StringVar(&submitWallet, "wallet", "", "Wallet address (base58)")
	submitCmd.Flags().Uint32Var(&submitScore, "score", 0, "Risk score (0-100)")
	submitCmd.Flags().Uint64Var(&submitTimestamp, "timestamp", 0, "Payload unix timestamp (default: now)")
	_ = submitCmd.MarkFlagRequired("wallet")
	_ = submitCmd.MarkFlagRequired("score")
}

func submitRisk() {
	signed, err := buildSignedPayload(submitKeyDir, submitWallet, submitScore, submitTimestamp)
	if err != nil {
		logx.Error("SUBMIT", "Failed to sign payload: ", err)
		os.Exit(1)
	}

	c := client.NewClient(client.Config{Endpoint: submitEndpoint})
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), rpcCallTimeout)
	defer cancel()
	res, err := c.SubmitRisk(ctx, signed)
	if err != nil {
		logx.Error("SUBMIT", "Submission rejected: ", err)
		os.Exit(1)
	}

	logx.Info("SUBMIT", "Risk update accepted for ", submitWallet, " score=", submitScore)
	if res.Decision.Kind == "limit" {
		fmt.Printf("decision: %s (cap %d)\n", res.Decision.Kind, res.Decision.Limit)
	} else {
		fmt.Printf("decision: %s\n", res.Decision.Kind)
	}
}
