package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sentinelhq/sentinel/client"
	"github.com/sentinelhq/sentinel/jsonx"
	"github.com/sentinelhq/sentinel/logx"
	"github.com/sentinelhq/sentinel/oracle"
)

var (
	signKeyDir    string
	signWallet    string
	signScore     uint32
	signTimestamp uint64
)

var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "Sign a risk payload with the oracle private key",
	Long: `Sign a risk payload with the oracle private key and print the signed
message as JSON. The private key is read from the ` + oracle.PrivateKeyEnv + `
environment variable, falling back to ` + oracle.PrivateKeyFile + ` in --key-dir.
When --timestamp is omitted the current unix time is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		signPayload()
	},
}

func init() {
	rootCmd.AddCommand(signCmd)
	signCmd.Flags().StringVar(&signKeyDir, "key-dir", "./keys", "Directory holding key files")
	signCmd.Flags().StringVar(&signWallet, "wallet", "", "Wallet address (base58)")
	signCmd.Flags().Uint32Var(&signScore, "score", 0, "Risk score (0-100)")
	signCmd.Flags().Uint64Var(&signTimestamp, "timestamp", 0, "Payload unix timestamp (default: now)")
	_ = signCmd.MarkFlagRequired("wallet")
	_ = signCmd.MarkFlagRequired("score")
}

func signPayload() {
	signed, err := buildSignedPayload(signKeyDir, signWallet, signScore, signTimestamp)
	if err != nil {
		logx.Error("SIGN", "Failed to sign payload: ", err)
		os.Exit(1)
	}

	out, err := jsonx.MarshalToString(signed)
	if err != nil {
		logx.Error("SIGN", "Failed to encode signed payload: ", err)
		os.Exit(1)
	}
	fmt.Println(out)
}

func buildSignedPayload(keyDir, wallet string, score uint32, timestamp uint64) (*client.SignedRiskMsg, error) {
	privKey, err := oracle.LoadPrivateKey(keyDir)
	if err != nil {
		return nil, err
	}
	if timestamp == 0 {
		timestamp = uint64(time.Now().Unix())
	}
	return client.SignRisk(client.RiskPayloadMsg{
		Wallet:    wallet,
		RiskScore: score,
		Timestamp: timestamp,
	}, privKey)
}
