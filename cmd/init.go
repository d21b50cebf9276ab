package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sentinelhq/sentinel/client"
	"github.com/sentinelhq/sentinel/logx"
	"github.com/sentinelhq/sentinel/oracle"
)

const rpcCallTimeout = 15 * time.Second

var (
	initEndpoint string
	initPubkey   string
	initKeyDir   string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Register the oracle public key on a running node",
	Long: `Register the oracle public key on a running verifier node.
The key is write-once: a second registration is rejected by the node.
The key is read from --pubkey, or from ` + oracle.PublicKeyFile + ` in --key-dir.`,
	Run: func(cmd *cobra.Command, args []string) {
		registerOracleKey()
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&initEndpoint, "endpoint", "http://127.0.0.1:8645", "Verifier JSON-RPC endpoint")
	initCmd.Flags().StringVar(&initPubkey, "pubkey", "", "Hex-encoded oracle public key")
	initCmd.Flags().StringVar(&initKeyDir, "key-dir", "./keys", "Directory holding key files")
}

func registerOracleKey() {
	pubkeyHex := initPubkey
	if pubkeyHex == "" {
		data, err := os.ReadFile(filepath.Join(initKeyDir, oracle.PublicKeyFile))
		if err != nil {
			logx.Error("INIT", "Failed to read public key file: ", err)
			os.Exit(1)
		}
		pubkeyHex = strings.TrimSpace(string(data))
	}

	c := client.NewClient(client.Config{Endpoint: initEndpoint})
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), rpcCallTimeout)
	defer cancel()
	if _, err := c.Initialize(ctx, pubkeyHex); err != nil {
		logx.Error("INIT", "Registration failed: ", err)
		os.Exit(1)
	}
	logx.Info("INIT", "Oracle public key registered: ", pubkeyHex)
}
