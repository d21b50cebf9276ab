package cmd

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sentinelhq/sentinel/logx"
	"github.com/sentinelhq/sentinel/oracle"
)

var keygenDir string

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a new oracle Ed25519 keypair",
	Long: `Generate a new Ed25519 oracle keypair and write it to the key directory:
- ` + oracle.PrivateKeyFile + ` holds the hex-encoded private key (mode 0600)
- ` + oracle.PublicKeyFile + ` holds the hex-encoded public key`,
	Run: func(cmd *cobra.Command, args []string) {
		generateOracleKeys()
	},
}

func init() {
	rootCmd.AddCommand(keygenCmd)
	keygenCmd.Flags().StringVar(&keygenDir, "key-dir", "./keys", "Directory to write key files")
}

func generateOracleKeys() {
	pub, _, err := oracle.GenerateKeypair(keygenDir)
	if err != nil {
		logx.Error("KEYGEN", "Failed to generate keypair: ", err)
		os.Exit(1)
	}

	logx.Info("KEYGEN", "Generated oracle keypair in ", keygenDir)
	fmt.Println("oracle public key:", hex.EncodeToString(pub))
}
