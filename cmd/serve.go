package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sentinelhq/sentinel/config"
	"github.com/sentinelhq/sentinel/db"
	"github.com/sentinelhq/sentinel/errors"
	"github.com/sentinelhq/sentinel/events"
	"github.com/sentinelhq/sentinel/exception"
	"github.com/sentinelhq/sentinel/jsonrpc"
	"github.com/sentinelhq/sentinel/ledger"
	"github.com/sentinelhq/sentinel/logx"
	"github.com/sentinelhq/sentinel/monitoring"
	"github.com/sentinelhq/sentinel/store"
	"github.com/sentinelhq/sentinel/types"
)

const shutdownTimeout = 10 * time.Second

var (
	serveConfigPath string
	serveTuningPath string
	serveEnvPath    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the risk verifier node",
	Long: `Run the risk verifier node:
- Opens the configured key-value store
- Registers the oracle public key on first boot when configured
- Serves the JSON-RPC API and Prometheus metrics until interrupted`,
	Run: func(cmd *cobra.Command, args []string) {
		runNode()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "config/sentinel.yml", "Path to node configuration file")
	serveCmd.Flags().StringVar(&serveTuningPath, "tuning", "config/tuning.ini", "Path to tuning configuration file")
	serveCmd.Flags().StringVar(&serveEnvPath, "env", ".env", "Path to env file (optional)")
}

func runNode() {
	if err := godotenv.Load(serveEnvPath); err != nil {
		logx.Debug("NODE", "No env file loaded: ", err)
	}

	cfg, err := config.LoadNodeConfig(serveConfigPath)
	if err != nil {
		logx.Error("NODE", "Failed to load configuration: ", err)
		os.Exit(1)
	}
	logx.Configure(cfg.Log.Directory, cfg.Log.MaxSizeMB, cfg.Log.MaxAgeDays)
	monitoring.InitMetrics()

	provider, err := db.NewProvider(cfg.ProviderConfig())
	if err != nil {
		logx.Error("NODE", "Failed to open storage backend: ", err)
		os.Exit(1)
	}

	riskStore, err := store.NewGenericRiskStore(provider)
	if err != nil {
		logx.Error("NODE", "Failed to initialize risk store: ", err)
		os.Exit(1)
	}
	defer riskStore.MustClose()
	keyStore, err := store.NewGenericOracleKeyStore(provider)
	if err != nil {
		logx.Error("NODE", "Failed to initialize oracle key store: ", err)
		os.Exit(1)
	}

	bus, serverOpts := loadTuning()

	audit := events.NewAuditLogger(bus)
	exception.SafeGo("audit-logger", audit.Run)
	defer audit.Stop()

	rl, err := ledger.NewRiskLedger(riskStore, keyStore, bus, nil)
	if err != nil {
		logx.Error("NODE", "Failed to initialize risk ledger: ", err)
		os.Exit(1)
	}

	if err := bootstrapOracleKey(rl, keyStore, cfg.SelfNode.OraclePubkey); err != nil {
		logx.Error("NODE", "Failed to register oracle key: ", err)
		os.Exit(1)
	}

	metricsMux := http.NewServeMux()
	monitoring.RegisterMetrics(metricsMux)
	metricsServer := &http.Server{Addr: cfg.SelfNode.MetricsAddr, Handler: metricsMux}
	exception.SafeGo("metrics-server", func() {
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logx.Error("NODE", "Metrics server stopped: ", err)
		}
	})

	rpcServer := jsonrpc.NewServer(cfg.SelfNode.ListenAddr, rl)
	exception.SafeGo("rpc-server", func() {
		if err := rpcServer.Start(serverOpts); err != nil {
			logx.Error("NODE", "RPC server stopped: ", err)
		}
	})

	waitForShutdown(rpcServer, metricsServer)
}

// loadTuning reads the optional tuning file; missing files fall back to defaults.
func loadTuning() (*events.EventBus, jsonrpc.ServerOptions) {
	bufferSize := config.DefaultEventBufferSize
	opts := jsonrpc.ServerOptions{
		ReadTimeout:  time.Duration(config.DefaultReadTimeoutMs) * time.Millisecond,
		WriteTimeout: time.Duration(config.DefaultWriteTimeoutMs) * time.Millisecond,
	}

	if _, err := os.Stat(serveTuningPath); err != nil {
		logx.Info("NODE", "No tuning file at ", serveTuningPath, ", using defaults")
		return events.NewEventBusWithBuffer(bufferSize), opts
	}

	if eventsCfg, err := config.LoadEventsConfig(serveTuningPath); err == nil {
		bufferSize = eventsCfg.BufferSize
	} else {
		logx.Warn("NODE", "Failed to load events tuning: ", err)
	}
	if serverCfg, err := config.LoadServerConfig(serveTuningPath); err == nil {
		opts.ReadTimeout = time.Duration(serverCfg.ReadTimeoutMs) * time.Millisecond
		opts.WriteTimeout = time.Duration(serverCfg.WriteTimeoutMs) * time.Millisecond
	} else {
		logx.Warn("NODE", "Failed to load server tuning: ", err)
	}
	return events.NewEventBusWithBuffer(bufferSize), opts
}

// bootstrapOracleKey registers the configured oracle public key on first boot.
// An already-registered key wins; the config value is ignored after that.
func bootstrapOracleKey(rl *ledger.RiskLedger, keyStore store.OracleKeyStore, pubkeyHex string) error {
	if pubkeyHex == "" {
		registered, err := keyStore.Has()
		if err != nil {
			return err
		}
		monitoring.SetOracleInitialized(registered)
		return nil
	}

	key, err := types.OracleKeyFromHex(pubkeyHex)
	if err != nil {
		return err
	}
	if err := rl.Initialize(key); err != nil {
		if errors.HasCode(err, errors.ErrCodeAlreadyInitialized) {
			logx.Info("NODE", "Oracle key already registered, keeping stored key")
			monitoring.SetOracleInitialized(true)
			return nil
		}
		return err
	}
	return nil
}

func waitForShutdown(rpcServer *jsonrpc.Server, metricsServer *http.Server) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logx.Info("NODE", "Received signal ", sig, ", shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := rpcServer.Stop(ctx); err != nil {
		logx.Error("NODE", "RPC server shutdown failed: ", err)
	}
	if err := metricsServer.Shutdown(ctx); err != nil {
		logx.Error("NODE", "Metrics server shutdown failed: ", err)
	}
}
