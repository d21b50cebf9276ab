package config

const (
	DefaultListenAddr  = "0.0.0.0:8645"
	DefaultMetricsAddr = "0.0.0.0:9100"
	DefaultDataDir     = "./data"
	DefaultKeyDir      = "./keys"

	DefaultReadTimeoutMs  = 10000
	DefaultWriteTimeoutMs = 10000

	DefaultEventBufferSize = 50
)
