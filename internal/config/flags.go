package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server base URL
//	-d cache database path
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-pool-size worker pool size
func ParseFlags() *StructuredConfig {
	var serverURL string
	var cacheDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var poolSize int

	flag.StringVar(&serverURL, "a", "", "Bridge server base URL")
	flag.StringVar(&cacheDSN, "d", "", "Cache database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.IntVar(&poolSize, "pool-size", 0, "Worker pool size")

	flag.Parse()

	return &StructuredConfig{
		Session: Session{
			BaseURL: serverURL,
		},
		Storage: Storage{
			DB: DB{
				DSN: cacheDSN,
			},
		},
		Adapter: Adapter{
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			PoolSize: poolSize,
		},
		JSONFilePath: jsonConfigPath,
	}
}
