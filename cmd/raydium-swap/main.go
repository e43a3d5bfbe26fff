// ====================================
// File: cmd/raydium-swap/main.go
// ====================================
package main

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/martinbasa-stack/raydium-swap/internal/config"
	"github.com/martinbasa-stack/raydium-swap/internal/logger"
	"github.com/martinbasa-stack/raydium-swap/pkg/raydium"
)

const defaultConfigPath = "configs/config.yaml"

// Инспекционная утилита: цена, маршрут и список RPC для пары минтов.
// Транзакции не строит и ничего не подписывает.
func main() {
	if len(os.Args) < 3 {
		os.Stderr.WriteString("usage: raydium-swap <inputMint> <outputMint> [configPath]\n")
		os.Exit(1)
	}
	inputMint, outputMint := os.Args[1], os.Args[2]

	configPath := defaultConfigPath
	if len(os.Args) > 3 {
		configPath = os.Args[3]
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logCfg := logger.DefaultConfig()
	logCfg.Development = cfg.DebugLogging
	if cfg.LogFile != "" {
		logCfg.LogFile = cfg.LogFile
	}
	log, err := logger.New(logCfg)
	if err != nil {
		os.Stderr.WriteString("failed to create logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Sync()

	client := raydium.NewClient(&raydium.Config{
		PriceImpactMax: cfg.PriceImpactMax,
		SlippageBps:    cfg.SlippageBps,
		Timeout:        time.Duration(cfg.TimeoutSeconds) * time.Second,
		QuoteURL:       cfg.QuoteURL,
		TxURL:          cfg.TxURL,
		DataBaseURL:    cfg.DataBaseURL,
	}, log.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	log.WithSwap(inputMint, outputMint, raydium.DefaultQuoteAmount).Info("inspecting swap pair")

	priceLog := log.WithOperation("get_price")
	price, err := client.GetPrice(ctx, inputMint, outputMint, 0)
	if err != nil {
		priceLog.Error("failed to get price", zap.Error(err))
	} else {
		priceLog.Info("price", zap.Float64("input_per_output", price))
	}

	routesLog := log.WithOperation("get_routes")
	routes, err := client.GetRoutes(ctx, inputMint, outputMint, 0)
	if err != nil {
		routesLog.Error("failed to get routes", zap.Error(err))
	} else {
		for i, hop := range routes {
			routesLog.Info("route hop",
				zap.Int("hop", i),
				zap.String("pool_id", hop.PoolID),
				zap.Float64("fee_rate", hop.FeeRate))
		}
	}

	poolsLog := log.WithOperation("get_pools_info")
	pools, err := client.GetPoolsInfo(ctx, inputMint, outputMint, 0)
	if err != nil {
		poolsLog.Error("failed to get pools info", zap.Error(err))
	} else {
		for _, pool := range pools {
			poolsLog.Info("pool",
				zap.String("id", pool.ID),
				zap.String("type", pool.Type),
				zap.String("pair", pool.MintA.Symbol+"/"+pool.MintB.Symbol),
				zap.Float64("price", pool.Price),
				zap.Float64("tvl", pool.TVL))
		}
	}

	rpcsLog := log.WithOperation("get_rpcs")
	rpcs, err := client.GetRpcs(ctx)
	if err != nil {
		rpcsLog.Error("failed to get rpcs", zap.Error(err))
	} else {
		for _, rpc := range rpcs {
			rpcsLog.Info("rpc",
				zap.String("name", rpc.Name),
				zap.String("url", rpc.URL),
				zap.Int("weight", rpc.Weight),
				zap.Bool("batch", rpc.Batch))
		}
	}
}
