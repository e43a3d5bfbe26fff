// pkg/raydium/constants.go
package raydium

import "time"

// Эндпоинты Raydium v3 API
const (
	DefaultQuoteURL    = "https://transaction-v1.raydium.io/compute/swap-base-in"
	DefaultTxURL       = "https://transaction-v1.raydium.io/transaction/swap-base-in"
	DefaultDataBaseURL = "https://api-v3.raydium.io"
)

// Значения конфигурации по умолчанию
const (
	DefaultPriceImpactMax = 0.1 // доля, 0.1 = 10%
	DefaultSlippageBps    = 10
	DefaultTimeout        = 10 * time.Second

	// DefaultQuoteAmount используется когда amountIn не задан (== 0)
	// в GetPrice / GetRoutes / GetPoolsInfo.
	DefaultQuoteAmount uint64 = 1_000_000_000
)

// Версия транзакции, единственная поддерживаемая remote API
const txVersion = "V0"

// Fallback для priority fee, если auto-fee эндпоинт недоступен
const defaultComputeUnitPrice = "15000"

// Тиры auto-fee эндпоинта (ключи в data.default)
type feeTier string

const (
	feeTierMedium   feeTier = "m"
	feeTierHigh     feeTier = "h"
	feeTierVeryHigh feeTier = "vh"
)
