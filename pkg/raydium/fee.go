// pkg/raydium/fee.go
package raydium

import (
	"context"
	"strconv"

	"go.uber.org/zap"
)

// unitPriceMicroLamports запрашивает auto-fee эндпоинт и возвращает значение
// выбранного тира строкой — transaction-build эндпоинт ожидает
// computeUnitPriceMicroLamports строкой. Любой сбой (транспорт, протокол,
// нулевой тир) заменяется фиксированным fallback и никогда не поднимается
// как ошибка.
func (c *Client) unitPriceMicroLamports(ctx context.Context, tier feeTier) string {
	var fees autoFeeResponse
	if err := c.getJSON(ctx, c.dataBaseURL+"/main/auto-fee", &fees); err != nil {
		c.logger.Warn("auto-fee request failed, using default priority fee",
			zap.String("default", defaultComputeUnitPrice),
			zap.Error(err))
		return defaultComputeUnitPrice
	}

	if fees.Data == nil {
		c.logger.Warn("auto-fee response has no data, using default priority fee",
			zap.String("default", defaultComputeUnitPrice))
		return defaultComputeUnitPrice
	}

	var value uint64
	switch tier {
	case feeTierMedium:
		value = fees.Data.Default.Medium
	case feeTierVeryHigh:
		value = fees.Data.Default.VeryHigh
	default:
		value = fees.Data.Default.High
	}

	if value == 0 {
		c.logger.Warn("auto-fee tier is empty, using default priority fee",
			zap.String("tier", string(tier)),
			zap.String("default", defaultComputeUnitPrice))
		return defaultComputeUnitPrice
	}

	return strconv.FormatUint(value, 10)
}
