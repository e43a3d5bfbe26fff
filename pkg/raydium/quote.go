// pkg/raydium/quote.go
package raydium

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"go.uber.org/zap"
)

// computeRoute запрашивает котировку для пары минтов и суммы. Возвращает
// полный конверт ответа (не только data): transaction-build эндпоинт
// принимает его целиком как swapResponse, а вызывающим доступны поля
// верхнего уровня вроде id.
//
// Превышение потолка price impact здесь только предупреждение — блокировка
// выполняется в GenerateTransaction.
func (c *Client) computeRoute(ctx context.Context, inputMint, outputMint string, amountIn uint64) (*QuoteResponse, error) {
	params := url.Values{}
	params.Set("inputMint", inputMint)
	params.Set("outputMint", outputMint)
	params.Set("amount", strconv.FormatUint(amountIn, 10))
	params.Set("slippageBps", strconv.Itoa(c.slippageBps))
	params.Set("txVersion", txVersion)

	var quote QuoteResponse
	if err := c.getJSON(ctx, c.quoteURL+"?"+params.Encode(), &quote); err != nil {
		return nil, fmt.Errorf("compute route: %w", err)
	}

	if quote.Data == nil {
		c.logger.Error("quote response has no data", zap.String("id", quote.ID))
		return nil, fmt.Errorf("compute route: %w: missing data", ErrBadResponse)
	}

	if quote.Data.PriceImpactPct > c.priceImpactMax {
		c.logger.Warn("price impact is higher than the limit",
			zap.Float64("price_impact", quote.Data.PriceImpactPct),
			zap.Float64("limit", c.priceImpactMax))
	}

	return &quote, nil
}

// GetPrice возвращает inputAmount / outputAmount свежей котировки. Суммы
// берутся как есть, в минимальных единицах: при разном количестве decimals
// у токенов нормализация остается на вызывающем коде.
//
// amountIn == 0 означает DefaultQuoteAmount. Нулевой outputAmount —
// ErrZeroOutputAmount, деление не выполняется.
func (c *Client) GetPrice(ctx context.Context, inputMint, outputMint string, amountIn uint64) (float64, error) {
	if amountIn == 0 {
		amountIn = DefaultQuoteAmount
	}

	quote, err := c.computeRoute(ctx, inputMint, outputMint, amountIn)
	if err != nil {
		return 0, fmt.Errorf("get price: %w", err)
	}

	inAmount, err := strconv.ParseFloat(quote.Data.InputAmount, 64)
	if err != nil {
		return 0, fmt.Errorf("get price: %w: input amount %q", ErrBadResponse, quote.Data.InputAmount)
	}
	outAmount, err := strconv.ParseFloat(quote.Data.OutputAmount, 64)
	if err != nil {
		return 0, fmt.Errorf("get price: %w: output amount %q", ErrBadResponse, quote.Data.OutputAmount)
	}

	if outAmount == 0 {
		return 0, fmt.Errorf("get price: %w", ErrZeroOutputAmount)
	}

	return inAmount / outAmount, nil
}

// GetRoutes возвращает упорядоченный план маршрутизации свежей котировки.
// amountIn == 0 означает DefaultQuoteAmount.
func (c *Client) GetRoutes(ctx context.Context, inputMint, outputMint string, amountIn uint64) ([]RouteHop, error) {
	if amountIn == 0 {
		amountIn = DefaultQuoteAmount
	}

	quote, err := c.computeRoute(ctx, inputMint, outputMint, amountIn)
	if err != nil {
		return nil, fmt.Errorf("get routes: %w", err)
	}

	return quote.Data.RoutePlan, nil
}
