// pkg/raydium/pools.go
package raydium

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// GetPoolsInfo возвращает метаданные пулов, через которые проходит маршрут
// для пары минтов. Идентификаторы собираются в порядке плана маршрутизации,
// дубликаты не схлопываются. amountIn == 0 означает DefaultQuoteAmount.
func (c *Client) GetPoolsInfo(ctx context.Context, inputMint, outputMint string, amountIn uint64) ([]PoolInfo, error) {
	routes, err := c.GetRoutes(ctx, inputMint, outputMint, amountIn)
	if err != nil {
		return nil, fmt.Errorf("get pools info: %w", err)
	}
	if len(routes) == 0 {
		return nil, fmt.Errorf("get pools info: %w: empty route plan", ErrBadResponse)
	}

	ids := make([]string, 0, len(routes))
	for _, hop := range routes {
		ids = append(ids, hop.PoolID)
	}

	params := url.Values{}
	params.Set("ids", strings.Join(ids, ", "))

	var pools poolsResponse
	if err := c.getJSON(ctx, c.dataBaseURL+"/pools/info/ids?"+params.Encode(), &pools); err != nil {
		return nil, fmt.Errorf("get pools info: %w", err)
	}

	return pools.Data, nil
}
