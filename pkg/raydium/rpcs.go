// pkg/raydium/rpcs.go
package raydium

import (
	"context"
	"fmt"
)

// GetRpcs возвращает список доступных RPC эндпоинтов Raydium.
// Не связан со свапами, чисто информационный вызов.
func (c *Client) GetRpcs(ctx context.Context) ([]RpcEndpoint, error) {
	var rpcs rpcsResponse
	if err := c.getJSON(ctx, c.dataBaseURL+"/main/rpcs", &rpcs); err != nil {
		return nil, fmt.Errorf("get rpcs: %w", err)
	}

	if rpcs.Data == nil {
		return nil, fmt.Errorf("get rpcs: %w: missing data", ErrBadResponse)
	}

	return rpcs.Data.Rpcs, nil
}
