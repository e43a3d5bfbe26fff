// pkg/raydium/validation.go
package raydium

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// parseResponse валидирует HTTP ответ и декодирует конверт. Ответ
// принимается только при статусе 200 и success=true; любой другой исход
// логируется с диагностикой и возвращается как ErrBadResponse, не трогая
// остальные поля конверта.
func (c *Client) parseResponse(resp *http.Response, out envelope) error {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("response error status code",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body))
		return fmt.Errorf("%w: status code %d", ErrBadResponse, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("failed to decode response", zap.Error(err))
		return fmt.Errorf("%w: decode: %v", ErrBadResponse, err)
	}

	if !out.succeeded() {
		c.logger.Error("response unsuccessful", zap.String("id", out.requestID()))
		return fmt.Errorf("%w: unsuccessful, id %q", ErrBadResponse, out.requestID())
	}

	return nil
}

// getJSON выполняет GET запрос и валидирует ответ через parseResponse.
// Транспортные сбои (таймаут, DNS, разрыв) приходят как ErrRequestFailed.
func (c *Client) getJSON(ctx context.Context, url string, out envelope) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: create request: %v", ErrRequestFailed, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("request failed", zap.String("url", url), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	return c.parseResponse(resp, out)
}
