// pkg/raydium/transaction.go
package raydium

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"
)

// GenerateTransaction строит неподписанную swap-транзакцию для пары минтов.
// Возвращает сериализованную транзакцию строкой — подпись и отправка
// остаются на вызывающем коде.
//
// Это единственная операция, где потолок price impact блокирует: котировка
// с priceImpactPct > PriceImpactMax отклоняется до обращения к
// transaction-build эндпоинту.
func (c *Client) GenerateTransaction(ctx context.Context, inputMint, outputMint, walletPubKey string, amountIn uint64) (string, error) {
	wallet, err := solana.PublicKeyFromBase58(walletPubKey)
	if err != nil {
		return "", fmt.Errorf("generate transaction: parse wallet %q: %w", walletPubKey, err)
	}
	inMint, err := solana.PublicKeyFromBase58(inputMint)
	if err != nil {
		return "", fmt.Errorf("generate transaction: parse input mint %q: %w", inputMint, err)
	}
	outMint, err := solana.PublicKeyFromBase58(outputMint)
	if err != nil {
		return "", fmt.Errorf("generate transaction: parse output mint %q: %w", outputMint, err)
	}

	// ATA выводятся детерминированно из (wallet, mint), без сети
	inputATA, _, err := solana.FindAssociatedTokenAddress(wallet, inMint)
	if err != nil {
		return "", fmt.Errorf("generate transaction: derive input ata: %w", err)
	}
	outputATA, _, err := solana.FindAssociatedTokenAddress(wallet, outMint)
	if err != nil {
		return "", fmt.Errorf("generate transaction: derive output ata: %w", err)
	}

	quote, err := c.computeRoute(ctx, inputMint, outputMint, amountIn)
	if err != nil {
		return "", fmt.Errorf("generate transaction: %w", err)
	}

	if quote.Data.PriceImpactPct > c.priceImpactMax {
		c.logger.Error("price impact is higher than the limit, transaction rejected",
			zap.Float64("price_impact", quote.Data.PriceImpactPct),
			zap.Float64("limit", c.priceImpactMax))
		return "", fmt.Errorf("generate transaction: %w: %.4f > %.4f",
			ErrPriceImpactTooHigh, quote.Data.PriceImpactPct, c.priceImpactMax)
	}

	priorityFee := c.unitPriceMicroLamports(ctx, feeTierHigh)

	payload := swapTransactionRequest{
		Wallet:                        wallet.String(),
		InputAccount:                  inputATA.String(),
		OutputAccount:                 outputATA.String(),
		TxVersion:                     txVersion,
		WrapSol:                       true,
		UnwrapSol:                     true,
		ComputeUnitPriceMicroLamports: priorityFee,
		SwapResponse:                  quote,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("generate transaction: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.txURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("generate transaction: %w: create request: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("transaction-build request failed", zap.Error(err))
		return "", fmt.Errorf("generate transaction: %w: %v", ErrRequestFailed, err)
	}

	var tx transactionResponse
	if err := c.parseResponse(resp, &tx); err != nil {
		return "", fmt.Errorf("generate transaction: %w", err)
	}

	if tx.Data == nil || tx.Data.Transaction == "" {
		c.logger.Error("transaction response has no data", zap.String("id", tx.ID))
		return "", fmt.Errorf("generate transaction: %w: missing transaction", ErrBadResponse)
	}

	c.logger.Debug("swap transaction built",
		zap.String("id", tx.ID),
		zap.String("priority_fee", priorityFee),
		zap.String("transaction", tx.Data.Transaction))

	return tx.Data.Transaction, nil
}
