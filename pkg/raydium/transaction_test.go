// pkg/raydium/transaction_test.go
package raydium

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// feeBodyOK — auto-fee ответ со всеми тирами
const feeBodyOK = `{"id":"fee-1","success":true,"data":{"default":{"m":10000,"h":25000,"vh":50000}}}`

// txTestEnv поднимает фейковые quote/tx/data эндпоинты для полного цикла
// GenerateTransaction. Пустой feeBody означает отказ auto-fee эндпоинта.
type txTestEnv struct {
	client   *Client
	txHits   *int64
	lastBody *swapTransactionRequest
	quoteSrv *httptest.Server
	txSrv    *httptest.Server
	dataSrv  *httptest.Server
	feeBody  string
}

func newTxTestEnv(t *testing.T, quote QuoteResponse, feeBody string) *txTestEnv {
	t.Helper()

	env := &txTestEnv{
		txHits:   new(int64),
		lastBody: &swapTransactionRequest{},
		feeBody:  feeBody,
	}

	env.quoteSrv = quoteServer(t, quote, nil)
	t.Cleanup(env.quoteSrv.Close)

	env.txSrv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(env.txHits, 1)
		if err := json.NewDecoder(r.Body).Decode(env.lastBody); err != nil {
			t.Errorf("decode tx request: %v", err)
		}
		w.Write([]byte(`{"id":"tx-1","success":true,"data":{"transaction":"c2lnbm1l"}}`))
	}))
	t.Cleanup(env.txSrv.Close)

	env.dataSrv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if env.feeBody == "" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(env.feeBody))
	}))
	t.Cleanup(env.dataSrv.Close)

	env.client = NewClient(&Config{
		QuoteURL:    env.quoteSrv.URL,
		TxURL:       env.txSrv.URL,
		DataBaseURL: env.dataSrv.URL,
	}, zap.NewNop())

	return env
}

func TestGenerateTransaction(t *testing.T) {
	env := newTxTestEnv(t, testQuote(0.01, "1000000000", "8000000", nil), feeBodyOK)

	tx, err := env.client.GenerateTransaction(context.Background(),
		testWSOLMint, testUSDCMint, testWallet, 1_000_000_000)
	require.NoError(t, err)
	assert.Equal(t, "c2lnbm1l", tx)
	assert.EqualValues(t, 1, atomic.LoadInt64(env.txHits))

	body := env.lastBody
	assert.Equal(t, testWallet, body.Wallet)
	assert.Equal(t, "V0", body.TxVersion)
	assert.True(t, body.WrapSol)
	assert.True(t, body.UnwrapSol)
	assert.Equal(t, "25000", body.ComputeUnitPriceMicroLamports)

	// ATA для разных минтов различаются и не совпадают с кошельком
	assert.NotEqual(t, body.InputAccount, body.OutputAccount)
	assert.NotEqual(t, body.Wallet, body.InputAccount)

	// swapResponse уходит конвертом целиком
	require.NotNil(t, body.SwapResponse)
	assert.Equal(t, "quote-1", body.SwapResponse.ID)
	assert.True(t, body.SwapResponse.Success)
	require.NotNil(t, body.SwapResponse.Data)
	assert.Equal(t, "1000000000", body.SwapResponse.Data.InputAmount)
}

// Потолок price impact блокирует до обращения к transaction-build эндпоинту.
func TestGenerateTransactionPriceImpactTooHigh(t *testing.T) {
	env := newTxTestEnv(t, testQuote(0.15, "1000000000", "8000000", nil), feeBodyOK)

	_, err := env.client.GenerateTransaction(context.Background(),
		testWSOLMint, testUSDCMint, testWallet, 1_000_000_000)
	assert.ErrorIs(t, err, ErrPriceImpactTooHigh)
	assert.EqualValues(t, 0, atomic.LoadInt64(env.txHits))
}

func TestGenerateTransactionFeeFallback(t *testing.T) {
	env := newTxTestEnv(t, testQuote(0.01, "1000000000", "8000000", nil), "")

	_, err := env.client.GenerateTransaction(context.Background(),
		testWSOLMint, testUSDCMint, testWallet, 1_000_000_000)
	require.NoError(t, err)
	assert.Equal(t, "15000", env.lastBody.ComputeUnitPriceMicroLamports)
}

// Ответ auto-fee успешен, но запрошенный тир пуст — fallback тот же.
func TestGenerateTransactionFeeEmptyTier(t *testing.T) {
	feeBody := `{"id":"fee-2","success":true,"data":{"default":{"m":10000,"h":0,"vh":50000}}}`
	env := newTxTestEnv(t, testQuote(0.01, "1000000000", "8000000", nil), feeBody)

	_, err := env.client.GenerateTransaction(context.Background(),
		testWSOLMint, testUSDCMint, testWallet, 1_000_000_000)
	require.NoError(t, err)
	assert.Equal(t, "15000", env.lastBody.ComputeUnitPriceMicroLamports)
}

func TestGenerateTransactionInvalidAddresses(t *testing.T) {
	env := newTxTestEnv(t, testQuote(0.01, "1000000000", "8000000", nil), feeBodyOK)

	tests := []struct {
		name                          string
		inputMint, outputMint, wallet string
	}{
		{"bad wallet", testWSOLMint, testUSDCMint, "not-base58-at-all"},
		{"bad input mint", "0OIl", testUSDCMint, testWallet},
		{"bad output mint", testWSOLMint, "", testWallet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.client.GenerateTransaction(context.Background(),
				tt.inputMint, tt.outputMint, tt.wallet, 1_000_000_000)
			assert.Error(t, err)
		})
	}
	assert.EqualValues(t, 0, atomic.LoadInt64(env.txHits))
}

func TestGenerateTransactionQuoteFailure(t *testing.T) {
	env := newTxTestEnv(t, QuoteResponse{APIResponse: APIResponse{ID: "q-bad", Success: false}}, feeBodyOK)

	_, err := env.client.GenerateTransaction(context.Background(),
		testWSOLMint, testUSDCMint, testWallet, 1_000_000_000)
	assert.ErrorIs(t, err, ErrBadResponse)
	assert.EqualValues(t, 0, atomic.LoadInt64(env.txHits))
}

// Вывод ATA — чистая детерминированная функция (wallet, mint), без сети.
func TestAssociatedTokenAddressDeterministic(t *testing.T) {
	wallet := solana.MustPublicKeyFromBase58(testWallet)
	wsol := solana.MustPublicKeyFromBase58(testWSOLMint)
	usdc := solana.MustPublicKeyFromBase58(testUSDCMint)

	first, _, err := solana.FindAssociatedTokenAddress(wallet, wsol)
	require.NoError(t, err)
	second, _, err := solana.FindAssociatedTokenAddress(wallet, wsol)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, _, err := solana.FindAssociatedTokenAddress(wallet, usdc)
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}
