// pkg/raydium/client.go
package raydium

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Config задает параметры клиента. Все поля фиксируются при создании
// и не меняются на протяжении жизни клиента.
type Config struct {
	// PriceImpactMax — потолок price impact как доля (0.1 = 10%).
	// computeRoute при превышении только предупреждает,
	// GenerateTransaction — жестко отказывает.
	// Ноль означает DefaultPriceImpactMax, а не отсутствие потолка.
	PriceImpactMax float64

	// SlippageBps — допустимое проскальзывание в базисных пунктах.
	SlippageBps int

	// Timeout — ограничение на каждый HTTP запрос.
	Timeout time.Duration

	// Переопределения эндпоинтов. Пустая строка — production значение.
	QuoteURL    string
	TxURL       string
	DataBaseURL string
}

// Client — клиент Raydium v3 swap/quote API. Вся маршрутизация, расчет цены
// и комиссий выполняются удаленным сервисом; клиент только формирует
// запросы, валидирует ответы и применяет потолок price impact.
//
// Клиент не хранит изменяемого состояния и безопасен для конкурентного
// использования: каждая операция — один синхронный HTTP запрос без
// ретраев и кеширования.
type Client struct {
	client *http.Client
	logger *zap.Logger

	priceImpactMax float64
	slippageBps    int

	quoteURL    string
	txURL       string
	dataBaseURL string
}

// NewClient создает клиент. Нулевые поля cfg заменяются значениями по
// умолчанию. nil cfg эквивалентен пустому Config.
func NewClient(cfg *Config, logger *zap.Logger) *Client {
	if cfg == nil {
		cfg = &Config{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	priceImpactMax := cfg.PriceImpactMax
	if priceImpactMax == 0 {
		priceImpactMax = DefaultPriceImpactMax
	}
	slippageBps := cfg.SlippageBps
	if slippageBps == 0 {
		slippageBps = DefaultSlippageBps
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	quoteURL := cfg.QuoteURL
	if quoteURL == "" {
		quoteURL = DefaultQuoteURL
	}
	txURL := cfg.TxURL
	if txURL == "" {
		txURL = DefaultTxURL
	}
	dataBaseURL := cfg.DataBaseURL
	if dataBaseURL == "" {
		dataBaseURL = DefaultDataBaseURL
	}

	return &Client{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxConnsPerHost:     100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		logger:         logger.Named("raydium-client"),
		priceImpactMax: priceImpactMax,
		slippageBps:    slippageBps,
		quoteURL:       quoteURL,
		txURL:          txURL,
		dataBaseURL:    dataBaseURL,
	}
}
