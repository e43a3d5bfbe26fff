// pkg/raydium/types.go
package raydium

// APIResponse — общий конверт всех ответов Raydium v3 API.
// Встраивается в конкретные типы ответов ниже.
type APIResponse struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
	Version string `json:"version,omitempty"`
}

func (r APIResponse) succeeded() bool { return r.Success }

func (r APIResponse) requestID() string { return r.ID }

// envelope объединяет типы ответов для общей валидации.
type envelope interface {
	succeeded() bool
	requestID() string
}

// QuoteResponse представляет полный конверт котировки. Возвращается
// целиком, потому что transaction-build эндпоинт принимает его как
// swapResponse без изменений.
type QuoteResponse struct {
	APIResponse
	Data *SwapData `json:"data"`
}

// SwapData содержит данные котировки. Суммы приходят строками в
// минимальных единицах токена.
type SwapData struct {
	SwapType             string     `json:"swapType"`
	InputMint            string     `json:"inputMint"`
	InputAmount          string     `json:"inputAmount"`
	OutputMint           string     `json:"outputMint"`
	OutputAmount         string     `json:"outputAmount"`
	OtherAmountThreshold string     `json:"otherAmountThreshold"`
	SlippageBps          int        `json:"slippageBps"`
	PriceImpactPct       float64    `json:"priceImpactPct"`
	RoutePlan            []RouteHop `json:"routePlan"`
}

// RouteHop — один хоп плана маршрутизации через пул ликвидности.
type RouteHop struct {
	PoolID            string   `json:"poolId"`
	InputMint         string   `json:"inputMint"`
	OutputMint        string   `json:"outputMint"`
	FeeMint           string   `json:"feeMint"`
	FeeRate           float64  `json:"feeRate"`
	FeeAmount         string   `json:"feeAmount"`
	RemainingAccounts []string `json:"remainingAccounts"`
	LastPoolPriceX64  string   `json:"lastPoolPriceX64"`
}

// swapTransactionRequest — тело POST запроса к transaction-build эндпоинту.
type swapTransactionRequest struct {
	Wallet                        string         `json:"wallet"`
	InputAccount                  string         `json:"inputAccount"`
	OutputAccount                 string         `json:"outputAccount"`
	TxVersion                     string         `json:"txVersion"`
	WrapSol                       bool           `json:"wrapSol"`
	UnwrapSol                     bool           `json:"unwrapSol"`
	ComputeUnitPriceMicroLamports string         `json:"computeUnitPriceMicroLamports"`
	SwapResponse                  *QuoteResponse `json:"swapResponse"`
}

type transactionResponse struct {
	APIResponse
	Data *transactionData `json:"data"`
}

type transactionData struct {
	Transaction string `json:"transaction"`
}

type autoFeeResponse struct {
	APIResponse
	Data *autoFeeData `json:"data"`
}

type autoFeeData struct {
	Default feeTiers `json:"default"`
}

// feeTiers — уровни priority fee в микро-лампортах за compute unit.
type feeTiers struct {
	Medium   uint64 `json:"m"`
	High     uint64 `json:"h"`
	VeryHigh uint64 `json:"vh"`
}

type rpcsResponse struct {
	APIResponse
	Data *rpcsData `json:"data"`
}

type rpcsData struct {
	Rpcs []RpcEndpoint `json:"rpcs"`
}

// RpcEndpoint описывает доступный RPC из списка Raydium.
type RpcEndpoint struct {
	URL    string `json:"url"`
	Batch  bool   `json:"batch"`
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}

type poolsResponse struct {
	APIResponse
	Data []PoolInfo `json:"data"`
}

// PoolInfo — метаданные пула из data API (CLMM и AMM).
type PoolInfo struct {
	Type        string   `json:"type"`
	ProgramID   string   `json:"programId"`
	ID          string   `json:"id"`
	MintA       PoolMint `json:"mintA"`
	MintB       PoolMint `json:"mintB"`
	Price       float64  `json:"price"`
	MintAmountA float64  `json:"mintAmountA"`
	MintAmountB float64  `json:"mintAmountB"`
	FeeRate     float64  `json:"feeRate"`
	OpenTime    string   `json:"openTime"`
	TVL         float64  `json:"tvl"`
}

// PoolMint — дескриптор минта внутри PoolInfo.
type PoolMint struct {
	ChainID   int      `json:"chainId"`
	Address   string   `json:"address"`
	ProgramID string   `json:"programId"`
	LogoURI   string   `json:"logoURI"`
	Symbol    string   `json:"symbol"`
	Name      string   `json:"name"`
	Decimals  int      `json:"decimals"`
	Tags      []string `json:"tags"`
}
