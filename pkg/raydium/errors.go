// pkg/raydium/errors.go
package raydium

import "errors"

// Ошибки клиента. Каждая операция возвращает ошибку, оборачивающую один из
// этих sentinel'ов, чтобы вызывающий код мог различать транспортные сбои,
// протокольные сбои и отказы бизнес-правил через errors.Is.
var (
	// ErrRequestFailed — транспортный сбой: таймаут, DNS, разрыв соединения.
	ErrRequestFailed = errors.New("request failed")

	// ErrBadResponse — протокольный сбой: статус != 200, невалидный JSON,
	// success=false или отсутствующее поле data.
	ErrBadResponse = errors.New("bad api response")

	// ErrPriceImpactTooHigh — котировка превышает потолок price impact.
	// Жёстко блокирует только GenerateTransaction.
	ErrPriceImpactTooHigh = errors.New("price impact above configured limit")

	// ErrZeroOutputAmount — котировка с нулевым outputAmount; цена не
	// определена, деление не выполняется.
	ErrZeroOutputAmount = errors.New("quote output amount is zero")
)
