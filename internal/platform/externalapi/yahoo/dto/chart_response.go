package dto

// ChartResponse is the envelope returned by /v8/finance/chart/{symbol}.
// The indicator arrays run parallel to Timestamp; individual entries are
// null for holidays and halted sessions, hence the pointer element type.
type ChartResponse struct {
	Chart struct {
		Result []ChartResult `json:"result"`
		Error  *ChartError   `json:"error"`
	} `json:"chart"`
}

// ChartResult is one chart series.
type ChartResult struct {
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []ChartQuote `json:"quote"`
	} `json:"indicators"`
}

// ChartQuote holds the parallel OHLC arrays.
type ChartQuote struct {
	Open  []*float64 `json:"open"`
	High  []*float64 `json:"high"`
	Low   []*float64 `json:"low"`
	Close []*float64 `json:"close"`
}

// ChartError is the provider-level error object.
type ChartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}
