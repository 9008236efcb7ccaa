// Package api defines the JSON request/response shapes of the HTTP surface.
package api

// ErrorResponse is the common error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// QuoteResponse is the payload of GET /quote.
type QuoteResponse struct {
	Symbol        string   `json:"symbol"`
	DisplayName   string   `json:"displayName"`
	Price         *float64 `json:"price"`
	ChangePercent *float64 `json:"changePercent"`
	Currency      string   `json:"currency"`
	Exchange      string   `json:"exchange"`
	Industry      *string  `json:"industry"`
}

// ChartPointResponse is a single point of GET /chart. T is the UNIX
// timestamp in milliseconds.
type ChartPointResponse struct {
	T     int64    `json:"t"`
	Close float64  `json:"close"`
	Open  *float64 `json:"open,omitempty"`
	High  *float64 `json:"high,omitempty"`
	Low   *float64 `json:"low,omitempty"`
}

// ChartResponse is the payload of GET /chart.
type ChartResponse struct {
	Symbol string               `json:"symbol"`
	Points []ChartPointResponse `json:"points"`
}

// ForexResponse is the payload of GET /forex. A previousRate of 0 means
// "unavailable", not a literal zero exchange rate.
type ForexResponse struct {
	Rate         float64 `json:"rate"`
	PreviousRate float64 `json:"previousRate"`
}

// CryptoResponse is the payload of GET /crypto.
type CryptoResponse struct {
	Price         float64 `json:"price"`
	ChangePercent float64 `json:"changePercent"`
}

// SearchItemResponse is a single entry of GET /search.
type SearchItemResponse struct {
	Symbol    string `json:"symbol"`
	ShortName string `json:"shortName"`
	LongName  string `json:"longName"`
	Exchange  string `json:"exchange"`
	Currency  string `json:"currency"`
}

// ProfileResponse is the payload of GET /profile.
type ProfileResponse struct {
	Symbol      string   `json:"symbol"`
	CompanyName string   `json:"companyName"`
	Market      string   `json:"market"`
	Industry    *string  `json:"industry"`
	Bullets     []string `json:"bullets"`
	Source      string   `json:"source"`
}

// StateValueResponse is the payload of GET /state.
type StateValueResponse struct {
	Value *float64 `json:"value"`
}

// StateWriteRequest is the body of POST /state.
type StateWriteRequest struct {
	Key   string   `json:"key" binding:"required"`
	Value *float64 `json:"value" binding:"required"`
}

// StateWriteResponse is the payload of POST /state.
type StateWriteResponse struct {
	OK bool `json:"ok"`
}
