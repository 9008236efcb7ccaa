// Package dto contains the raw response shapes of the Yahoo Finance API.
package dto

// QuoteResponse is the envelope returned by /v7/finance/quote.
type QuoteResponse struct {
	QuoteResponse struct {
		Result []QuoteResult `json:"result"`
	} `json:"quoteResponse"`
}

// QuoteResult is a single quote entry. Numeric fields are pointers because
// the provider omits them depending on the market phase.
type QuoteResult struct {
	Symbol                     string   `json:"symbol"`
	ShortName                  string   `json:"shortName"`
	LongName                   string   `json:"longName"`
	RegularMarketPrice         *float64 `json:"regularMarketPrice"`
	PostMarketPrice            *float64 `json:"postMarketPrice"`
	PreMarketPrice             *float64 `json:"preMarketPrice"`
	RegularMarketPreviousClose *float64 `json:"regularMarketPreviousClose"`
	RegularMarketChangePercent *float64 `json:"regularMarketChangePercent"`
	Currency                   string   `json:"currency"`
	Exchange                   string   `json:"exchange"`
}
