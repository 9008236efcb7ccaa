package yahoo

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/url"
	"strconv"

	chartentity "finboard/internal/feature/charts/domain/entity"
	quoteentity "finboard/internal/feature/quotes/domain/entity"
	"finboard/internal/platform/externalapi/yahoo/dto"
)

// Quote は指定銘柄の現在のクオートを取得します。providerが結果を
// 返さなかった場合は(nil, nil)を返し、呼び出し元が「銘柄なし」として
// 扱います。
func (c *Client) Quote(ctx context.Context, symbol string) (*quoteentity.Quote, error) {
	q := url.Values{}
	q.Set("symbols", symbol)

	var body dto.QuoteResponse
	if err := c.fetchJSON(ctx, c.cfg.Query1URL, "/v7/finance/quote", q, &body); err != nil {
		return nil, err
	}

	results := body.QuoteResponse.Result
	if len(results) == 0 {
		return nil, nil
	}
	r := results[0]

	// 表示価格のフォールバック連鎖:
	// 通常取引 → 時間外(post) → 寄り前(pre) → 前日終値
	price := firstNonNil(r.RegularMarketPrice, r.PostMarketPrice, r.PreMarketPrice, r.RegularMarketPreviousClose)

	sym := r.Symbol
	if sym == "" {
		sym = symbol
	}

	return &quoteentity.Quote{
		Symbol:        sym,
		ShortName:     r.ShortName,
		LongName:      r.LongName,
		DisplayName:   firstNonEmpty(r.ShortName, r.LongName, sym),
		Price:         price,
		ChangePercent: r.RegularMarketChangePercent,
		Currency:      r.Currency,
		Exchange:      r.Exchange,
	}, nil
}

// Series は指定銘柄の日足チャート系列を取得します。rngはprovider形式の
// レンジ指定（"1mo", "3mo", "1y"）です。closeがnullまたは非有限値の
// インデックスは破棄します。
func (c *Client) Series(ctx context.Context, symbol, rng string) ([]chartentity.ChartPoint, error) {
	q := url.Values{}
	q.Set("interval", "1d")
	q.Set("range", rng)

	var body dto.ChartResponse
	path := "/v8/finance/chart/" + url.PathEscape(symbol)
	if err := c.fetchJSON(ctx, c.cfg.Query1URL, path, q, &body); err != nil {
		return nil, err
	}
	if body.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo: chart error: %s", body.Chart.Error.Description)
	}
	if len(body.Chart.Result) == 0 {
		return []chartentity.ChartPoint{}, nil
	}

	result := body.Chart.Result[0]
	var quote dto.ChartQuote
	if len(result.Indicators.Quote) > 0 {
		quote = result.Indicators.Quote[0]
	}

	points := make([]chartentity.ChartPoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		cl := at(quote.Close, i)
		if cl == nil || math.IsNaN(*cl) || math.IsInf(*cl, 0) {
			continue
		}
		points = append(points, chartentity.ChartPoint{
			TimestampMillis: ts * 1000,
			Close:           *cl,
			Open:            at(quote.Open, i),
			High:            at(quote.High, i),
			Low:             at(quote.Low, i),
		})
	}
	return points, nil
}

// Industry は銘柄の業種分類を取得します。業種は装飾的な付加情報であり、
// 取得失敗や構造不一致はエラーにせずnilを返します。
func (c *Client) Industry(ctx context.Context, symbol string) *string {
	q := url.Values{}
	q.Set("modules", "assetProfile")

	var body dto.QuoteSummaryResponse
	path := "/v10/finance/quoteSummary/" + url.PathEscape(symbol)
	if err := c.fetchJSON(ctx, c.cfg.Query2URL, path, q, &body); err != nil {
		slog.Debug("industry lookup failed", "symbol", symbol, "error", err)
		return nil
	}

	results := body.QuoteSummary.Result
	if len(results) == 0 || results[0].AssetProfile == nil || results[0].AssetProfile.Industry == "" {
		return nil
	}
	industry := results[0].AssetProfile.Industry
	return &industry
}

// Search は銘柄検索を実行します。検索エンドポイントはcrumbを要求しない
// ため、Credentialなしでリクエストします。
func (c *Client) Search(ctx context.Context, query string, limit int) ([]quoteentity.SearchResult, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("quotesCount", strconv.Itoa(limit))
	q.Set("newsCount", "0")

	var body dto.SearchResponse
	if err := c.fetchJSONPlain(ctx, c.cfg.Query2URL, "/v1/finance/search", q, &body); err != nil {
		return nil, err
	}

	out := make([]quoteentity.SearchResult, 0, len(body.Quotes))
	for _, item := range body.Quotes {
		if len(out) == limit {
			break
		}
		out = append(out, quoteentity.SearchResult{
			Symbol:    item.Symbol,
			ShortName: firstNonEmpty(item.ShortName, item.LongName, item.Name),
			LongName:  firstNonEmpty(item.LongName, item.ShortName),
			Exchange:  item.Exchange,
			Currency:  item.Currency,
		})
	}
	return out, nil
}

// at は並列配列の範囲外アクセスをnilに丸めます。
func at(values []*float64, i int) *float64 {
	if i < 0 || i >= len(values) {
		return nil
	}
	return values[i]
}

func firstNonNil(values ...*float64) *float64 {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
