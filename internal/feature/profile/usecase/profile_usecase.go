// Package usecase は企業プロフィール生成のビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	profileentity "finboard/internal/feature/profile/domain/entity"
	quoteentity "finboard/internal/feature/quotes/domain/entity"
)

// ErrSymbolNotFound はproviderが指定銘柄の結果を返さなかったときの
// センチネルエラーです。ハンドラーはこれを404に変換します。
var ErrSymbolNotFound = errors.New("symbol not found")

// koreanExchanges は韓国市場と判定する取引所コードです。
var koreanExchanges = map[string]struct{}{
	"KSE": {}, "KOE": {}, "KSC": {}, "KOSDAQ": {},
}

// QuoteReader はプロフィール生成に必要なクオート・業種の取得を
// 抽象化します。Goの慣例に従い、インターフェースは利用者側で定義します。
type QuoteReader interface {
	Quote(ctx context.Context, symbol string) (*quoteentity.Quote, error)
	Industry(ctx context.Context, symbol string) *string
}

// Summarizer はテキスト生成providerを抽象化します。3行のサマリーを
// 返せない場合はエラーを返し、呼び出し元がフォールバックします。
type Summarizer interface {
	Summarize(ctx context.Context, input profileentity.SummaryInput) ([]string, error)
}

// profileUsecase は企業プロフィール生成のユースケースです。
type profileUsecase struct {
	quotes     QuoteReader
	summarizer Summarizer // nil可。未設定時は常にフォールバック文を使用
}

// NewProfileUsecase はprofileUsecaseの新しいインスタンスを生成します。
func NewProfileUsecase(quotes QuoteReader, summarizer Summarizer) *profileUsecase {
	return &profileUsecase{quotes: quotes, summarizer: summarizer}
}

// GetProfile は企業プロフィールを組み立てます。AI生成はあくまで
// 付加的な強化であり、失敗時は決定的なテンプレート文に置き換えます。
// AI失敗がリクエスト全体を失敗させることはありません。
func (u *profileUsecase) GetProfile(ctx context.Context, symbol string) (*profileentity.CompanyProfile, error) {
	var (
		wg       sync.WaitGroup
		industry *string
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		industry = u.quotes.Industry(ctx, symbol)
	}()

	quote, err := u.quotes.Quote(ctx, symbol)
	wg.Wait()
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, ErrSymbolNotFound
	}

	companyName := quote.LongName
	if companyName == "" {
		companyName = quote.ShortName
	}
	if companyName == "" {
		companyName = symbol
	}

	market := DeriveMarket(symbol, quote.Currency, quote.Exchange)

	input := profileentity.SummaryInput{
		Symbol:      symbol,
		CompanyName: companyName,
		Market:      market,
		Industry:    industry,
	}

	bullets, source := u.resolveBullets(ctx, input)

	return &profileentity.CompanyProfile{
		Symbol:      symbol,
		CompanyName: companyName,
		Market:      market,
		Industry:    industry,
		Bullets:     bullets,
		Source:      source,
	}, nil
}

// resolveBullets はAIサマリーを試み、失敗時はテンプレート文を返します。
func (u *profileUsecase) resolveBullets(ctx context.Context, input profileentity.SummaryInput) ([]string, string) {
	if u.summarizer != nil {
		bullets, err := u.summarizer.Summarize(ctx, input)
		if err == nil && len(bullets) == 3 {
			return bullets, profileentity.SourceAI
		}
		if err != nil {
			slog.Debug("summary generation failed, using fallback", "symbol", input.Symbol, "error", err)
		}
	}
	return fallbackBullets(input), profileentity.SourceFallback
}

// DeriveMarket はティッカーのサフィックス・通貨・取引所コードから
// 市場（Korea/USA）を導出します。
func DeriveMarket(symbol, currency, exchange string) string {
	upper := strings.ToUpper(symbol)
	if strings.HasSuffix(upper, ".KS") || strings.HasSuffix(upper, ".KQ") {
		return profileentity.MarketKorea
	}
	if strings.ToUpper(currency) == "KRW" {
		return profileentity.MarketKorea
	}
	if _, ok := koreanExchanges[strings.ToUpper(exchange)]; ok {
		return profileentity.MarketKorea
	}
	return profileentity.MarketUSA
}

// fallbackBullets は決定的なテンプレートによる3行サマリーです。
func fallbackBullets(input profileentity.SummaryInput) []string {
	industry := "industry data pending"
	if input.Industry != nil && *input.Industry != "" {
		industry = *input.Industry
	}
	return []string{
		fmt.Sprintf("• %s (%s) is listed on the %s market.", input.CompanyName, input.Symbol, input.Market),
		fmt.Sprintf("• Core business area: %s.", industry),
		"• Check recent filings and news alongside earnings, valuation and risk.",
	}
}
