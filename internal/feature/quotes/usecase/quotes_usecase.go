// Package usecase はクオート取得・銘柄検索のビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"sync"

	"finboard/internal/feature/quotes/domain/entity"
)

// DefaultSearchLimit は検索結果件数のデフォルト値です。
const DefaultSearchLimit = 6

// ErrSymbolNotFound はproviderが指定銘柄の結果を返さなかったときの
// センチネルエラーです。ハンドラーはこれを404に変換します。
var ErrSymbolNotFound = errors.New("symbol not found")

// QuoteProvider はクオート・業種・検索の取得レイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type QuoteProvider interface {
	// Quote は銘柄のクオートを返します。providerに結果がない場合は
	// (nil, nil)です。
	Quote(ctx context.Context, symbol string) (*entity.Quote, error)
	// Industry は業種分類を返します。失敗は常にnilに丸められます。
	Industry(ctx context.Context, symbol string) *string
	// Search は銘柄検索を実行します。
	Search(ctx context.Context, query string, limit int) ([]entity.SearchResult, error)
}

// quotesUsecase はクオート操作のユースケースです。
type quotesUsecase struct {
	provider QuoteProvider
}

// NewQuotesUsecase はquotesUsecaseの新しいインスタンスを生成します。
func NewQuotesUsecase(provider QuoteProvider) *quotesUsecase {
	return &quotesUsecase{provider: provider}
}

// GetQuote はクオートと業種を並行に取得してマージします。業種は
// 装飾的な付加情報なので、失敗してもクオートには影響しません。
func (u *quotesUsecase) GetQuote(ctx context.Context, symbol string) (*entity.QuoteDetail, error) {
	var (
		wg       sync.WaitGroup
		industry *string
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		industry = u.provider.Industry(ctx, symbol)
	}()

	quote, err := u.provider.Quote(ctx, symbol)
	wg.Wait()
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, ErrSymbolNotFound
	}

	return &entity.QuoteDetail{Quote: *quote, Industry: industry}, nil
}

// Search は銘柄検索を実行します。limitが不正な場合はデフォルト値を
// 使用します。
func (u *quotesUsecase) Search(ctx context.Context, query string, limit int) ([]entity.SearchResult, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	return u.provider.Search(ctx, query, limit)
}
