// Package usecase はチャート系列取得のビジネスロジックを実装します。
package usecase

import (
	"context"

	"finboard/internal/feature/charts/domain/entity"
)

// DefaultRange はUI側レンジ指定のデフォルト値です。
const DefaultRange = "30d"

// rangeQuery はUI側のレンジ指定をproviderのレンジ指定に写像します。
var rangeQuery = map[string]string{
	"30d": "1mo",
	"3mo": "3mo",
	"1y":  "1y",
}

// ChartProvider はチャート系列の取得レイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type ChartProvider interface {
	// Series は指定銘柄の日足チャート系列を取得します。
	// rngはprovider形式のレンジ指定（"1mo"など）です。
	Series(ctx context.Context, symbol, rng string) ([]entity.ChartPoint, error)
}

// chartsUsecase はチャート系列取得のユースケースです。
type chartsUsecase struct {
	provider ChartProvider
}

// NewChartsUsecase はchartsUsecaseの新しいインスタンスを生成します。
func NewChartsUsecase(provider ChartProvider) *chartsUsecase {
	return &chartsUsecase{provider: provider}
}

// GetSeries は指定銘柄・レンジのチャート系列を返します。未知のレンジ
// 指定はデフォルト（30d）に丸めます。系列は毎回providerから再計算され、
// 増分状態は持ちません。
func (u *chartsUsecase) GetSeries(ctx context.Context, symbol, rng string) ([]entity.ChartPoint, error) {
	query, ok := rangeQuery[rng]
	if !ok {
		query = rangeQuery[DefaultRange]
	}
	return u.provider.Series(ctx, symbol, query)
}
