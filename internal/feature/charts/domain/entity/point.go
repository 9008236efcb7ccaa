// Package entity defines the domain models for the charts feature.
package entity

// ChartPoint はチャート系列の1点を表します。
// Closeは常に有効な数値です。providerがcloseをnullで返したインデックスは
// 系列に含めず破棄されます（null埋めはしません）。
type ChartPoint struct {
	TimestampMillis int64    // ミリ秒単位のUNIXタイムスタンプ
	Close           float64  // 終値（常に非nil・有限値）
	Open            *float64 // 始値（providerが欠損を返す場合はnil）
	High            *float64 // 高値
	Low             *float64 // 安値
}
