// Package router wires the HTTP surface of the dashboard backend.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	statehandler "finboard/internal/feature/appstate/transport/handler"
	charthandler "finboard/internal/feature/charts/transport/handler"
	cryptohandler "finboard/internal/feature/crypto/transport/handler"
	forexhandler "finboard/internal/feature/forex/transport/handler"
	profilehandler "finboard/internal/feature/profile/transport/handler"
	quotehandler "finboard/internal/feature/quotes/transport/handler"
	"finboard/internal/platform/http/handler"
)

// NewRouter はすべてのエンドポイントを登録したルータを生成します。
// ダッシュボードUIは別オリジンから配信されうるのでCORSを許可します。
func NewRouter(
	quote *quotehandler.QuoteHandler,
	chart *charthandler.ChartHandler,
	forex *forexhandler.ForexHandler,
	crypto *cryptohandler.CryptoHandler,
	profile *profilehandler.ProfileHandler,
	state *statehandler.StateHandler,
) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	// 導通確認用
	r.GET("/healthz", handler.Health)

	r.GET("/quote", quote.GetQuote)
	r.GET("/search", quote.Search)
	r.GET("/chart", chart.GetChart)
	r.GET("/forex", forex.GetRates)
	r.GET("/crypto", crypto.GetBitcoin)
	r.GET("/profile", profile.GetProfile)
	r.GET("/state", state.GetValue)
	r.POST("/state", state.SetValue)

	return r
}
