// Package gemini はGoogle Gemini APIを使用した企業サマリー生成クライアント
// を提供します。
package gemini

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"google.golang.org/genai"

	"finboard/internal/feature/profile/domain/entity"
	"finboard/internal/feature/profile/usecase"
)

const (
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-2.5-flash"
	// bulletCount は生成するサマリーの行数です。
	bulletCount = 3
)

// bulletPrefix は行頭のリスト記号・番号を取り除くパターンです。
var bulletPrefix = regexp.MustCompile(`^[-•*\d.\s]+`)

// Summarizer はGoogle Gemini APIを使用して企業プロフィールの
// 3行サマリーを生成します。
type Summarizer struct {
	client *genai.Client
	model  string
}

// SummarizerがSummarizerインターフェースを実装していることをコンパイル時に検証します。
var _ usecase.Summarizer = (*Summarizer)(nil)

// NewSummarizer はADCを使用してSummarizerの新しいインスタンスを生成します。
// 環境変数 GOOGLE_GENAI_USE_VERTEXAI, GOOGLE_CLOUD_PROJECT,
// GOOGLE_CLOUD_LOCATION または GEMINI_API_KEY が必要です。
func NewSummarizer(ctx context.Context) (*Summarizer, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Summarizer{client: client, model: DefaultModel}, nil
}

// Summarize は企業情報から3行のサマリーを生成します。3行に満たない
// 出力はエラーとして扱い、呼び出し元のフォールバックに委ねます。
func (s *Summarizer) Summarize(ctx context.Context, input entity.SummaryInput) ([]string, error) {
	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(buildPrompt(input)), nil)
	if err != nil {
		return nil, fmt.Errorf("gemini API request failed: %w", err)
	}

	bullets := normalizeBullets(resp.Text())
	if len(bullets) < bulletCount {
		return nil, fmt.Errorf("gemini returned %d usable lines, need %d", len(bullets), bulletCount)
	}
	return bullets, nil
}

// buildPrompt は企業情報からプロンプトを組み立てます。
func buildPrompt(input entity.SummaryInput) string {
	industry := "unknown"
	if input.Industry != nil && *input.Industry != "" {
		industry = *input.Industry
	}
	return strings.Join([]string{
		"You are a company profile assistant for a finance dashboard.",
		"Write exactly 3 concise one-line summary bullets about the company below.",
		"Output only the 3 lines of plain text, nothing else.",
		"Ticker: " + input.Symbol,
		"Company: " + input.CompanyName,
		"Market: " + input.Market,
		"Industry: " + industry,
		"Keep each line between 40 and 90 characters.",
	}, "\n")
}

// normalizeBullets は生成テキストを整形します: 行分割、リスト記号の
// 除去、重複排除、先頭3行の採用、"• "プレフィックスの付与。
func normalizeBullets(text string) []string {
	var bullets []string
	seen := map[string]struct{}{}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(bulletPrefix.ReplaceAllString(strings.TrimSpace(line), ""))
		if line == "" {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		bullets = append(bullets, "• "+line)
		if len(bullets) == bulletCount {
			break
		}
	}
	return bullets
}
