package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// browserHeaders はすべてのリクエストに付与する固定ヘッダーです。
// Yahooは現実的なブラウザヘッダーを持たないリクエストを拒否します。
var browserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36",
	"Accept":          "application/json,text/plain,*/*",
	"Accept-Language": "en-US,en;q=0.9",
}

// Client はYahoo Finance APIのセッション認証付きクライアントです。
// Credentialの取得・キャッシュはSessionCacheに委譲します。
type Client struct {
	cfg     Config
	http    *http.Client
	session *SessionCache
}

// NewClient は指定された設定とHTTPクライアントでClientを生成します。
func NewClient(cfg Config, httpClient *http.Client) *Client {
	c := &Client{cfg: cfg, http: httpClient}
	c.session = NewSessionCache(c.acquireCredential)
	return c
}

// acquireCredential はハンドシェイク→crumb取得の2リクエストで新しい
// Credentialを取得します。1回の取得内でのリトライはありません。
func (c *Client) acquireCredential(ctx context.Context) (*Credential, error) {
	// ハンドシェイクはリダイレクトを追わずにSet-Cookieだけを回収する
	seedClient := &http.Client{
		Timeout:   c.http.Timeout,
		Transport: c.http.Transport,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.SessionURL, nil)
	if err != nil {
		return nil, err
	}
	setHeaders(req, "")

	res, err := seedClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: handshake: %v", ErrAuth, err)
	}
	closeBody(res.Body)

	cookie, _, _ := strings.Cut(res.Header.Get("Set-Cookie"), ";")
	if cookie == "" {
		return nil, fmt.Errorf("%w: no session cookie in handshake response", ErrAuth)
	}

	req, err = http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.CrumbURL, nil)
	if err != nil {
		return nil, err
	}
	setHeaders(req, cookie)

	res, err = c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: crumb: %v", ErrAuth, err)
	}
	body, err := io.ReadAll(res.Body)
	closeBody(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: crumb: %v", ErrAuth, err)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: crumb status %d", ErrAuth, res.StatusCode)
	}

	crumb := strings.TrimSpace(string(body))
	if crumb == "" || strings.Contains(strings.ToLower(crumb), "unauthorized") {
		return nil, fmt.Errorf("%w: unusable crumb", ErrAuth)
	}

	return &Credential{
		Token:     crumb,
		Cookie:    cookie,
		ExpiresAt: time.Now().Add(c.cfg.SessionTTL),
	}, nil
}

// fetchJSON はCredentialを添えてデータエンドポイントをGETし、
// レスポンスボディをoutにデコードします。非2xxや通信失敗は
// UpstreamErrorとして返します。
func (c *Client) fetchJSON(ctx context.Context, base, path string, params url.Values, out any) error {
	cred, err := c.session.Get(ctx)
	if err != nil {
		return err
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("crumb", cred.Token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	setHeaders(req, cred.Cookie)

	res, err := c.http.Do(req)
	if err != nil {
		return &UpstreamError{Err: err}
	}
	defer closeBody(res.Body)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return &UpstreamError{Status: res.StatusCode}
	}

	return json.NewDecoder(res.Body).Decode(out)
}

// fetchJSONPlain はCredentialなしでGETします。検索エンドポイントは
// crumbを要求しないため、ハンドシェイクを省略します。
func (c *Client) fetchJSONPlain(ctx context.Context, base, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	setHeaders(req, "")

	res, err := c.http.Do(req)
	if err != nil {
		return &UpstreamError{Err: err}
	}
	defer closeBody(res.Body)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return &UpstreamError{Status: res.StatusCode}
	}

	return json.NewDecoder(res.Body).Decode(out)
}

// setHeaders はブラウザ相当のヘッダーとキャッシュ無効化ヘッダーを設定します。
// 中間キャッシュの古いレスポンスではなく常にライブのproviderに到達させます。
func setHeaders(req *http.Request, cookie string) {
	for k, v := range browserHeaders {
		req.Header.Set(k, v)
	}
	req.Header.Set("Cache-Control", "no-store")
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
}

func closeBody(rc io.ReadCloser) {
	if err := rc.Close(); err != nil {
		slog.Warn("failed to close response body", "error", err)
	}
}
