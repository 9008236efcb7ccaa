package yahoo

import (
	"context"
	"sync"
	"time"
)

// Credential はYahooのデータエンドポイントを認可するcrumbトークンと
// セッションクッキーの組です。ExpiresAt以降は再利用してはいけません。
// 部分的に更新されることはなく、再取得時に丸ごと置き換えられます。
type Credential struct {
	Token     string
	Cookie    string
	ExpiresAt time.Time
}

// acquisition is the shared handle for one in-flight credential acquisition.
// done is closed exactly once, after cred/err are set.
type acquisition struct {
	done chan struct{}
	cred *Credential
	err  error
}

// SessionCache は単一のCredentialを保持し、期限切れ・未取得時に
// single-flightで再取得します。同時に期限切れを観測した呼び出し元は
// 1回の取得処理を共有し、その結果を受け取ります。
//
// acquireとnowは注入可能で、テストでは固定クロックとモック取得関数を
// 渡して検証します。
type SessionCache struct {
	mu       sync.Mutex
	cred     *Credential
	inflight *acquisition

	acquire func(ctx context.Context) (*Credential, error)
	now     func() time.Time
}

// NewSessionCache は指定された取得関数でSessionCacheを生成します。
func NewSessionCache(acquire func(ctx context.Context) (*Credential, error)) *SessionCache {
	return &SessionCache{acquire: acquire, now: time.Now}
}

// Get は有効なCredentialを返します。キャッシュが有効ならI/Oなしで
// 即座に返し、そうでなければ取得を開始するか、進行中の取得を待ちます。
// 取得に失敗した場合は何もキャッシュせず、次の呼び出しが最初から
// 再試行します。
func (s *SessionCache) Get(ctx context.Context) (*Credential, error) {
	s.mu.Lock()
	if s.cred != nil && s.now().Before(s.cred.ExpiresAt) {
		cred := s.cred
		s.mu.Unlock()
		return cred, nil
	}
	if s.inflight != nil {
		a := s.inflight
		s.mu.Unlock()
		<-a.done
		return a.cred, a.err
	}
	a := &acquisition{done: make(chan struct{})}
	s.inflight = a
	s.mu.Unlock()

	cred, err := s.acquire(ctx)

	s.mu.Lock()
	if err == nil {
		s.cred = cred
	}
	a.cred, a.err = cred, err
	s.inflight = nil
	s.mu.Unlock()
	close(a.done)

	return cred, err
}
