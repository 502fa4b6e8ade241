package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"

	"tenine/internal/modules/draft"
)

// User-facing notices, in the order the original flow shows them.
const (
	NoticeAccepted = "예약 요청이 정상적으로 접수되었습니다! 🎉\n이메일을 확인해주세요. 예약 정보가 발송되었습니다."
	NoticeRedirect = "메인 페이지로 이동합니다."
	NoticeFailed   = "예약 처리 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요."
	NoticeOffline  = "네트워크 오류가 발생했습니다. 인터넷 연결 후 다시 시도해주세요."
)

// Notifier shows a blocking notice to the user. Notices are strictly
// sequential; the second one is not shown until the first returns.
type Notifier interface {
	Notify(message string)
}

// Navigator moves the user to the next screen once the relay is done.
type Navigator interface {
	Home()
	BackToForm()
}

// Relay forwards the pending draft to the reservation endpoint at most once
// per instance. A successful delivery clears the draft; any failure keeps it
// so the user can resubmit.
type Relay struct {
	store    draft.Store
	endpoint string
	client   *http.Client
	notices  Notifier
	nav      Navigator

	mu      sync.Mutex
	started bool
}

func New(store draft.Store, endpoint string, client *http.Client, notices Notifier, nav Navigator) *Relay {
	if client == nil {
		client = http.DefaultClient
	}
	return &Relay{
		store:    store,
		endpoint: endpoint,
		client:   client,
		notices:  notices,
		nav:      nav,
	}
}

// Run executes the consume-and-forward sequence. Calls after the first are
// no-ops; the guard exists so a re-rendered screen cannot double-fire the
// submission.
func (r *Relay) Run(ctx context.Context) error {
	r.mu.Lock()
	if r.started {
		r.mu.Unlock()
		return nil
	}
	r.started = true
	r.mu.Unlock()

	d, err := r.store.Load()
	if err != nil {
		log.Printf("relay: draft load failed: %v", err)
		r.notices.Notify(NoticeOffline)
		r.nav.BackToForm()
		return err
	}
	if d == nil {
		r.nav.Home()
		return nil
	}

	body, err := json.Marshal(d)
	if err != nil {
		r.notices.Notify(NoticeOffline)
		r.nav.BackToForm()
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		r.notices.Notify(NoticeOffline)
		r.nav.BackToForm()
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		log.Printf("relay: request failed: %v", err)
		r.notices.Notify(NoticeOffline)
		r.nav.BackToForm()
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(resp.Body)
		log.Printf("relay: submission rejected: status=%d body=%s", resp.StatusCode, text)
		r.notices.Notify(NoticeFailed)
		r.nav.BackToForm()
		return fmt.Errorf("relay: submission rejected with status %d", resp.StatusCode)
	}

	if err := r.store.Clear(); err != nil {
		// The reservation is already accepted; a stale draft is only a
		// resubmission nuisance, not a failure.
		log.Printf("relay: draft clear failed: %v", err)
	}

	r.notices.Notify(NoticeAccepted)
	r.notices.Notify(NoticeRedirect)
	r.nav.Home()
	return nil
}
