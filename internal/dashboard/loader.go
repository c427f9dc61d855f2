package dashboard

import "sync"

// State is the loading/error envelope consumers poll. loading=false with a
// nil error is the terminal success state; on failure Data is nil and Err is
// set; the canonical empty dashboard is a success, not an error.
type State struct {
	Data    *DashboardData
	Loading bool
	Err     error
}

// Loader guards derivation against out-of-order completion. Each Refresh
// takes a monotonically increasing token; a result whose token has been
// superseded is discarded on arrival, so a slow older pass can never
// overwrite a newer one. Cancellation is cooperative: the stale fetch is not
// interrupted, its result is ignored.
type Loader struct {
	svc *Service

	mu    sync.Mutex
	token uint64
	state State
}

func NewLoader(svc *Service) *Loader {
	return &Loader{svc: svc}
}

// Refresh starts a new derivation pass in the background and supersedes any
// pass still in flight.
func (l *Loader) Refresh() {
	token := l.begin()
	go func() {
		data, err := l.svc.GetDashboardData()
		l.complete(token, data, err)
	}()
}

func (l *Loader) begin() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.token++
	l.state.Loading = true
	return l.token
}

// complete applies a finished pass unless a newer Refresh has superseded its
// token. It reports whether the result was applied.
func (l *Loader) complete(token uint64, data DashboardData, err error) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if token != l.token {
		return false
	}
	l.state.Loading = false
	if err != nil {
		l.state.Data = nil
		l.state.Err = err
		return true
	}
	l.state.Data = &data
	l.state.Err = nil
	return true
}

// State returns the current envelope.
func (l *Loader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}
