package auth

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Session is the resolved identity of the session bootstrap.
type Session struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// SessionEvent is one auth state change notification. A nil Session means
// signed out.
type SessionEvent struct {
	Event   string   `json:"event"`
	Session *Session `json:"session"`
}

// Bootstrap resolves the initial session state exactly once. Two independent
// asynchronous sources feed it: an immediate session probe and the auth
// change subscription. Whichever produces a result first wins; everything
// after the first resolution is ignored, so the outcome does not depend on
// which source happens to answer first. Last-write-wins ordering here is
// non-deterministic and has produced a logged-out UI flash in the past.
type Bootstrap struct {
	mu       sync.Mutex
	resolved bool
	session  *Session
	done     chan struct{}
}

func NewBootstrap() *Bootstrap {
	return &Bootstrap{done: make(chan struct{})}
}

// Resolve applies a session result. Only the first call takes effect; it
// reports whether this call won.
func (b *Bootstrap) Resolve(s *Session) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.resolved {
		return false
	}
	b.resolved = true
	b.session = s
	close(b.done)
	return true
}

// Done is closed once the bootstrap has a single authoritative result.
// Consumers that depend on the session (the first dashboard derivation
// included) wait on it rather than racing the sources themselves.
func (b *Bootstrap) Done() <-chan struct{} {
	return b.done
}

// Session returns the resolved session, nil when unauthenticated or not yet
// resolved.
func (b *Bootstrap) Session() *Session {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.session
}

// Run races the immediate probe against the event stream until the first
// result lands or ctx ends. It returns once the bootstrap is resolved.
func (b *Bootstrap) Run(ctx context.Context, probe func(context.Context) (*Session, error), events <-chan SessionEvent) {
	go func() {
		s, err := probe(ctx)
		if err != nil {
			// A failed probe resolves to unauthenticated rather than
			// leaving the bootstrap hanging.
			log.Printf("session probe failed: %v", err)
			b.Resolve(nil)
			return
		}
		b.Resolve(s)
	}()

	go func() {
		for {
			select {
			case <-ctx.Done():
				b.Resolve(nil)
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				b.Resolve(ev.Session)
				return
			}
		}
	}()

	select {
	case <-b.done:
	case <-ctx.Done():
		b.Resolve(nil)
	}
}

// sessionChannel is the redis pub/sub channel carrying auth state changes;
// sessionKey holds the last known session snapshot for the bootstrap probe.
const (
	sessionChannel = "auth:events"
	sessionKey     = "auth:session"
)

// ProbeSession fetches the stored session snapshot. A missing key means
// unauthenticated, not an error.
func ProbeSession(ctx context.Context, rdb *redis.Client) (*Session, error) {
	payload, err := rdb.Get(ctx, sessionKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var s Session
	if err := json.Unmarshal([]byte(payload), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// StoreSession persists the snapshot the probe reads and notifies listeners.
// A nil session clears the snapshot (sign-out).
func StoreSession(ctx context.Context, rdb *redis.Client, ev SessionEvent) error {
	if ev.Session == nil {
		if err := rdb.Del(ctx, sessionKey).Err(); err != nil {
			return err
		}
		return PublishSessionEvent(ctx, rdb, ev)
	}
	payload, err := json.Marshal(ev.Session)
	if err != nil {
		return err
	}
	if err := rdb.Set(ctx, sessionKey, payload, 0).Err(); err != nil {
		return err
	}
	return PublishSessionEvent(ctx, rdb, ev)
}

// ListenSessionEvents subscribes to auth state changes. The channel closes
// when ctx ends. Malformed payloads are skipped.
func ListenSessionEvents(ctx context.Context, rdb *redis.Client) <-chan SessionEvent {
	sub := rdb.Subscribe(ctx, sessionChannel)
	out := make(chan SessionEvent)

	go func() {
		defer close(out)
		defer sub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-sub.Channel():
				if !ok {
					return
				}
				var ev SessionEvent
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					log.Printf("dropping malformed session event: %v", err)
					continue
				}
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

// PublishSessionEvent notifies listeners of a sign-in or sign-out.
func PublishSessionEvent(ctx context.Context, rdb *redis.Client, ev SessionEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return rdb.Publish(ctx, sessionChannel, payload).Err()
}
