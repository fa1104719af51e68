package service

import (
	"sync"
	"time"
)

// TokenBlacklist is the in-process revocation set. Entries carry the token's
// own expiry instant and never outlive it, so the map stays bounded by the
// token TTL. Contents are lost on restart; revocation is defensive, not the
// sole security boundary.
type TokenBlacklist struct {
	mu      sync.RWMutex
	entries map[string]time.Time
	stop    chan struct{}
	done    chan struct{}
}

// NewTokenBlacklist starts the background sweeper at the given interval.
func NewTokenBlacklist(sweepInterval time.Duration) *TokenBlacklist {
	b := &TokenBlacklist{
		entries: make(map[string]time.Time),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go b.run(sweepInterval)
	return b
}

// Revoke marks the token unusable for exactly the remaining ttl. A zero or
// negative ttl is a no-op: the token is already past its natural expiry.
func (b *TokenBlacklist) Revoke(token string, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	b.mu.Lock()
	b.entries[token] = time.Now().Add(ttl)
	b.mu.Unlock()
}

// IsRevoked reports whether the token is present and not yet expired.
// Expired entries found here are evicted lazily, in addition to the
// periodic sweep.
func (b *TokenBlacklist) IsRevoked(token string) bool {
	b.mu.RLock()
	expireAt, ok := b.entries[token]
	b.mu.RUnlock()
	if !ok {
		return false
	}
	if time.Now().After(expireAt) {
		b.mu.Lock()
		delete(b.entries, token)
		b.mu.Unlock()
		return false
	}
	return true
}

// Len reports the current number of tracked tokens.
func (b *TokenBlacklist) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}

// Stop terminates the sweeper and waits for it to exit.
func (b *TokenBlacklist) Stop() {
	close(b.stop)
	<-b.done
}

func (b *TokenBlacklist) run(interval time.Duration) {
	defer close(b.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			b.sweep()
		case <-b.stop:
			return
		}
	}
}

func (b *TokenBlacklist) sweep() {
	now := time.Now()
	b.mu.Lock()
	for token, expireAt := range b.entries {
		if !expireAt.After(now) {
			delete(b.entries, token)
		}
	}
	b.mu.Unlock()
}
