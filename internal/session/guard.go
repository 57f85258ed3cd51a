package session

import "github.com/LEEJEHEON/moneycheck/internal/common"

// Guard checks for a persisted identity on mount and tears the session
// down on logout. Requests issued while logged in are stamped with the
// epoch current at issue time; a response whose epoch no longer matches
// belongs to a session that has since ended and must be discarded.
type Guard struct {
	store    *Store
	identity *Identity
	epoch    uint64
}

// NewGuard creates a guard over the given identity store.
func NewGuard(store *Store) *Guard {
	return &Guard{store: store}
}

// Mount reads the persisted identity once. Absent identity means the user
// must log in; the guard does not retry.
func (g *Guard) Mount() (*Identity, error) {
	id, err := g.store.Load()
	if err != nil {
		return nil, err
	}
	g.identity = id
	return id, nil
}

// Identity returns the mounted identity, or nil before Mount or after
// Logout.
func (g *Guard) Identity() *Identity {
	return g.identity
}

// Epoch returns the current session epoch for stamping outbound requests.
func (g *Guard) Epoch() uint64 {
	return g.epoch
}

// Stale reports whether a response stamped with the given epoch arrived
// after the session it belongs to ended.
func (g *Guard) Stale(epoch uint64) bool {
	return epoch != g.epoch
}

// Logout clears all persisted identity state and invalidates in-flight
// requests, regardless of whether any are outstanding.
func (g *Guard) Logout() error {
	g.identity = nil
	g.epoch++
	return g.store.Clear()
}

// Authenticated reports whether an identity is mounted.
func (g *Guard) Authenticated() bool {
	return g.identity != nil
}

// RequireIdentity returns the mounted identity or ErrNoIdentity.
func (g *Guard) RequireIdentity() (*Identity, error) {
	if g.identity == nil {
		return nil, common.ErrNoIdentity
	}
	return g.identity, nil
}
