// Package controller holds the pure state machines behind the dashboard
// views: the per-view entity list, the bulk-selection set, the create/edit
// session, and the role-gated view router. None of them perform I/O; the
// TUI layer issues the network calls and feeds results back in.
package controller

// RequestToken identifies one list request. A newer request supersedes all
// older ones issued by the same controller.
type RequestToken uint64

// List holds the current collection for one view plus its loading and
// error flags. Results are committed in issuance order: each Begin bumps
// the token, and Commit applies a result only if its token is still the
// latest, so a late-arriving stale response can never overwrite state set
// by a newer request.
type List[T any] struct {
	err     error
	items   []T
	seq     RequestToken
	loading bool
}

// Begin marks the list as loading and returns the token the eventual
// result must present to Commit. Used both for view entry and for the
// refresh after a mutation.
func (l *List[T]) Begin() RequestToken {
	l.seq++
	l.loading = true
	l.err = nil
	return l.seq
}

// Commit applies a fetch result. Stale tokens are ignored and Commit
// reports false. On error the previous items are kept; stale-but-visible
// beats a partially rendered broken list.
func (l *List[T]) Commit(token RequestToken, items []T, err error) bool {
	if token != l.seq {
		return false
	}

	l.loading = false
	if err != nil {
		l.err = err
		return true
	}

	l.items = items
	l.err = nil
	return true
}

// Items returns the current collection.
func (l *List[T]) Items() []T {
	return l.items
}

// Loading reports whether a fetch is outstanding.
func (l *List[T]) Loading() bool {
	return l.loading
}

// Err returns the error from the most recent failed fetch, if any.
func (l *List[T]) Err() error {
	return l.err
}

// Loaded reports whether the list has committed at least one successful
// fetch or currently holds items.
func (l *List[T]) Loaded() bool {
	return l.items != nil
}
