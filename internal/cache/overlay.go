package cache

// Overlay layers optimistic local patches on top of the last-known
// server snapshot. Patches are applied in order on read and discarded
// wholesale when the next confirmed snapshot arrives — the server wins
// regardless of whether the intervening write succeeded.
//
// Screens use this for like/bookmark style toggles: flip locally,
// fire the write, re-fetch, reconcile.
type Overlay[T any] struct {
	base    T
	hasBase bool
	patches []func(T) T
}

// Confirm installs a server-confirmed snapshot and drops all pending
// patches.
func (o *Overlay[T]) Confirm(v T) {
	o.base = v
	o.hasBase = true
	o.patches = nil
}

// Apply records an optimistic patch over the current snapshot.
func (o *Overlay[T]) Apply(patch func(T) T) {
	o.patches = append(o.patches, patch)
}

// Value returns the snapshot with pending patches applied. ok is false
// if no snapshot has been confirmed yet.
func (o *Overlay[T]) Value() (v T, ok bool) {
	if !o.hasBase {
		return v, false
	}
	v = o.base
	for _, p := range o.patches {
		v = p(v)
	}
	return v, true
}

// Dirty reports whether unconfirmed patches are pending.
func (o *Overlay[T]) Dirty() bool {
	return len(o.patches) > 0
}
