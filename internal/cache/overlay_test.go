package cache

import "testing"

type post struct {
	ID    string
	Likes int
	Liked bool
}

func TestValueWithoutBase(t *testing.T) {
	var o Overlay[[]post]
	if _, ok := o.Value(); ok {
		t.Fatal("expected no value before Confirm")
	}
}

func TestPatchesApplyInOrder(t *testing.T) {
	var o Overlay[int]
	o.Confirm(10)
	o.Apply(func(v int) int { return v + 5 })
	o.Apply(func(v int) int { return v * 2 })

	v, ok := o.Value()
	if !ok {
		t.Fatal("expected a value")
	}
	if v != 30 {
		t.Fatalf("expected (10+5)*2 = 30, got %d", v)
	}
}

func TestConfirmDiscardsPendingPatches(t *testing.T) {
	var o Overlay[[]post]
	o.Confirm([]post{{ID: "p1", Likes: 3}})

	o.Apply(func(ps []post) []post {
		out := make([]post, len(ps))
		copy(out, ps)
		out[0].Liked = true
		out[0].Likes++
		return out
	})
	if !o.Dirty() {
		t.Fatal("expected pending patch")
	}

	// The next confirmed snapshot wins, even though it contradicts the
	// optimistic patch (the write may have failed server-side).
	o.Confirm([]post{{ID: "p1", Likes: 3, Liked: false}})

	v, _ := o.Value()
	if v[0].Liked || v[0].Likes != 3 {
		t.Fatalf("server snapshot must win: %+v", v[0])
	}
	if o.Dirty() {
		t.Fatal("patches must be discarded on Confirm")
	}
}

func TestBaseIsNotMutatedByPatches(t *testing.T) {
	var o Overlay[[]post]
	o.Confirm([]post{{ID: "p1", Likes: 1}})

	o.Apply(func(ps []post) []post {
		out := make([]post, len(ps))
		copy(out, ps)
		out[0].Likes = 99
		return out
	})

	v1, _ := o.Value()
	if v1[0].Likes != 99 {
		t.Fatalf("patched view: got %d", v1[0].Likes)
	}

	o.Confirm([]post{{ID: "p1", Likes: 2}})
	v2, _ := o.Value()
	if v2[0].Likes != 2 {
		t.Fatalf("fresh snapshot: got %d", v2[0].Likes)
	}
}
