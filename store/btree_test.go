package store

import (
	"bytes"
	"testing"
)

func TestBTreeCacheGetSet(t *testing.T) {
	base := MemStore()

	k, v := []byte("french"), []byte("fry")

	// Empty read.
	if got, err := base.Get(k); err != nil || got != nil {
		t.Fatalf("want nil, got %q (%v)", got, err)
	}
	if has, err := base.Has(k); err != nil || has {
		t.Fatalf("want false, got %v (%v)", has, err)
	}

	if err := base.Set(k, v); err != nil {
		t.Fatal(err)
	}
	if got, err := base.Get(k); err != nil || !bytes.Equal(got, v) {
		t.Fatalf("want %q, got %q (%v)", v, got, err)
	}
	if has, err := base.Has(k); err != nil || !has {
		t.Fatalf("want true, got %v (%v)", has, err)
	}
}

func TestBTreeCacheWriteCommits(t *testing.T) {
	base := MemStore()
	k, v := []byte("top"), []byte("hat")

	cache := base.CacheWrap()
	if err := cache.Set(k, v); err != nil {
		t.Fatal(err)
	}

	// Not visible in the parent until written.
	if got, _ := base.Get(k); got != nil {
		t.Fatalf("uncommitted write leaked: %q", got)
	}

	if err := cache.Write(); err != nil {
		t.Fatal(err)
	}
	if got, _ := base.Get(k); !bytes.Equal(got, v) {
		t.Fatalf("want %q, got %q", v, got)
	}
}

func TestBTreeCacheDiscardRollsBack(t *testing.T) {
	base := MemStore()
	k, v, v2 := []byte("first"), []byte("second"), []byte("third")

	if err := base.Set(k, v); err != nil {
		t.Fatal(err)
	}

	cache := base.CacheWrap()
	if err := cache.Set(k, v2); err != nil {
		t.Fatal(err)
	}
	if got, _ := cache.Get(k); !bytes.Equal(got, v2) {
		t.Fatalf("want %q, got %q", v2, got)
	}

	cache.Discard()

	// Parent keeps the original value.
	if got, _ := base.Get(k); !bytes.Equal(got, v) {
		t.Fatalf("want %q, got %q", v, got)
	}
}

func TestBTreeCacheDeleteShadowsParent(t *testing.T) {
	base := MemStore()
	k, v := []byte("walrus"), []byte("tusk")

	if err := base.Set(k, v); err != nil {
		t.Fatal(err)
	}

	cache := base.CacheWrap()
	if err := cache.Delete(k); err != nil {
		t.Fatal(err)
	}

	// Deleted in the cache, still present below.
	if got, _ := cache.Get(k); got != nil {
		t.Fatalf("want nil, got %q", got)
	}
	if has, _ := cache.Has(k); has {
		t.Fatal("want false")
	}
	if got, _ := base.Get(k); !bytes.Equal(got, v) {
		t.Fatalf("want %q, got %q", v, got)
	}

	if err := cache.Write(); err != nil {
		t.Fatal(err)
	}
	if got, _ := base.Get(k); got != nil {
		t.Fatalf("want nil after committed delete, got %q", got)
	}
}

func TestBTreeCacheNestedWraps(t *testing.T) {
	base := MemStore()
	k := []byte("nested")

	outer := base.CacheWrap()
	if err := outer.Set(k, []byte("outer")); err != nil {
		t.Fatal(err)
	}

	inner := outer.CacheWrap()
	if err := inner.Set(k, []byte("inner")); err != nil {
		t.Fatal(err)
	}
	inner.Discard()

	if got, _ := outer.Get(k); !bytes.Equal(got, []byte("outer")) {
		t.Fatalf("inner discard affected outer: %q", got)
	}
}

func TestNilKeyPanics(t *testing.T) {
	base := MemStore()
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	_ = base.Set(nil, []byte("boom"))
}
