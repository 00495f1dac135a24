package shape

import (
	"errors"
	"testing"

	"github.com/danmuck/shapectl/internal/testutil/testlog"
)

func TestCacheCreatesOnce(t *testing.T) {
	testlog.Start(t)
	created := 0
	r := NewRegistry()
	if err := r.Register(Circle, func() Shape {
		created++
		return NewCircle()
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	c := NewCache(r)
	first, err := c.Resolve(Circle)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	second, err := c.Resolve(Circle)
	if err != nil {
		t.Fatalf("resolve again: %v", err)
	}
	if created != 1 {
		t.Fatalf("expected one factory call, got %d", created)
	}
	if first != second {
		t.Fatalf("expected cached instance to be reused")
	}
}

func TestCacheFailedCreateCachesNothing(t *testing.T) {
	testlog.Start(t)
	c := NewCache(NewRegistry())
	if _, err := c.Resolve(Square); !errors.Is(err, ErrKindNotRegistered) {
		t.Fatalf("expected ErrKindNotRegistered, got %v", err)
	}
	if c.Cached(Square) {
		t.Fatalf("failed create must not populate the cache")
	}
}
