package shape

import (
	"errors"
	"reflect"
	"testing"

	"github.com/danmuck/shapectl/internal/testutil/testlog"
)

func TestRegisterAndDuplicate(t *testing.T) {
	testlog.Start(t)
	r := NewRegistry()

	if err := r.Register(Circle, NewCircle); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := r.Register(Circle, NewCircle); !errors.Is(err, ErrKindRegistered) {
		t.Fatalf("expected ErrKindRegistered, got %v", err)
	}

	inst, err := r.New(Circle)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if inst.Kind() != Circle {
		t.Fatalf("expected circle instance, got %v", inst.Kind())
	}
}

func TestNewUnregisteredKind(t *testing.T) {
	testlog.Start(t)
	r := NewRegistry()
	if _, err := r.New(Square); !errors.Is(err, ErrKindNotRegistered) {
		t.Fatalf("expected ErrKindNotRegistered, got %v", err)
	}
}

func TestRegisterNilFactory(t *testing.T) {
	testlog.Start(t)
	r := NewRegistry()
	if err := r.Register(Circle, nil); !errors.Is(err, ErrNilFactory) {
		t.Fatalf("expected ErrNilFactory, got %v", err)
	}
}

// A batch with one collision still commits the non-colliding entries; the
// aggregate error reports the collision.
func TestRegisterAllPartialCommit(t *testing.T) {
	testlog.Start(t)
	r := NewRegistry()
	if err := r.Register(Circle, NewCircle); err != nil {
		t.Fatalf("seed registry: %v", err)
	}

	err := r.RegisterAll(
		Entry{Kind: Circle, Factory: NewCircle},
		Entry{Kind: Triangle, Factory: NewTriangle},
	)
	if !errors.Is(err, ErrKindRegistered) {
		t.Fatalf("expected ErrKindRegistered, got %v", err)
	}

	inst, err := r.New(Triangle)
	if err != nil {
		t.Fatalf("novel entry should have committed: %v", err)
	}
	if inst.Kind() != Triangle {
		t.Fatalf("expected triangle instance, got %v", inst.Kind())
	}
}

func TestBuiltinKindsSorted(t *testing.T) {
	testlog.Start(t)
	r := Builtin()
	got := r.Kinds()
	want := []Kind{Circle, Triangle, Square}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("kinds mismatch: got=%v want=%v", got, want)
	}
}
