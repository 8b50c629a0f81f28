package errors

import (
	"fmt"
	"testing"
)

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		a      *Error
		b      error
		wantIs bool
	}{
		"instance of the same error": {
			a:      ErrNotFound,
			b:      ErrNotFound,
			wantIs: true,
		},
		"two different coded errors": {
			a:      ErrNotFound,
			b:      ErrState,
			wantIs: false,
		},
		"successful comparison to a wrapped error": {
			a:      ErrNotFound,
			b:      Wrap(ErrNotFound, "gone"),
			wantIs: true,
		},
		"unsuccessful comparison to a wrapped error": {
			a:      ErrNotFound,
			b:      Wrap(ErrAmount, "too big"),
			wantIs: false,
		},
		"not equal to stdlib error": {
			a:      ErrNotFound,
			b:      fmt.Errorf("stdlib error"),
			wantIs: false,
		},
		"not equal to a wrapped stdlib error": {
			a:      ErrNotFound,
			b:      Wrap(fmt.Errorf("stdlib error"), "wrapped"),
			wantIs: false,
		},
		"nil is nil": {
			a:      nil,
			b:      nil,
			wantIs: true,
		},
		"nil is any error nil": {
			a:      nil,
			b:      (*customError)(nil),
			wantIs: true,
		},
		"nil is not a non-nil error": {
			a:      nil,
			b:      ErrNotFound,
			wantIs: false,
		},
		"multi-level wrapping": {
			a:      ErrExpired,
			b:      Wrap(Wrap(ErrExpired, "inner"), "outer"),
			wantIs: true,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.a.Is(tc.b); got != tc.wantIs {
				t.Fatalf("unexpected result - got:%v want: %v", got, tc.wantIs)
			}
		})
	}
}

type customError struct{}

func (customError) Error() string {
	return "custom error"
}

func TestWrapEmpty(t *testing.T) {
	if err := Wrap(nil, "wrapping <nil>"); err != nil {
		t.Fatal(err)
	}
}

func TestWrappedIs(t *testing.T) {
	err := Wrap(ErrDuplicate, "cannot mint")
	if !ErrDuplicate.Is(err) {
		t.Fatal("expected ErrDuplicate kind")
	}

	err = Wrap(err, "payload")
	if !ErrDuplicate.Is(err) {
		t.Fatal("expected ErrDuplicate kind")
	}

	if ErrNotFound.Is(err) {
		t.Fatal("unexpected ErrNotFound kind")
	}
}

func TestWrappedErrorMessage(t *testing.T) {
	err := Wrap(ErrNotFound, "outer context")
	const want = "outer context: not found"
	if got := err.Error(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestWrapPreservesStack(t *testing.T) {
	err := Wrap(ErrNotFound, "inner")
	st := stackTrace(err)
	if st == nil {
		t.Fatal("stack trace not attached")
	}

	// Wrapping the second time must not overwrite the original trace.
	err = Wrap(err, "outer")
	if got := stackTrace(err); fmt.Sprintf("%v", got) != fmt.Sprintf("%v", st) {
		t.Fatal("stack trace overwritten by the outer wrap")
	}
}

func TestRecover(t *testing.T) {
	var err error
	func() {
		defer Recover(&err)
		panic("totally unexpected")
	}()
	if !ErrPanic.Is(err) {
		t.Fatalf("want ErrPanic, got %+v", err)
	}
}

func TestRegisterDuplicateCodePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	// Code 2 belongs to ErrUnauthorized.
	Register(2, "duplicate code")
}

func TestErrorCode(t *testing.T) {
	if code := ErrUnauthorized.Code(); code != 2 {
		t.Fatalf("want 2, got %d", code)
	}
}
