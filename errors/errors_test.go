package errors

import (
	stdlib "errors"
	"fmt"
	"strings"
	"testing"
)

func TestIs(t *testing.T) {
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
		"two different errors": {
			a:      ErrNotFound,
			b:      ErrUnauthorized,
			wantIs: false,
		},
		"wrapped error": {
			a:      ErrNotFound,
			b:      Wrap(ErrNotFound, "escrow"),
			wantIs: true,
		},
		"doubly wrapped error": {
			a:      ErrState,
			b:      Wrap(Wrapf(ErrState, "custody %d", 1), "settle"),
			wantIs: true,
		},
		"wrapped different error": {
			a:      ErrState,
			b:      Wrap(ErrAmount, "settle"),
			wantIs: false,
		},
		"stdlib error is never a registered one": {
			a:      ErrInput,
			b:      stdlib.New("input"),
			wantIs: false,
		},
		"nil matches nil": {
			a:      nil,
			b:      nil,
			wantIs: true,
		},
		"nil error instance matches nil": {
			a:      nil,
			b:      (*Error)(nil),
			wantIs: true,
		},
		"nil does not match an error": {
			a:      nil,
			b:      ErrEmpty,
			wantIs: false,
		},
		"group with a matching member": {
			a:      ErrEmpty,
			b:      Append(ErrInput, Wrap(ErrEmpty, "holding")),
			wantIs: true,
		},
		"group without a matching member": {
			a:      ErrAmount,
			b:      Append(ErrInput, ErrEmpty),
			wantIs: false,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.a.Is(tc.b); got != tc.wantIs {
				t.Fatalf("unexpected result: %v", got)
			}
		})
	}
}

func TestRegisterDuplicatedCode(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("registering a used code must panic")
		}
	}()
	Register(ErrNotFound.ABCICode(), "again")
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "nothing"); err != nil {
		t.Fatalf("want nil, got %v", err)
	}
	if err := Wrapf(nil, "nothing %d", 1); err != nil {
		t.Fatalf("want nil, got %v", err)
	}
}

func TestWrapMessage(t *testing.T) {
	err := Wrap(Wrapf(ErrOverflow, "amount %d", 7), "transfer")
	const want = "transfer: amount 7: an operation cannot be completed due to value overflow"
	if got := err.Error(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestStackTraceIsAttachedOnce(t *testing.T) {
	err := Wrap(Wrap(ErrHuman, "inner"), "outer")
	if stackTrace(err) == nil {
		t.Fatal("stack trace missing")
	}
	full := fmt.Sprintf("%+v", err)
	if !strings.Contains(full, "TestStackTraceIsAttachedOnce") {
		t.Fatalf("stack trace does not point to the test function: %s", full)
	}
	if short := fmt.Sprintf("%v", err); short != err.Error() {
		t.Fatalf("short form must not contain the stack: %s", short)
	}
}

func TestRecover(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err)
		panic("boom")
	}
	err := fn()
	if !ErrPanic.Is(err) {
		t.Fatalf("want panic error, got %v", err)
	}
}

func TestWithType(t *testing.T) {
	err := WithType(ErrType, 42)
	if !ErrType.Is(err) {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(err.Error(), "int:") {
		t.Fatalf("type not in message: %s", err)
	}
}
