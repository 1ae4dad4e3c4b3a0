package errors

import (
	stdlib "errors"
	"fmt"
	"testing"
)

func TestABCIInfo(t *testing.T) {
	cases := map[string]struct {
		err      error
		debug    bool
		wantCode uint32
		wantLog  string
	}{
		"plain registered error": {
			err:      ErrNotFound,
			wantCode: ErrNotFound.code,
			wantLog:  "not found",
		},
		"wrapped registered error": {
			err:      Wrap(Wrap(ErrUnauthorized, "offerer"), "init"),
			wantCode: ErrUnauthorized.code,
			wantLog:  "init: offerer: unauthorized",
		},
		"nil is success": {
			err:      nil,
			wantCode: SuccessABCICode,
			wantLog:  "",
		},
		"nil error instance is success": {
			err:      (*Error)(nil),
			wantCode: SuccessABCICode,
			wantLog:  "",
		},
		"stdlib error is redacted": {
			err:      stdlib.New("disk on fire"),
			wantCode: internalABCICode,
			wantLog:  internalABCILog,
		},
		"wrapped stdlib error is redacted": {
			err:      Wrap(fmt.Errorf("disk on fire"), "store"),
			wantCode: internalABCICode,
			wantLog:  internalABCILog,
		},
		"stdlib error in debug mode is exposed": {
			err:      stdlib.New("disk on fire"),
			debug:    true,
			wantCode: internalABCICode,
			wantLog:  "disk on fire",
		},
		"group reports first member code": {
			err:      Append(ErrEmpty, ErrInput),
			wantCode: ErrEmpty.code,
			wantLog:  "2 errors occurred:\n\t* value is empty\n\t* invalid input",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			code, log := ABCIInfo(tc.err, tc.debug)
			if code != tc.wantCode {
				t.Errorf("want %d code, got %d", tc.wantCode, code)
			}
			if log != tc.wantLog {
				t.Errorf("want %q log, got %q", tc.wantLog, log)
			}
		})
	}
}

func TestABCIError(t *testing.T) {
	if err := ABCIError(SuccessABCICode, ""); err != nil {
		t.Fatalf("success must not be an error: %v", err)
	}
	if err := ABCIError(ErrDuplicate.code, "escrow"); !ErrDuplicate.Is(err) {
		t.Fatalf("want duplicate, got %v", err)
	}
	err := ABCIError(987654, "mystery")
	if code, _ := ABCIInfo(err, false); code != 987654 {
		t.Fatalf("unknown code not preserved: %d", code)
	}
}

func TestRedact(t *testing.T) {
	cases := map[string]struct {
		err      error
		debug    bool
		redacted bool
	}{
		"registered error is kept": {
			err: Wrap(ErrState, "funding"),
		},
		"panic is redacted": {
			err:      Wrap(ErrPanic, "stack overflow"),
			redacted: true,
		},
		"stdlib error is redacted": {
			err:      stdlib.New("secret path"),
			redacted: true,
		},
		"debug keeps everything": {
			err:   stdlib.New("secret path"),
			debug: true,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got := Redact(tc.err, tc.debug)
			if tc.redacted {
				if got.Error() != internalABCILog {
					t.Fatalf("not redacted: %v", got)
				}
				return
			}
			if got != tc.err {
				t.Fatalf("unexpected change: %v", got)
			}
		})
	}
}
