package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorString(t *testing.T) {
	e := NotFound()
	if !strings.Contains(e.Error(), string(ErrCodeNotFound)) {
		t.Errorf("unexpected message: %s", e.Error())
	}

	withCause := New(ErrCodeServerError, "boom").WithCause(stderrors.New("io failure"))
	if !strings.Contains(withCause.Error(), "io failure") {
		t.Errorf("cause not included: %s", withCause.Error())
	}
}

func TestFromStatus(t *testing.T) {
	cause := stderrors.New("HTTP failure")

	tests := []struct {
		status    int
		code      ErrorCode
		retryable bool
	}{
		{401, ErrCodeUnauthorized, false},
		{403, ErrCodeForbidden, false},
		{404, ErrCodeNotFound, false},
		{408, ErrCodeTimeout, true},
		{409, ErrCodeConflict, false},
		{422, ErrCodeInvalidRecord, false},
		{429, ErrCodeRateLimited, true},
		{500, ErrCodeServerError, true},
		{503, ErrCodeServerError, true},
		{504, ErrCodeTimeout, true},
	}
	for _, tc := range tests {
		e := FromStatus(tc.status, cause)
		if e == nil {
			t.Fatalf("FromStatus(%d) = nil", tc.status)
		}
		if e.Code != tc.code {
			t.Errorf("FromStatus(%d).Code = %s, want %s", tc.status, e.Code, tc.code)
		}
		if e.Retryable != tc.retryable {
			t.Errorf("FromStatus(%d).Retryable = %v, want %v", tc.status, e.Retryable, tc.retryable)
		}
		if e.StatusCode != tc.status {
			t.Errorf("FromStatus(%d).StatusCode = %d", tc.status, e.StatusCode)
		}
		if !stderrors.Is(e, cause) {
			t.Errorf("FromStatus(%d) should wrap the cause", tc.status)
		}
	}
}

func TestFromStatusKeepsUnmappedStatuses(t *testing.T) {
	for _, status := range []int{400, 410, 418} {
		if e := FromStatus(status, stderrors.New("HTTP failure")); e != nil {
			t.Errorf("FromStatus(%d) = %v, want nil", status, e)
		}
	}
}

func TestRetryableCodes(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want bool
	}{
		{ErrCodeTimeout, true},
		{ErrCodeConnectionFailed, true},
		{ErrCodeRateLimited, true},
		{ErrCodeServerError, true},
		{ErrCodeNotFound, false},
		{ErrCodeInvalidRecord, false},
		{ErrCodeSerialization, false},
	}
	for _, tc := range tests {
		if got := IsRetryableCode(tc.code); got != tc.want {
			t.Errorf("IsRetryableCode(%s) = %v, want %v", tc.code, got, tc.want)
		}
	}
}

func TestAsErrorUnwrapsChain(t *testing.T) {
	inner := Conflict("version mismatch")
	wrapped := fmt.Errorf("saving record: %w", inner)

	e, ok := AsError(wrapped)
	if !ok {
		t.Fatal("expected AsError to find *Error in chain")
	}
	if e.Code != ErrCodeConflict {
		t.Errorf("expected CONFLICT, got %s", e.Code)
	}
	if IsRetryable(wrapped) {
		t.Error("conflict must not be retryable")
	}
}

func TestValidationErrorMessageIsDeterministic(t *testing.T) {
	v := NewValidationError(map[string][]string{
		"name": {"can't be blank"},
		"age":  {"must be positive", "must be an integer"},
	})

	want := "record is invalid: age must be positive, must be an integer; name can't be blank"
	for range 5 {
		if got := v.Error(); got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	}
}

func TestValidationErrorAdd(t *testing.T) {
	var v ValidationError
	v.Add("email", "is invalid").Add("email", "is taken")

	if !v.HasField("email") {
		t.Fatal("expected email field errors")
	}
	if len(v.Fields["email"]) != 2 {
		t.Errorf("expected 2 messages, got %d", len(v.Fields["email"]))
	}
}

func TestIsValidation(t *testing.T) {
	err := fmt.Errorf("create: %w", NewValidationError(nil))
	if !IsValidation(err) {
		t.Error("expected IsValidation to match wrapped ValidationError")
	}
	if IsValidation(stderrors.New("plain")) {
		t.Error("plain error must not match")
	}

	v, ok := AsValidation(err)
	if !ok || v == nil {
		t.Fatal("expected AsValidation to extract the error")
	}
}

func TestEmptyValidationErrorMessage(t *testing.T) {
	v := NewValidationError(nil)
	if v.Error() != "record is invalid" {
		t.Errorf("unexpected message: %s", v.Error())
	}
}
