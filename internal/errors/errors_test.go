package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrap_PreservesCodeAndChain(t *testing.T) {
	base := ConfigInvalid("bad knob")
	wrapped := Wrap(base, "loading configuration")

	if got := GetCode(wrapped); got != CodeConfigInvalid {
		t.Errorf("code = %q, want %q", got, CodeConfigInvalid)
	}
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error should unwrap to its cause")
	}
}

func TestWrap_PlainErrorGetsInternalCode(t *testing.T) {
	wrapped := Wrapf(fmt.Errorf("disk full"), "writing %s", "out.json")

	if got := GetCode(wrapped); got != CodeInternalError {
		t.Errorf("code = %q, want %q", got, CodeInternalError)
	}
	if wrapped.Error() != "writing out.json: disk full" {
		t.Errorf("message = %q", wrapped.Error())
	}
}

func TestWrap_NilPassesThrough(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should be nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should be nil")
	}
	if WithCode(CodeReportError, nil) != nil {
		t.Error("WithCode(nil) should be nil")
	}
}

func TestWithCode_Replaces(t *testing.T) {
	err := WithCode(CodeSegmentsInvalid, fmt.Errorf("unexpected token"))
	if got := GetCode(err); got != CodeSegmentsInvalid {
		t.Errorf("code = %q, want %q", got, CodeSegmentsInvalid)
	}
}

func TestGetCode_UnknownForPlainErrors(t *testing.T) {
	if got := GetCode(fmt.Errorf("plain")); got != "UNKNOWN" {
		t.Errorf("code = %q, want UNKNOWN", got)
	}
}

func TestReportError_NamesFormat(t *testing.T) {
	err := ReportError("xlsx", fmt.Errorf("sheet missing"))
	if got := GetCode(err); got != CodeReportError {
		t.Errorf("code = %q, want %q", got, CodeReportError)
	}
	if err.Error() != "xlsx report failed: sheet missing" {
		t.Errorf("message = %q", err.Error())
	}
}
