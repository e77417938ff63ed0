package apperror_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/pdfclown/go-common/apperror"
	"github.com/pdfclown/go-common/flag"
)

func TestErrorMessage(t *testing.T) {
	err := apperror.NewError("something went wrong")
	if err.Error() != "something went wrong" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestErrorfMessage(t *testing.T) {
	err := apperror.NewErrorf("parsing %q failed", "1.0")
	if got, want := err.Error(), `parsing "1.0" failed`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestNestedErrors(t *testing.T) {
	err := apperror.NewError("reading failed").AddError(io.EOF)

	if !strings.Contains(err.Error(), io.EOF.Error()) {
		t.Errorf("Error() = %q, want nested EOF", err.Error())
	}
	if !errors.Is(err, io.EOF) {
		t.Error("errors.Is did not find the nested error")
	}
}

func TestWrap(t *testing.T) {
	if apperror.Wrap(nil) != nil {
		t.Error("Wrap(nil) != nil")
	}

	plain := errors.New("plain failure")
	wrapped := apperror.Wrap(plain)
	aerr, ok := wrapped.(apperror.Error)
	if !ok {
		t.Fatalf("Wrap returned %T, want apperror.Error", wrapped)
	}
	if aerr.Message != "plain failure" {
		t.Errorf("Message = %q", aerr.Message)
	}
	if len(aerr.Trace) != 1 {
		t.Errorf("Trace length = %d, want 1", len(aerr.Trace))
	}

	rewrapped := apperror.Wrap(wrapped).(apperror.Error)
	if len(rewrapped.Trace) != 2 {
		t.Errorf("Trace length after rewrap = %d, want 2", len(rewrapped.Trace))
	}
}

func TestDebugTrace(t *testing.T) {
	original := flag.Debug
	t.Cleanup(func() { flag.Debug = original })

	err := apperror.NewError("traced failure")

	flag.Debug = false
	if strings.Contains(err.Error(), "apperror_test.go") {
		t.Error("trace rendered without debug mode")
	}

	flag.Debug = true
	if !strings.Contains(err.Error(), "apperror_test.go") {
		t.Errorf("trace missing in debug mode: %q", err.Error())
	}
}

func TestIs(t *testing.T) {
	err := apperror.NewError("duplicate registration")

	if !errors.Is(err, apperror.NewError("duplicate registration")) {
		t.Error("errors.Is failed for equal messages")
	}
	if errors.Is(err, apperror.NewError("other")) {
		t.Error("errors.Is matched different messages")
	}
}
