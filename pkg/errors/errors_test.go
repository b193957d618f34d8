// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/classorg/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "invalid_pattern_error",
			code:    errors.ErrInvalidPattern,
			message: "cannot compile pattern",
			wantStr: "[INVALID_PATTERN] cannot compile pattern",
		},
		{
			name:    "missing_projection_error",
			code:    errors.ErrMissingProjection,
			message: "no string projection available",
			wantStr: "[MISSING_PROJECTION] no string projection available",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	t.Run("wraps_underlying_error", func(t *testing.T) {
		inner := stderrors.New("missing closing bracket")
		err := errors.Wrapf(inner, errors.ErrInvalidPattern, "cannot compile group pattern %q", "[a-")

		if !stderrors.Is(err, inner) {
			t.Error("wrapped error should match errors.Is on the inner error")
		}

		want := `[INVALID_PATTERN] cannot compile group pattern "[a-": missing closing bracket`
		if got := err.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})

	t.Run("wrap_nil_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "should vanish"); err != nil {
			t.Errorf("Wrap(nil) = %v, want nil", err)
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	err := errors.New(errors.ErrConfigParse, "bad toml")

	if !errors.IsErrorCode(err, errors.ErrConfigParse) {
		t.Error("IsErrorCode should match the error's own code")
	}

	if errors.IsErrorCode(err, errors.ErrConfigLoad) {
		t.Error("IsErrorCode should not match a different code")
	}

	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrConfigParse) {
		t.Error("IsErrorCode should not match a plain error")
	}
}

func TestGetErrorCode(t *testing.T) {
	t.Run("structured_error", func(t *testing.T) {
		err := errors.Newf(errors.ErrMissingProjection, "values of type %T need a key function", 42)
		if got := errors.GetErrorCode(err); got != errors.ErrMissingProjection {
			t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrMissingProjection)
		}
	})

	t.Run("plain_error", func(t *testing.T) {
		if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
			t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrUnknown)
		}
	})

	t.Run("wrapped_structured_error", func(t *testing.T) {
		inner := errors.New(errors.ErrInvalidPattern, "bad pattern")
		outer := errors.Wrap(inner, errors.ErrConfigValid, "config rejected")
		if got := errors.GetErrorCode(outer); got != errors.ErrConfigValid {
			t.Errorf("GetErrorCode() = %v, want outer code %v", got, errors.ErrConfigValid)
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrInvalidPattern, "cannot compile").
		WithDetail("pattern", "[a-").
		WithDetail("position", 3)

	if err.Details["pattern"] != "[a-" {
		t.Errorf("Details[pattern] = %v, want %q", err.Details["pattern"], "[a-")
	}
	if err.Details["position"] != 3 {
		t.Errorf("Details[position] = %v, want 3", err.Details["position"])
	}
}
