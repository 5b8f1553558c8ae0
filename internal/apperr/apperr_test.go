package apperr_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"touchp-go/internal/apperr"
)

func TestError_Error(t *testing.T) {
	t.Parallel()

	t.Run("without cause", func(t *testing.T) {
		t.Parallel()
		err := apperr.New(apperr.CodeInvalidDate, "cannot parse date %q", "not-a-date")
		want := `[INVALID_DATE_FORMAT] cannot parse date "not-a-date"`
		if got := err.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})

	t.Run("with cause", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("permission denied")
		err := apperr.Wrap(apperr.CodePermission, cause, "cannot create %q", "/etc/hosts")
		want := `[PERMISSION_DENIED] cannot create "/etc/hosts": permission denied`
		if got := err.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})
}

func TestError_Unwrap(t *testing.T) {
	t.Parallel()

	err := apperr.Wrap(apperr.CodeFilesystem, fs.ErrNotExist, "cannot touch %q", "/tmp/x")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("expected errors.Is to match the wrapped sentinel")
	}
}

func TestIs(t *testing.T) {
	t.Parallel()

	t.Run("matches direct error", func(t *testing.T) {
		t.Parallel()
		err := apperr.New(apperr.CodeReferenceNotFound, "failed to get attributes of %q", "ref.txt")
		if !apperr.Is(err, apperr.CodeReferenceNotFound) {
			t.Error("expected Is to match the error's own code")
		}
		if apperr.Is(err, apperr.CodePermission) {
			t.Error("expected Is to reject a different code")
		}
	})

	t.Run("matches through wrapping", func(t *testing.T) {
		t.Parallel()
		inner := apperr.New(apperr.CodeInvalidStamp, "cannot parse timestamp %q", "99")
		err := fmt.Errorf("resolving requested times: %w", inner)
		if !apperr.Is(err, apperr.CodeInvalidStamp) {
			t.Error("expected Is to see through fmt.Errorf wrapping")
		}
	})

	t.Run("outermost classification wins", func(t *testing.T) {
		t.Parallel()
		inner := apperr.New(apperr.CodeReferenceNotFound, "failed to get attributes of %q", "ref.txt")
		outer := apperr.Wrap(apperr.CodeFilesystem, inner, "resolving requested times")
		if !apperr.Is(outer, apperr.CodeFilesystem) {
			t.Error("expected Is to match the outer code")
		}
		if apperr.Is(outer, apperr.CodeReferenceNotFound) {
			t.Error("expected the outer code to shadow the inner one")
		}
		if got := apperr.CodeOf(outer); got != apperr.CodeFilesystem {
			t.Errorf("CodeOf() = %q, want the outer %q", got, apperr.CodeFilesystem)
		}
	})

	t.Run("rejects plain errors and nil", func(t *testing.T) {
		t.Parallel()
		if apperr.Is(errors.New("boom"), apperr.CodeFilesystem) {
			t.Error("expected Is to reject an unclassified error")
		}
		if apperr.Is(nil, apperr.CodeFilesystem) {
			t.Error("expected Is to reject nil")
		}
	})
}

func TestCodeOf(t *testing.T) {
	t.Parallel()

	if got := apperr.CodeOf(apperr.New(apperr.CodeNoTerminal, "stdout is not a terminal")); got != apperr.CodeNoTerminal {
		t.Errorf("CodeOf() = %q, want %q", got, apperr.CodeNoTerminal)
	}
	if got := apperr.CodeOf(errors.New("boom")); got != apperr.CodeFilesystem {
		t.Errorf("CodeOf() = %q, want %q", got, apperr.CodeFilesystem)
	}
}
