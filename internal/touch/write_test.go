package touch_test

import (
	"io/fs"
	"testing"
	"time"

	"touchp-go/internal/apperr"
	"touchp-go/internal/testutil"
	"touchp-go/internal/touch"
)

func TestEngine_WriteAll(t *testing.T) {
	setup := func(t *testing.T) (*touch.Engine, *testutil.StubFilesystem, *testutil.StubClock) {
		t.Helper()
		fsys := testutil.NewStubFilesystem()
		clock := testutil.FixedClock()
		fsys.Now = clock.Now
		engine := touch.NewEngine(fsys, clock, touch.FreeformDateParser{}, touch.NewNopLogger())
		return engine, fsys, clock
	}

	t.Run("writes content verbatim to every file", func(t *testing.T) {
		t.Parallel()
		engine, fsys, _ := setup(t)
		fsys.AddFile("/a.txt", []byte("old"))
		fsys.AddFile("/b.txt", nil)

		content := "line one\nline two\n\ttabbed, ünïcode ok\n"
		results := engine.WriteAll([]string{"/a.txt", "/b.txt"}, content)

		if len(results) != 2 {
			t.Fatalf("got %d results, want 2", len(results))
		}
		for _, r := range results {
			if r.Err != nil {
				t.Errorf("WriteAll() error for %s = %v", r.Path, r.Err)
			}
		}
		for _, path := range []string{"/a.txt", "/b.txt"} {
			if got := string(fsys.File(path).Content); got != content {
				t.Errorf("content of %s = %q, want %q", path, got, content)
			}
		}
	})

	t.Run("empty content truncates", func(t *testing.T) {
		t.Parallel()
		engine, fsys, _ := setup(t)
		fsys.AddFile("/a.txt", []byte("something"))

		results := engine.WriteAll([]string{"/a.txt"}, "")

		if results[0].Err != nil {
			t.Fatalf("WriteAll() error = %v", results[0].Err)
		}
		if got := len(fsys.File("/a.txt").Content); got != 0 {
			t.Errorf("content length = %d, want 0", got)
		}
	})

	t.Run("one failing write does not stop the rest", func(t *testing.T) {
		t.Parallel()
		engine, fsys, _ := setup(t)
		fsys.AddFile("/ok.txt", nil)
		fsys.AddFile("/denied.txt", nil)
		fsys.FailWrite["/denied.txt"] = fs.ErrPermission

		results := engine.WriteAll([]string{"/denied.txt", "/ok.txt"}, "pasted")

		if results[0].Err == nil {
			t.Fatal("expected error for /denied.txt")
		}
		if !apperr.Is(results[0].Err, apperr.CodePermission) {
			t.Errorf("error code = %v, want %v", apperr.CodeOf(results[0].Err), apperr.CodePermission)
		}
		if results[1].Err != nil {
			t.Errorf("WriteAll() error for /ok.txt = %v", results[1].Err)
		}
		if got := string(fsys.File("/ok.txt").Content); got != "pasted" {
			t.Errorf("content = %q, want %q", got, "pasted")
		}
	})

	t.Run("writing refreshes the modification time", func(t *testing.T) {
		t.Parallel()
		engine, fsys, clock := setup(t)
		fsys.AddFile("/a.txt", nil)
		fsys.SetTimes("/a.txt", clock.Now(), clock.Now())

		clock.Advance(2 * time.Hour)
		engine.WriteAll([]string{"/a.txt"}, "later")

		if got := fsys.File("/a.txt").ModTime; !got.Equal(clock.Now()) {
			t.Errorf("ModTime = %v, want %v", got, clock.Now())
		}
	})
}
