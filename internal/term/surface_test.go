package term

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type fakeRawMode struct {
	ops        []string
	suspendErr error
	resumeErr  error
}

func (f *fakeRawMode) Suspend() error {
	f.ops = append(f.ops, "suspend")
	return f.suspendErr
}

func (f *fakeRawMode) Resume() error {
	f.ops = append(f.ops, "resume")
	return f.resumeErr
}

type failingWriter struct {
	err error
}

func (w failingWriter) Write(p []byte) (int, error) {
	return 0, w.err
}

func TestClearAndRender(t *testing.T) {
	var out bytes.Buffer
	raw := &fakeRawMode{}
	tty := New(&out, raw)

	if err := tty.ClearAndRender("line one\nline two\n"); err != nil {
		t.Fatalf("ClearAndRender() error = %v", err)
	}

	got := out.String()
	if !strings.HasPrefix(got, "\x1b[2J\x1b[H") {
		t.Errorf("output does not start with clear+home: %q", got)
	}
	if !strings.HasSuffix(got, "line one\nline two\n") {
		t.Errorf("output does not end with the rendered text: %q", got)
	}
	if len(raw.ops) != 2 || raw.ops[0] != "suspend" || raw.ops[1] != "resume" {
		t.Errorf("raw mode ops = %v, want [suspend resume]", raw.ops)
	}
}

func TestClearAndRenderResumesAfterWriteFailure(t *testing.T) {
	raw := &fakeRawMode{}
	tty := New(failingWriter{err: errors.New("tty gone")}, raw)

	if err := tty.ClearAndRender("anything"); err == nil {
		t.Fatal("ClearAndRender() expected error, got nil")
	}
	// raw mode must be re-entered even though the write failed
	if len(raw.ops) != 2 || raw.ops[1] != "resume" {
		t.Errorf("raw mode ops = %v, want [suspend resume]", raw.ops)
	}
}

func TestClearAndRenderFailedSuspendWritesNothing(t *testing.T) {
	var out bytes.Buffer
	raw := &fakeRawMode{suspendErr: errors.New("ioctl failed")}
	tty := New(&out, raw)

	if err := tty.ClearAndRender("text"); err == nil {
		t.Fatal("ClearAndRender() expected error, got nil")
	}
	if out.Len() != 0 {
		t.Errorf("nothing should be written after a failed suspend, got %q", out.String())
	}
}

func TestClearAndRenderReportsResumeFailure(t *testing.T) {
	var out bytes.Buffer
	raw := &fakeRawMode{resumeErr: errors.New("ioctl failed")}
	tty := New(&out, raw)

	if err := tty.ClearAndRender("text"); err == nil {
		t.Fatal("ClearAndRender() expected error, got nil")
	}
}

func TestPlaceMarker(t *testing.T) {
	var out bytes.Buffer
	raw := &fakeRawMode{}
	tty := New(&out, raw)

	if err := tty.PlaceMarker(4); err != nil {
		t.Fatalf("PlaceMarker() error = %v", err)
	}
	if got, want := out.String(), "\x1b[4;1H>"; got != want {
		t.Errorf("PlaceMarker output = %q, want %q", got, want)
	}
	if len(raw.ops) != 0 {
		t.Errorf("PlaceMarker must not touch raw mode, ops = %v", raw.ops)
	}
}

func TestLineEditToggles(t *testing.T) {
	raw := &fakeRawMode{}
	tty := New(&bytes.Buffer{}, raw)

	if err := tty.EnterLineEdit(); err != nil {
		t.Fatalf("EnterLineEdit() error = %v", err)
	}
	if err := tty.ResumeInteractive(); err != nil {
		t.Fatalf("ResumeInteractive() error = %v", err)
	}
	if len(raw.ops) != 2 || raw.ops[0] != "suspend" || raw.ops[1] != "resume" {
		t.Errorf("ops = %v, want [suspend resume]", raw.ops)
	}
}

func TestStartStop(t *testing.T) {
	raw := &fakeRawMode{}
	tty := New(&bytes.Buffer{}, raw)

	if err := tty.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := tty.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	if len(raw.ops) != 2 || raw.ops[0] != "resume" || raw.ops[1] != "suspend" {
		t.Errorf("ops = %v, want [resume suspend]", raw.ops)
	}
}
