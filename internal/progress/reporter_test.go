package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Out: &buf, Task: Probe}
	r.Start(2)
	r.Update(1, "A1")
	r.Update(2, "B1")
	r.Finish()

	out := buf.String()
	for _, want := range []string{"Probing 2 sarees", "[1/2] A1", "[2/2] B1", "Done: 2 sarees in"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestNewReporter(t *testing.T) {
	t.Setenv("CI", "true")
	if r, ok := NewReporter(Verify, true).(*CIReporter); !ok {
		t.Error("expected CIReporter when CI is set")
	} else if r.Task != Verify {
		t.Errorf("task = %+v, want Verify", r.Task)
	}
	if _, ok := NewReporter(Probe, false).(Nop); !ok {
		t.Error("expected Nop when disabled")
	}

	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	if _, ok := NewReporter(Probe, true).(*TerminalReporter); !ok {
		t.Error("expected TerminalReporter outside CI")
	}
}

func TestTerminalReporterBeforeStart(t *testing.T) {
	// Update and Finish before Start must not panic.
	r := &TerminalReporter{Task: Probe}
	r.Update(1, "A1")
	r.Finish()
}
