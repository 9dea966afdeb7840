package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Reporter receives per-saree progress from a catalog build or a
// verification run. It satisfies catalog.Observer.
type Reporter interface {
	Start(total int)
	Update(current int, message string)
	Finish()
}

// Task names a kind of run for the reporter output.
type Task struct {
	Verb string // shown while running, e.g. "Probing"
	Noun string // what is being counted, e.g. "sarees"
}

var (
	Probe  = Task{Verb: "Probing", Noun: "sarees"}
	Verify = Task{Verb: "Verifying", Noun: "sarees"}
)

// NewReporter picks the output for task. CI environments get plain lines,
// terminals get a progress bar, and disabled reporting gets Nop. Output
// goes to stderr so stdout stays machine readable.
func NewReporter(task Task, enabled bool) Reporter {
	switch {
	case !enabled:
		return Nop{}
	case os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "":
		return &CIReporter{Out: os.Stderr, Task: task}
	default:
		return &TerminalReporter{Task: task}
	}
}

// TerminalReporter draws a progress bar labelled with the current id.
type TerminalReporter struct {
	Task Task
	bar  *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription(fmt.Sprintf("%s %s", r.Task.Verb, r.Task.Noun)),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Update(current int, id string) {
	if r.bar == nil {
		return
	}
	r.bar.Describe(fmt.Sprintf("%s %s", r.Task.Verb, id))
	_ = r.bar.Set(current)
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter prints one line per saree and a timed summary.
type CIReporter struct {
	Out  io.Writer
	Task Task

	total   int
	started time.Time
}

func (r *CIReporter) Start(total int) {
	r.total = total
	r.started = time.Now()
	fmt.Fprintf(r.Out, "%s %d %s\n", r.Task.Verb, total, r.Task.Noun)
}

func (r *CIReporter) Update(current int, id string) {
	fmt.Fprintf(r.Out, "[%d/%d] %s\n", current, r.total, id)
}

func (r *CIReporter) Finish() {
	fmt.Fprintf(r.Out, "Done: %d %s in %s\n", r.total, r.Task.Noun, time.Since(r.started).Round(time.Millisecond))
}

// Nop discards progress.
type Nop struct{}

func (Nop) Start(int)          {}
func (Nop) Update(int, string) {}
func (Nop) Finish()            {}
