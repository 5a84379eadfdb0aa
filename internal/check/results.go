// Package check records diagnostic outcomes for package repositories and
// probes the local tools and remote repositories they depend on.
package check

import "github.com/termapps/publisher/internal/messages"

// Severity classifies a failed check.
type Severity int

const (
	// SeverityFail marks an outcome that fails the check command.
	SeverityFail Severity = iota
	// SeverityWarn marks an outcome that is reported but does not fail the command.
	SeverityWarn
)

// Outcome is the result of one named check. An empty Message means it passed.
type Outcome struct {
	Message  string
	Severity Severity
}

// Pass is the outcome of a successful check.
var Pass = Outcome{}

// Failure returns a failing outcome with msg.
func Failure(msg string) Outcome {
	return Outcome{Message: msg, Severity: SeverityFail}
}

// Warning returns a warning outcome with msg.
func Warning(msg string) Outcome {
	return Outcome{Message: msg, Severity: SeverityWarn}
}

// Passed reports whether the check passed.
func (o Outcome) Passed() bool {
	return o.Message == ""
}

// Failed reports whether the outcome fails the check command.
func (o Outcome) Failed() bool {
	return o.Message != "" && o.Severity == SeverityFail
}

// Entry pairs a check name with its outcome in a repository report.
type Entry struct {
	Name    string
	Outcome Outcome
}

// Results accumulates check outcomes for a single check invocation.
//
// Outcomes are memoized by plain check name so a check shared by several
// repositories runs once; each repository keeps its own ordered list of the
// checks it depends on.
type Results struct {
	current string
	checked map[string]Outcome
	perRepo map[string][]string
}

// NewResults returns an empty accumulator.
func NewResults() *Results {
	return &Results{
		checked: make(map[string]Outcome),
		perRepo: make(map[string][]string),
	}
}

// Begin makes repo the repository that subsequent results are attributed to.
func (r *Results) Begin(repo string) {
	r.current = repo
	if _, ok := r.perRepo[repo]; !ok {
		r.perRepo[repo] = nil
	}
}

// HasChecked reports whether name already has an outcome. When it does, the
// memoized check is attributed to the current repository as well.
func (r *Results) HasChecked(name string) bool {
	if _, ok := r.checked[name]; !ok {
		return false
	}
	r.attribute(name)
	return true
}

// AddResult stores outcome for name and attributes it to the current repository.
// A later call for the same name replaces the stored outcome.
func (r *Results) AddResult(name string, outcome Outcome) {
	r.requireCurrent()
	r.checked[name] = outcome
	r.attribute(name)
}

// AddResultWarn records msg for name, as a warning when warn is set and as a
// failure otherwise. An empty msg records a pass.
func (r *Results) AddResultWarn(name string, msg string, warn bool) {
	outcome := Failure(msg)
	if warn {
		outcome.Severity = SeverityWarn
	}
	r.AddResult(name, outcome)
}

// Outcome returns the memoized outcome for name.
func (r *Results) Outcome(name string) (Outcome, bool) {
	outcome, ok := r.checked[name]
	return outcome, ok
}

// Checks returns the names attributed to repo, in the order they were recorded.
func (r *Results) Checks(repo string) []string {
	return append([]string(nil), r.perRepo[repo]...)
}

// Report snapshots the checks attributed to repo with their current outcomes.
func (r *Results) Report(repo string) []Entry {
	names := r.perRepo[repo]
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, Entry{Name: name, Outcome: r.checked[name]})
	}
	return entries
}

// Failed reports whether any entry fails.
func Failed(entries []Entry) bool {
	for _, entry := range entries {
		if entry.Outcome.Failed() {
			return true
		}
	}
	return false
}

func (r *Results) attribute(name string) {
	r.requireCurrent()
	for _, existing := range r.perRepo[r.current] {
		if existing == name {
			return
		}
	}
	r.perRepo[r.current] = append(r.perRepo[r.current], name)
}

// requireCurrent panics when a result is recorded outside a repository context.
func (r *Results) requireCurrent() {
	if r.current == "" {
		panic(messages.CheckNoCurrentRepository)
	}
}
