package entities

// Verdict is the outcome of an injection evaluation.
type Verdict string

const (
	VerdictInject Verdict = "inject"
	VerdictSkip   Verdict = "skip"
)

// Decision is the result of evaluating an InjectionRule against a navigated
// URL. MatchedPattern and ExcludedBy record which pattern produced the
// outcome, for audit logging only.
type Decision struct {
	Verdict        Verdict
	FrameScope     FrameScope
	RunAt          Timing
	MatchedPattern string
	ExcludedBy     string
}

// Inject reports whether the decision installs the content handler.
func (d Decision) Inject() bool {
	return d.Verdict == VerdictInject
}
