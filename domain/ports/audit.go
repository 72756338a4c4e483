package ports

// AuditHandler observes evaluation outcomes. Implementations can log,
// collect metrics, or take other actions; the evaluator itself stays pure.
type AuditHandler interface {
	// OnDecision is called after each evaluation.
	// kind: "inject", "capability", "resource"
	// subject: the evaluated URL, capability, or resource name
	// outcome: human-readable outcome including the deciding pattern
	OnDecision(kind string, subject any, outcome string)
}
