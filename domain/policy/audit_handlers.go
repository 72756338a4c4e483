package policy

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/TBM13/ruffle/domain/ports"
)

// Ensure implementations satisfy the interface.
var _ ports.AuditHandler = (*StderrAuditHandler)(nil)
var _ ports.AuditHandler = (*NopAuditHandler)(nil)
var _ ports.AuditHandler = (*SlogAuditHandler)(nil)

// StderrAuditHandler writes every decision to stderr.
type StderrAuditHandler struct{}

func (h *StderrAuditHandler) OnDecision(kind string, subject any, outcome string) {
	fmt.Fprintf(os.Stderr, "Policy Decision [%s]: %v (%s)\n", kind, subject, outcome)
}

// NopAuditHandler does nothing.
type NopAuditHandler struct{}

func (h *NopAuditHandler) OnDecision(kind string, subject any, outcome string) {}

// SlogAuditHandler records decisions through a structured logger.
type SlogAuditHandler struct {
	Logger *slog.Logger
}

// NewSlogAuditHandler creates an audit handler over the given logger,
// falling back to slog.Default when nil.
func NewSlogAuditHandler(logger *slog.Logger) *SlogAuditHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAuditHandler{Logger: logger}
}

func (h *SlogAuditHandler) OnDecision(kind string, subject any, outcome string) {
	h.Logger.Debug("policy decision",
		slog.String("kind", kind),
		slog.Any("subject", subject),
		slog.String("outcome", outcome),
	)
}
