package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// EscrowMetrics holds the service's prometheus collectors.
type EscrowMetrics struct {
	ContractsProposedTotal  prometheus.CounterVec
	ContractsRespondedTotal prometheus.CounterVec

	EscrowsCreatedTotal      prometheus.CounterVec
	EscrowAmountCreatedTotal prometheus.CounterVec
	EscrowMilestonesCreated  prometheus.Histogram

	EscrowTransitionsTotal   prometheus.CounterVec
	MilestonesReviewedTotal  prometheus.CounterVec
	OperationErrorsTotal     prometheus.CounterVec
	ChatCompletionDuration   prometheus.HistogramVec
}

func NewEscrowMetrics() *EscrowMetrics {
	return &EscrowMetrics{
		ContractsProposedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contracts_proposed_total",
				Help: "Contracts proposed, by brand",
			},
			[]string{"brand_id"},
		),
		ContractsRespondedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contracts_responded_total",
				Help: "Contract responses, by decision",
			},
			[]string{"decision"},
		),
		EscrowsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrows_created_total",
				Help: "Escrow transactions created, by brand",
			},
			[]string{"brand_id"},
		),
		EscrowAmountCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrows_created_amount_total",
				Help: "Total amount placed in escrow, by brand",
			},
			[]string{"brand_id"},
		),
		EscrowMilestonesCreated: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "escrow_milestones_per_transaction",
				Help:    "Milestones per created escrow transaction",
				Buckets: []float64{1, 2, 3, 5, 8, 13},
			},
		),
		EscrowTransitionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_transitions_total",
				Help: "Escrow status transitions",
			},
			[]string{"from", "to"},
		),
		MilestonesReviewedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "milestones_reviewed_total",
				Help: "Milestone reviews, by decision",
			},
			[]string{"decision"},
		),
		OperationErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_operation_errors_total",
				Help: "Failed operations, by operation and reason",
			},
			[]string{"operation", "reason"},
		),
		ChatCompletionDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "chat_completion_duration_seconds",
				Help:    "Latency of the chat-completion collaborator",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
	}
}

func (m *EscrowMetrics) RecordContractProposed(brandID string) {
	m.ContractsProposedTotal.WithLabelValues(brandID).Inc()
}

func (m *EscrowMetrics) RecordContractResponded(decision string) {
	m.ContractsRespondedTotal.WithLabelValues(decision).Inc()
}

func (m *EscrowMetrics) RecordEscrowCreated(brandID string, amount float64, milestones int) {
	m.EscrowsCreatedTotal.WithLabelValues(brandID).Inc()
	m.EscrowAmountCreatedTotal.WithLabelValues(brandID).Add(amount)
	m.EscrowMilestonesCreated.Observe(float64(milestones))
}

func (m *EscrowMetrics) RecordEscrowTransition(from, to string) {
	m.EscrowTransitionsTotal.WithLabelValues(from, to).Inc()
}

func (m *EscrowMetrics) RecordMilestoneReviewed(decision string) {
	m.MilestonesReviewedTotal.WithLabelValues(decision).Inc()
}

func (m *EscrowMetrics) RecordOperationError(operation, reason string) {
	m.OperationErrorsTotal.WithLabelValues(operation, reason).Inc()
}

func (m *EscrowMetrics) ObserveChatCompletion(seconds float64, ok bool) {
	outcome := "success"
	if !ok {
		outcome = "error"
	}
	m.ChatCompletionDuration.WithLabelValues(outcome).Observe(seconds)
}
