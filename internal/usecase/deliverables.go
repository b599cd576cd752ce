package usecase

import (
	"strings"

	"github.com/inflink/inflink-escrow-service/internal/domain"
)

// ParseDeliverables splits a contract's free-text deliverables field
// into individual items. The field is comma-delimited; when no comma is
// present the whole text is a single deliverable. Blank items are
// dropped, order is preserved.
func ParseDeliverables(deliverables string) []string {
	var items []string
	for _, part := range strings.Split(deliverables, ",") {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// DeriveMilestoneSpecs builds one milestone spec per deliverable item,
// in the contract's original order. Derived milestones are due by the
// contract end date, which keeps them inside the contract date range.
func DeriveMilestoneSpecs(contract *domain.Contract) []domain.MilestoneSpec {
	items := ParseDeliverables(contract.Deliverables)
	specs := make([]domain.MilestoneSpec, 0, len(items))
	for _, item := range items {
		specs = append(specs, domain.MilestoneSpec{
			Description: item,
			DueDate:     contract.EndDate,
		})
	}
	return specs
}
