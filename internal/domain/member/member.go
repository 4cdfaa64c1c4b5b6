package member

import (
	"time"

	"github.com/google/uuid"
)

// Membership plan prices in kobo.
const (
	PremiumPlanKobo  int64 = 3_000_000
	StandardPlanKobo int64 = 6_000_000
)

// Member is a registered gym member with a membership plan.
type Member struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Plan      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PlanPriceKobo maps a plan name to its upgrade price in minor currency
// units. Any plan other than Premium is billed at the standard rate.
func PlanPriceKobo(plan string) int64 {
	if plan == "Premium" {
		return PremiumPlanKobo
	}
	return StandardPlanKobo
}
