package quota

import "strings"

// number of metered actions a free identity may perform
const FreeUsageLimit = 10

type Plan string

const (
	PlanFree    Plan = "free"
	PlanPremium Plan = "premium"
)

// messages returned when a free identity has exhausted its allowance
const (
	MessageUpgrade     = "Free usage limit reached...Upgrade to premium plan for more usage."
	MessagePremiumOnly = "This feature is only available for premium user."
)

// normalizes a stored plan string; anything unrecognized is free
func ParsePlan(raw string) Plan {
	if Plan(strings.ToLower(strings.TrimSpace(raw))) == PlanPremium {
		return PlanPremium
	}

	return PlanFree
}

func (p Plan) IsPremium() bool {
	return p == PlanPremium
}

// reports whether an identity may perform another metered action.
// premium plans are never metered.
func Allow(plan Plan, freeUsage, threshold int) bool {
	if plan.IsPremium() {
		return true
	}

	return freeUsage < threshold
}
