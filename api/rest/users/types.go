package users

import "codeberg.org/quickai/server/internal/quota"

type UsageResponse struct {
	Success   bool       `json:"success"`
	Plan      quota.Plan `json:"plan"`      // "free" or "premium"
	FreeUsage int        `json:"free_usage"` // metered actions performed
	Limit     int        `json:"limit"`      // free allowance (-1 for unlimited)
	Remaining int        `json:"remaining"`  // actions left (-1 for unlimited)
}
