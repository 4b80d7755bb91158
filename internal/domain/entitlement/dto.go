package entitlement

// Balance is the derived total/used/remaining for one category.
// Remaining floors at 0; it never goes negative even when usage exceeds the
// allotment.
type Balance struct {
	Name      string `json:"name"`
	Total     int    `json:"total"`
	Used      int    `json:"used"`
	Remaining int    `json:"remaining"`
}

// BalanceReport carries the per-category balances plus cross-category sums.
type BalanceReport struct {
	Balances        []Balance `json:"balances"`
	TotalLeaves     int       `json:"totalLeaves"`
	UsedLeaves      int       `json:"usedLeaves"`
	RemainingLeaves int       `json:"remainingLeaves"`
}

type UpsertEntitlementsRequest struct {
	Entitlements map[string]int `json:"entitlements"`
}
