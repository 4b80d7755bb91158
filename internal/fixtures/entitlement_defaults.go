package fixtures

// DefaultEntitlements is the fallback annual allotment scheme for users with
// no configured entitlements. Injected into the entitlement service so tests
// and deployments can substitute their own scheme.
func DefaultEntitlements() map[string]int {
	return map[string]int{
		"Annual": 20,
		"Sick":   10,
		"Casual": 5,
		"Unpaid": 15,
	}
}
