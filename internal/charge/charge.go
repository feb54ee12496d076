package charge

// RuleType selects how a matching rule computes its surcharge.
type RuleType string

const (
	RuleTypeFixed      RuleType = "fixed"
	RuleTypePercentage RuleType = "percentage"
)

// Rule is one band of the tiered service-charge table. Max nil means the
// band is unbounded above. Rules are evaluated in slice order and the first
// match wins, so the slice order is part of the contract.
type Rule struct {
	ID    string   `json:"id"`
	Min   float64  `json:"min"`
	Max   *float64 `json:"max"`
	Value float64  `json:"value"`
	Type  RuleType `json:"type"`
}

// Matches reports whether amount falls inside the rule's inclusive band.
func (r Rule) Matches(amount float64) bool {
	if amount < r.Min {
		return false
	}
	return r.Max == nil || amount <= *r.Max
}

// Apply computes the rule's surcharge for amount.
func (r Rule) Apply(amount float64) float64 {
	if r.Type == RuleTypePercentage {
		return amount * r.Value / 100
	}
	return r.Value
}

// Calculate returns the surcharge for amount under the first matching rule,
// or 0 when no rule matches.
func Calculate(amount float64, rules []Rule) float64 {
	for _, rule := range rules {
		if rule.Matches(amount) {
			return rule.Apply(amount)
		}
	}
	return 0
}
