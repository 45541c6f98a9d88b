// Package deposit evaluates a requested security deposit against the
// jurisdiction's statutory multiple of monthly rent.
package deposit

import (
	"math"

	"github.com/Tenantry-Labs/tenantry/core/pkg/statelaw"
)

// Input is one deposit evaluation request. Money is cents.
type Input struct {
	State                 statelaw.StateCode `json:"state"`
	MonthlyRentCents      int64              `json:"monthly_rent_cents"`
	RequestedDepositCents int64              `json:"requested_deposit_cents"`
}

// Result reports whether the jurisdiction caps deposits and, when it
// does, the maximum lawful amount for the given rent.
type Result struct {
	State  statelaw.StateCode `json:"state"`
	Capped bool               `json:"capped"`

	// MaxAllowedDepositCents is meaningful only when Capped is true.
	MaxAllowedDepositCents int64    `json:"max_allowed_deposit_cents,omitempty"`
	Multiplier             *float64 `json:"multiplier,omitempty"`

	// WithinCap is true for uncapped jurisdictions and for capped ones
	// where the requested amount does not exceed the cap.
	WithinCap bool `json:"within_cap"`

	RequestedDepositCents int64 `json:"requested_deposit_cents"`

	Description string `json:"description"`
	Notes       string `json:"notes,omitempty"`
}

// Evaluate checks a requested deposit for one jurisdiction. An
// uncapped jurisdiction never produces a maximum; the caller gets
// Capped=false and must not invent one. The cap boundary is inclusive.
func Evaluate(catalog *statelaw.Catalog, in Input) (*Result, error) {
	if in.MonthlyRentCents <= 0 {
		return nil, &statelaw.ValidationError{Field: "monthly_rent_cents", Message: "monthly rent must be positive"}
	}
	if in.RequestedDepositCents < 0 {
		return nil, &statelaw.ValidationError{Field: "requested_deposit_cents", Message: "requested deposit must not be negative"}
	}

	rule, err := catalog.DepositRule(in.State)
	if err != nil {
		return nil, err
	}

	res := &Result{
		State:                 in.State,
		RequestedDepositCents: in.RequestedDepositCents,
		Description:           rule.Description,
		Notes:                 rule.Notes,
	}

	if rule.Multiplier == nil {
		res.Capped = false
		res.WithinCap = true
		return res, nil
	}

	res.Capped = true
	res.Multiplier = rule.Multiplier
	res.MaxAllowedDepositCents = int64(math.Round(float64(in.MonthlyRentCents) * *rule.Multiplier))
	res.WithinCap = in.RequestedDepositCents <= res.MaxAllowedDepositCents
	return res, nil
}
