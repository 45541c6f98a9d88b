// Package latefee evaluates the legality of a residential late fee
// against the jurisdiction's statutory cap, or against a
// reasonableness heuristic where no cap exists.
//
// Classification policy: where a statutory cap exists, any breach of
// the cap is EXCESSIVE. There is no buffer above the cap; a fee over
// the cap is over the cap.
package latefee

import (
	"math"

	"github.com/Tenantry-Labs/tenantry/core/pkg/statelaw"
)

// Heuristic bands for jurisdictions with no statutory cap, expressed
// as percent of monthly rent. At or below the lower band the fee is
// LEGAL; above the upper band it is EXCESSIVE; between them it needs
// REVIEW. These are display heuristics, never statutory caps.
const (
	LowerHeuristicPercent = 5.0
	UpperHeuristicPercent = 10.0
)

// Verdict is the three-way legality classification.
type Verdict string

const (
	VerdictLegal     Verdict = "LEGAL"
	VerdictReview    Verdict = "REVIEW"
	VerdictExcessive Verdict = "EXCESSIVE"
)

// Input is one late-fee evaluation request. Money is cents.
type Input struct {
	State            statelaw.StateCode `json:"state"`
	MonthlyRentCents int64              `json:"monthly_rent_cents"`
	ChargedFeeCents  int64              `json:"charged_fee_cents"`
	GracePeriodDays  int                `json:"grace_period_days"`
}

// Result is the outcome of one evaluation. Results are transient and
// caller-owned.
type Result struct {
	State   statelaw.StateCode `json:"state"`
	Verdict Verdict            `json:"verdict"`

	// MaxAllowedFeeCents is the statutory cap when StatutoryCap is
	// true; otherwise it is the upper heuristic figure, reported for
	// display only.
	MaxAllowedFeeCents int64 `json:"max_allowed_fee_cents"`
	StatutoryCap       bool  `json:"statutory_cap"`

	RequiredGracePeriodDays *int  `json:"required_grace_period_days,omitempty"`
	GracePeriodSatisfied    bool  `json:"grace_period_satisfied"`
	SuppliedFeeCents        int64 `json:"supplied_fee_cents"`
	SuppliedGracePeriodDays int   `json:"supplied_grace_period_days"`

	Description string `json:"description"`
	SpecialNote string `json:"special_note,omitempty"`
}

// Evaluate classifies a charged late fee for one jurisdiction. The
// catalog is injected; an unknown key yields
// statelaw.UnsupportedJurisdictionError and never a default
// jurisdiction's numbers. Inputs are validated before any computation.
func Evaluate(catalog *statelaw.Catalog, in Input) (*Result, error) {
	if in.MonthlyRentCents <= 0 {
		return nil, &statelaw.ValidationError{Field: "monthly_rent_cents", Message: "monthly rent must be positive"}
	}
	if in.ChargedFeeCents < 0 {
		return nil, &statelaw.ValidationError{Field: "charged_fee_cents", Message: "charged fee must not be negative"}
	}
	if in.GracePeriodDays < 0 {
		return nil, &statelaw.ValidationError{Field: "grace_period_days", Message: "grace period must not be negative"}
	}

	rule, err := catalog.FeeRule(in.State)
	if err != nil {
		return nil, err
	}

	res := &Result{
		State:                   in.State,
		RequiredGracePeriodDays: rule.GracePeriodDays,
		SuppliedFeeCents:        in.ChargedFeeCents,
		SuppliedGracePeriodDays: in.GracePeriodDays,
		Description:             rule.Description,
		SpecialNote:             rule.SpecialNote,
	}
	res.GracePeriodSatisfied = rule.GracePeriodDays == nil || in.GracePeriodDays >= *rule.GracePeriodDays

	if rule.Combination == statelaw.CombineNone {
		res.StatutoryCap = false
		res.MaxAllowedFeeCents = percentOf(in.MonthlyRentCents, UpperHeuristicPercent)
		res.Verdict = classifyHeuristic(in, res.GracePeriodSatisfied)
		return res, nil
	}

	capCents := statutoryCap(rule, in.MonthlyRentCents)
	res.StatutoryCap = true
	res.MaxAllowedFeeCents = capCents
	res.Verdict = classifyStatutory(in.ChargedFeeCents, capCents, res.GracePeriodSatisfied)
	return res, nil
}

// statutoryCap computes the maximum lawful fee for a rule with a
// statutory cap. The combinator set is closed; an unlisted value
// cannot reach here because catalog construction rejects it.
func statutoryCap(rule *statelaw.FeeRule, rentCents int64) int64 {
	switch rule.Combination {
	case statelaw.CombinePercentOnly, statelaw.CombineFixedPercentOfRent:
		return percentOf(rentCents, rule.MaxFeePercent)
	case statelaw.CombineFlatOnly:
		return rule.MaxFeeFlatCents
	case statelaw.CombineLesserOf:
		return min64(rule.MaxFeeFlatCents, percentOf(rentCents, rule.MaxFeePercent))
	case statelaw.CombineGreaterOf:
		return max64(rule.MaxFeeFlatCents, percentOf(rentCents, rule.MaxFeePercent))
	case statelaw.CombineTieredByRent:
		if rentCents <= rule.TierThresholdCents {
			return percentOf(rentCents, rule.LowTierPercent)
		}
		return percentOf(rentCents, rule.HighTierPercent)
	default:
		return 0
	}
}

// classifyStatutory applies the strict cap reading: any breach is
// EXCESSIVE; within the cap the fee is LEGAL only when the grace
// period is also satisfied, otherwise it drops to REVIEW.
func classifyStatutory(feeCents, capCents int64, graceSatisfied bool) Verdict {
	switch {
	case feeCents > capCents:
		return VerdictExcessive
	case graceSatisfied:
		return VerdictLegal
	default:
		return VerdictReview
	}
}

// classifyHeuristic bands uncapped jurisdictions by share of monthly
// rent. The grace downgrade applies to the LEGAL band the same way it
// does under a statutory cap.
func classifyHeuristic(in Input, graceSatisfied bool) Verdict {
	lower := percentOf(in.MonthlyRentCents, LowerHeuristicPercent)
	upper := percentOf(in.MonthlyRentCents, UpperHeuristicPercent)
	switch {
	case in.ChargedFeeCents > upper:
		return VerdictExcessive
	case in.ChargedFeeCents <= lower && graceSatisfied:
		return VerdictLegal
	default:
		return VerdictReview
	}
}

// percentOf returns pct% of amountCents, rounded half away from zero.
func percentOf(amountCents int64, pct float64) int64 {
	return int64(math.Round(float64(amountCents) * pct / 100.0))
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
