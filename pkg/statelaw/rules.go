package statelaw

import "fmt"

// Combinator describes how a percentage-of-rent limit and a flat-amount
// limit interact when a late-fee statute names both, or how a single
// limit is expressed when it names one.
type Combinator string

const (
	// CombineNone means the jurisdiction has no statutory cap; callers
	// fall back to a reasonableness heuristic.
	CombineNone Combinator = "NONE"
	// CombinePercentOnly caps the fee at a percentage of monthly rent.
	CombinePercentOnly Combinator = "PERCENT_ONLY"
	// CombineFlatOnly caps the fee at a flat dollar amount.
	CombineFlatOnly Combinator = "FLAT_ONLY"
	// CombineLesserOf caps the fee at min(flat, rent×percent).
	CombineLesserOf Combinator = "LESSER_OF"
	// CombineGreaterOf caps the fee at max(flat, rent×percent).
	CombineGreaterOf Combinator = "GREATER_OF"
	// CombineTieredByRent selects one of two percentages depending on
	// whether monthly rent crosses a fixed threshold.
	CombineTieredByRent Combinator = "TIERED_BY_RENT"
	// CombineFixedPercentOfRent pegs the cap to a single statutory
	// percentage of rent; any flat figures in local codes are advisory
	// and ignored. Computationally identical to PERCENT_ONLY, kept as a
	// distinct tag so the record mirrors the statute's framing.
	CombineFixedPercentOfRent Combinator = "FIXED_PERCENT_OF_RENT"
)

// FeeRule captures one jurisdiction's late-fee statute. Money fields
// are cents; percent fields are percent points (5.0 == 5%). A zero
// percent or flat field means the statute does not name that limit;
// record-shape coherence is enforced by catalog invariants.
type FeeRule struct {
	State StateCode `json:"state" yaml:"state"`

	// GracePeriodDays is the statutory minimum number of days after the
	// due date before a late fee may be charged. nil = no minimum.
	GracePeriodDays *int `json:"grace_period_days,omitempty" yaml:"grace_period_days,omitempty"`

	MaxFeePercent   float64 `json:"max_fee_percent,omitempty" yaml:"max_fee_percent,omitempty"`
	MaxFeeFlatCents int64   `json:"max_fee_flat_cents,omitempty" yaml:"max_fee_flat_cents,omitempty"`

	Combination Combinator `json:"combination" yaml:"combination"`

	// TIERED_BY_RENT parameters: rent at or below the threshold uses
	// LowTierPercent, rent above it uses HighTierPercent.
	TierThresholdCents int64   `json:"tier_threshold_cents,omitempty" yaml:"tier_threshold_cents,omitempty"`
	LowTierPercent     float64 `json:"low_tier_percent,omitempty" yaml:"low_tier_percent,omitempty"`
	HighTierPercent    float64 `json:"high_tier_percent,omitempty" yaml:"high_tier_percent,omitempty"`

	// Description and SpecialNote are human-readable only and never
	// enter computation.
	Description string `json:"description" yaml:"description"`
	SpecialNote string `json:"special_note,omitempty" yaml:"special_note,omitempty"`
}

// DepositRule captures one jurisdiction's security deposit cap.
type DepositRule struct {
	State StateCode `json:"state" yaml:"state"`

	// Multiplier caps the deposit at Multiplier × monthly rent.
	// nil = no statutory cap.
	Multiplier *float64 `json:"multiplier,omitempty" yaml:"multiplier,omitempty"`

	Description string `json:"description" yaml:"description"`
	// Notes documents which statutory variant the single multiplier
	// represents (e.g. unfurnished, first-year tenancy).
	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// TenureTier maps a minimum tenancy length to a notice window for
// jurisdictions whose notice requirement grows with tenancy duration.
// Tiers are ordered ascending by MinTenancyMonths.
type TenureTier struct {
	MinTenancyMonths int `json:"min_tenancy_months" yaml:"min_tenancy_months"`
	NoticeDays       int `json:"notice_days" yaml:"notice_days"`
}

// NoticeRule captures one jurisdiction's termination notice
// requirements for periodic (month-to-month) tenancies.
type NoticeRule struct {
	State StateCode `json:"state" yaml:"state"`

	// MonthToMonthNoticeDays is the base notice window.
	MonthToMonthNoticeDays int `json:"month_to_month_notice_days" yaml:"month_to_month_notice_days"`

	// TenureTiers, when present, override the base window once the
	// tenancy length reaches a tier's minimum.
	TenureTiers []TenureTier `json:"tenure_tiers,omitempty" yaml:"tenure_tiers,omitempty"`

	// FixedTermNoticeText describes the fixed-term position; it is
	// rendered, never computed against.
	FixedTermNoticeText string `json:"fixed_term_notice_text" yaml:"fixed_term_notice_text"`

	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// NoticeDaysFor resolves the notice window for a tenancy of the given
// length in months. Zero or negative months resolves to the base
// window.
func (r *NoticeRule) NoticeDaysFor(tenancyMonths int) int {
	days := r.MonthToMonthNoticeDays
	for _, tier := range r.TenureTiers {
		if tenancyMonths >= tier.MinTenancyMonths {
			days = tier.NoticeDays
		}
	}
	return days
}

// UnsupportedJurisdictionError reports a key that is not present in the
// relevant catalog. Evaluators never approximate from a similar
// jurisdiction; callers surface this as "not available for this
// location".
type UnsupportedJurisdictionError struct {
	Code StateCode
}

func (e *UnsupportedJurisdictionError) Error() string {
	return fmt.Sprintf("jurisdiction %q is not supported", string(e.Code))
}

// ValidationError reports a missing or out-of-range input, surfaced
// before any computation runs.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
