package statelaw

// DefaultRevision identifies the curated rule tables shipped with the
// library. Overlays replace it with their own semver revision.
const DefaultRevision = "1.4.0"

func days(n int) *int { return &n }

// DefaultFeeRules returns the curated late-fee table, one record per
// supported jurisdiction. Where a statute keys its figures on a
// dimension the record does not model (unit count, subsidized tenancy),
// SpecialNote names the variant the single record represents.
func DefaultFeeRules() []*FeeRule {
	return []*FeeRule{
		{State: StateAL, Combination: CombineNone, Description: "No statutory limit on residential late fees; courts apply a reasonableness standard."},
		{State: StateAK, Combination: CombineNone, Description: "No statutory limit; late fees must reflect actual damages to be enforceable."},
		{State: StateAZ, Combination: CombineNone, Description: "No statutory cap; the fee must be stated in the rental agreement and be reasonable."},
		{State: StateAR, Combination: CombineNone, Description: "No statutory limit on late fees for residential tenancies."},
		{State: StateCA, Combination: CombineNone, Description: "No fixed statutory cap; a late fee must be a reasonable estimate of the landlord's actual damages.", SpecialNote: "Fees routinely challenged as unlawful penalties when they exceed a small share of monthly rent."},
		{State: StateCO, Combination: CombineGreaterOf, MaxFeeFlatCents: 5000, MaxFeePercent: 5, GracePeriodDays: days(7), Description: "Late fee capped at the greater of $50 or 5% of the past-due rent, chargeable only after a seven-day grace period."},
		{State: StateCT, Combination: CombineNone, GracePeriodDays: days(9), Description: "No fee amount cap, but no late fee may be charged until rent is nine days past due."},
		{State: StateDE, Combination: CombinePercentOnly, MaxFeePercent: 5, GracePeriodDays: days(5), Description: "Late fee capped at 5% of the monthly rent, after a five-day grace period.", SpecialNote: "Grace period extends to eight days where the landlord lacks an in-county payment office."},
		{State: StateDC, Combination: CombinePercentOnly, MaxFeePercent: 5, GracePeriodDays: days(5), Description: "Late fee capped at 5% of the monthly rent; no fee before the fifth day after rent is due."},
		{State: StateFL, Combination: CombineNone, Description: "No statutory limit; fees must be reasonable and disclosed in the lease."},
		{State: StateGA, Combination: CombineNone, Description: "No statutory limit on residential late fees."},
		{State: StateHI, Combination: CombinePercentOnly, MaxFeePercent: 8, Description: "Late fee capped at 8% of the amount due."},
		{State: StateID, Combination: CombineNone, Description: "No statutory limit; the lease controls."},
		{State: StateIL, Combination: CombineGreaterOf, MaxFeeFlatCents: 2000, MaxFeePercent: 20, Description: "Late fee capped at the greater of $20 or 20% of the monthly rent.", SpecialNote: "Figures from the Landlord and Tenant Act applicable outside home-rule municipalities."},
		{State: StateIN, Combination: CombineNone, Description: "No statutory limit on residential late fees."},
		{State: StateIA, Combination: CombineFlatOnly, MaxFeeFlatCents: 6000, Description: "Per-day late charges capped by statute; the monthly ceiling for lower-rent units is $60.", SpecialNote: "Statute sets $12/day up to $60 for rent at or below $700, $20/day up to $100 above; the single figure models the lower-rent ceiling."},
		{State: StateKS, Combination: CombineNone, Description: "No statutory cap; fees must be reasonable."},
		{State: StateKY, Combination: CombineNone, Description: "No statutory limit on residential late fees."},
		{State: StateLA, Combination: CombineNone, Description: "No statutory limit; the lease controls."},
		{State: StateME, Combination: CombinePercentOnly, MaxFeePercent: 4, GracePeriodDays: days(15), Description: "Late fee capped at 4% of the monthly rent, chargeable only after rent is fifteen days late, with advance written disclosure."},
		{State: StateMD, Combination: CombineFixedPercentOfRent, MaxFeePercent: 5, Description: "Late fee fixed by statute at no more than 5% of the monthly rent.", SpecialNote: "Weekly tenancies use a per-week dollar figure instead; the record models monthly tenancies."},
		{State: StateMA, Combination: CombineNone, GracePeriodDays: days(30), Description: "No fee amount cap, but no late fee may be imposed until rent is thirty days overdue."},
		{State: StateMI, Combination: CombineNone, Description: "No statutory limit; fees must be reasonable."},
		{State: StateMN, Combination: CombinePercentOnly, MaxFeePercent: 8, Description: "Late fee capped at 8% of the overdue rent payment."},
		{State: StateMS, Combination: CombineNone, Description: "No statutory limit on residential late fees."},
		{State: StateMO, Combination: CombineNone, Description: "No statutory limit; courts require fees to approximate actual damages."},
		{State: StateMT, Combination: CombineNone, Description: "No statutory limit on residential late fees."},
		{State: StateNE, Combination: CombineNone, Description: "No statutory limit; the lease controls."},
		{State: StateNV, Combination: CombinePercentOnly, MaxFeePercent: 5, Description: "Late fee capped at 5% of the periodic rent."},
		{State: StateNH, Combination: CombineNone, Description: "No statutory limit on residential late fees."},
		{State: StateNJ, Combination: CombineNone, GracePeriodDays: days(5), Description: "No fee amount cap; a five-business-day grace period applies to protected tenant classes.", SpecialNote: "Grace period statute covers seniors and recipients of certain benefits; modeled as the general record."},
		{State: StateNM, Combination: CombinePercentOnly, MaxFeePercent: 10, Description: "Late fee capped at 10% of the rent specified per rental period."},
		{State: StateNY, Combination: CombineLesserOf, MaxFeeFlatCents: 5000, MaxFeePercent: 5, GracePeriodDays: days(5), Description: "Late fee capped at the lesser of $50 or 5% of the monthly rent; no fee until rent is five days late."},
		{State: StateNC, Combination: CombineGreaterOf, MaxFeeFlatCents: 1500, MaxFeePercent: 5, GracePeriodDays: days(5), Description: "For monthly tenancies, late fee capped at the greater of $15 or 5% of the rent, after a five-day grace period."},
		{State: StateND, Combination: CombineNone, Description: "No statutory limit on residential late fees."},
		{State: StateOH, Combination: CombineNone, Description: "No statutory limit; fees must be reasonable."},
		{State: StateOK, Combination: CombineNone, Description: "No statutory limit on residential late fees."},
		{State: StateOR, Combination: CombineNone, GracePeriodDays: days(4), Description: "No fixed cap, but the fee must be reasonable and may be charged only after a four-day grace period."},
		{State: StatePA, Combination: CombineNone, Description: "No statutory limit on residential late fees."},
		{State: StateRI, Combination: CombineNone, GracePeriodDays: days(15), Description: "No fee amount cap; no late fee until rent is fifteen days overdue."},
		{State: StateSC, Combination: CombineNone, Description: "No statutory limit on residential late fees."},
		{State: StateSD, Combination: CombineNone, Description: "No statutory limit; the lease controls."},
		{State: StateTN, Combination: CombinePercentOnly, MaxFeePercent: 10, GracePeriodDays: days(5), Description: "Late fee capped at 10% of the overdue amount, chargeable only after a five-day grace period."},
		{State: StateTX, Combination: CombineTieredByRent, TierThresholdCents: 170000, LowTierPercent: 12, HighTierPercent: 10, GracePeriodDays: days(2), Description: "Late fee presumed reasonable up to 12% of rent for lower-rent dwellings and 10% above the threshold; rent must be at least two full days late.", SpecialNote: "The statute keys the tier on dwelling size; the rent threshold is the conventional proxy used in screening tools."},
		{State: StateUT, Combination: CombineGreaterOf, MaxFeeFlatCents: 7500, MaxFeePercent: 10, Description: "Late fee capped at the greater of $75 or 10% of the monthly rent."},
		{State: StateVT, Combination: CombineNone, Description: "No statutory limit; fees must reflect actual costs to be enforceable."},
		{State: StateVA, Combination: CombinePercentOnly, MaxFeePercent: 10, GracePeriodDays: days(5), Description: "Late fee capped at 10% of the periodic rent or the amount due, whichever is less, after a five-day grace period."},
		{State: StateWA, Combination: CombineNone, GracePeriodDays: days(5), Description: "No fee amount cap; no late fee may accrue until rent is five days past due."},
		{State: StateWV, Combination: CombineNone, Description: "No statutory limit on residential late fees."},
		{State: StateWI, Combination: CombineNone, Description: "No statutory limit; fees must be disclosed in the rental agreement."},
		{State: StateWY, Combination: CombineNone, Description: "No statutory limit on residential late fees."},
	}
}
