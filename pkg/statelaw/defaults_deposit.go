package statelaw

func mult(f float64) *float64 { return &f }

// DefaultDepositRules returns the curated security deposit table. Each
// record carries one canonical multiplier; where a statute draws
// furnished/unfurnished or tenancy-length distinctions, Notes names the
// variant chosen.
func DefaultDepositRules() []*DepositRule {
	return []*DepositRule{
		{State: StateAL, Multiplier: mult(1), Description: "Deposit capped at one month's rent.", Notes: "Pet, tenant-caused-risk, and utility surcharges excluded from the cap."},
		{State: StateAK, Multiplier: mult(2), Description: "Deposit capped at two months' rent.", Notes: "Cap does not apply where monthly rent exceeds $2,000."},
		{State: StateAZ, Multiplier: mult(1.5), Description: "Deposit capped at one and one-half months' rent."},
		{State: StateAR, Multiplier: mult(2), Description: "Deposit capped at two months' rent."},
		{State: StateCA, Multiplier: mult(1), Description: "Deposit capped at one month's rent.", Notes: "Post-2024 cap; small landlords may collect two months under an exemption. The general one-month figure is modeled."},
		{State: StateCO, Multiplier: mult(2), Description: "Deposit capped at two months' rent."},
		{State: StateCT, Multiplier: mult(2), Description: "Deposit capped at two months' rent.", Notes: "One month's rent for tenants aged 62 or older; the general figure is modeled."},
		{State: StateDE, Multiplier: mult(1), Description: "Deposit capped at one month's rent for leases of a year or more.", Notes: "Month-to-month tenancies allow more after the first year; the fixed-lease figure is modeled."},
		{State: StateDC, Multiplier: mult(1), Description: "Deposit capped at one month's rent."},
		{State: StateFL, Description: "No statutory cap on security deposits."},
		{State: StateGA, Description: "No statutory cap on security deposits."},
		{State: StateHI, Multiplier: mult(1), Description: "Deposit capped at one month's rent.", Notes: "An additional pet deposit of up to one month is permitted and excluded here."},
		{State: StateID, Description: "No statutory cap on security deposits."},
		{State: StateIL, Description: "No statewide cap on security deposits.", Notes: "Municipal ordinances (notably Chicago) impose their own rules; not modeled."},
		{State: StateIN, Description: "No statutory cap on security deposits."},
		{State: StateIA, Multiplier: mult(2), Description: "Deposit capped at two months' rent."},
		{State: StateKS, Multiplier: mult(1), Description: "Deposit capped at one month's rent for unfurnished units.", Notes: "One and one-half months for furnished units; the unfurnished figure is modeled."},
		{State: StateKY, Description: "No statutory cap on security deposits."},
		{State: StateLA, Description: "No statutory cap on security deposits."},
		{State: StateME, Multiplier: mult(2), Description: "Deposit capped at two months' rent."},
		{State: StateMD, Multiplier: mult(2), Description: "Deposit capped at two months' rent."},
		{State: StateMA, Multiplier: mult(1), Description: "Deposit capped at one month's rent."},
		{State: StateMI, Multiplier: mult(1.5), Description: "Deposit capped at one and one-half months' rent."},
		{State: StateMN, Description: "No statutory cap on security deposits."},
		{State: StateMS, Description: "No statutory cap on security deposits."},
		{State: StateMO, Multiplier: mult(2), Description: "Deposit capped at two months' rent."},
		{State: StateMT, Description: "No statutory cap on security deposits."},
		{State: StateNE, Multiplier: mult(1), Description: "Deposit capped at one month's rent.", Notes: "An additional quarter month is permitted for pets; excluded here."},
		{State: StateNV, Multiplier: mult(3), Description: "Deposit capped at three months' rent."},
		{State: StateNH, Multiplier: mult(1), Description: "Deposit capped at the greater of $100 or one month's rent.", Notes: "The one-month branch is modeled; the $100 floor matters only at nominal rents."},
		{State: StateNJ, Multiplier: mult(1.5), Description: "Deposit capped at one and one-half months' rent."},
		{State: StateNM, Multiplier: mult(1), Description: "Deposit capped at one month's rent for leases under one year.", Notes: "Longer leases permit a 'reasonable' deposit; the sub-year figure is modeled."},
		{State: StateNY, Multiplier: mult(1), Description: "Deposit capped at one month's rent."},
		{State: StateNC, Multiplier: mult(2), Description: "Deposit capped at two months' rent for tenancies longer than month-to-month.", Notes: "Month-to-month tenancies cap at one and one-half months; the longer-term figure is modeled."},
		{State: StateND, Multiplier: mult(1), Description: "Deposit capped at one month's rent.", Notes: "Higher deposits permitted for pets or prior felony convictions; excluded here."},
		{State: StateOH, Description: "No statutory cap on security deposits.", Notes: "Deposits above one month's rent held more than six months accrue interest."},
		{State: StateOK, Description: "No statutory cap on security deposits."},
		{State: StateOR, Description: "No statutory cap on security deposits."},
		{State: StatePA, Multiplier: mult(2), Description: "Deposit capped at two months' rent during the first year of tenancy.", Notes: "Drops to one month after the first year; the first-year figure is modeled."},
		{State: StateRI, Multiplier: mult(1), Description: "Deposit capped at one month's rent."},
		{State: StateSC, Description: "No statutory cap on security deposits."},
		{State: StateSD, Multiplier: mult(1), Description: "Deposit capped at one month's rent.", Notes: "Larger deposits allowed by mutual agreement for special conditions; excluded here."},
		{State: StateTN, Description: "No statutory cap on security deposits."},
		{State: StateTX, Description: "No statutory cap on security deposits."},
		{State: StateUT, Description: "No statutory cap on security deposits."},
		{State: StateVT, Description: "No statutory cap on security deposits.", Notes: "Municipal caps exist in some towns; not modeled."},
		{State: StateVA, Multiplier: mult(2), Description: "Deposit capped at two months' rent."},
		{State: StateWA, Description: "No statutory cap on security deposits."},
		{State: StateWV, Description: "No statutory cap on security deposits."},
		{State: StateWI, Description: "No statutory cap on security deposits."},
		{State: StateWY, Description: "No statutory cap on security deposits."},
	}
}
