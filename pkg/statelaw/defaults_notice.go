package statelaw

const fixedTermDefault = "A fixed-term lease generally ends on its stated end date without further notice unless the lease itself requires one; review the lease's renewal and notice clauses."

// DefaultNoticeRules returns the curated termination notice table for
// periodic (month-to-month) tenancies, from the tenant's side. Fixed
// term text is rendered verbatim in letters; it never enters
// computation.
func DefaultNoticeRules() []*NoticeRule {
	return []*NoticeRule{
		{State: StateAL, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault},
		{State: StateAK, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault},
		{State: StateAZ, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault},
		{State: StateAR, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault},
		{State: StateCA, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault, Notes: "Tenants give 30 days regardless of tenancy length; the 60-day tier applies only to landlord-initiated terminations."},
		{State: StateCO, MonthToMonthNoticeDays: 21, FixedTermNoticeText: fixedTermDefault, Notes: "21 days for month-to-month tenancies; shorter periodic tenancies scale down."},
		{State: StateCT, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault},
		{State: StateDE, MonthToMonthNoticeDays: 60, FixedTermNoticeText: fixedTermDefault},
		{State: StateDC, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault},
		{State: StateFL, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault, Notes: "Raised from 15 days by the 2023 amendments."},
		{State: StateGA, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault, Notes: "Tenant gives 30 days; landlord must give 60."},
		{State: StateHI, MonthToMonthNoticeDays: 28, FixedTermNoticeText: fixedTermDefault},
		{State: StateID, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault},
		{State: StateIL, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault},
		{State: StateIN, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault},
		{State: StateIA, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault},
		{State: StateKS, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault},
		{State: StateKY, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault},
		{State: StateLA, MonthToMonthNoticeDays: 10, FixedTermNoticeText: fixedTermDefault, Notes: "Ten days before the end of the rental month."},
		{State: StateME, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault},
		{State: StateMD, MonthToMonthNoticeDays: 60, FixedTermNoticeText: fixedTermDefault, Notes: "Sixty days statewide; some counties require more for landlords but not tenants."},
		{State: StateMA, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault, Notes: "The statutory window is one full rental period or 30 days, whichever is longer."},
		{State: StateMI, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault},
		{State: StateMN, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault, Notes: "One full rental period plus one day in strict terms; 30 days is the practical floor."},
		{State: StateMS, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault},
		{State: StateMO, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault},
		{State: StateMT, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault},
		{State: StateNE, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault},
		{State: StateNV, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault},
		{State: StateNH, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault},
		{State: StateNJ, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault, Notes: "One full month's notice ending on the rent due date."},
		{State: StateNM, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault},
		{State: StateNY, MonthToMonthNoticeDays: 30, TenureTiers: []TenureTier{{MinTenancyMonths: 12, NoticeDays: 60}, {MinTenancyMonths: 24, NoticeDays: 90}}, FixedTermNoticeText: fixedTermDefault, Notes: "Notice window scales with occupancy: 30 days under one year, 60 days from one to two years, 90 days beyond two years."},
		{State: StateNC, MonthToMonthNoticeDays: 7, FixedTermNoticeText: fixedTermDefault, Notes: "Seven days for month-to-month tenancies."},
		{State: StateND, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault},
		{State: StateOH, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault},
		{State: StateOK, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault},
		{State: StateOR, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault},
		{State: StatePA, MonthToMonthNoticeDays: 15, FixedTermNoticeText: fixedTermDefault, Notes: "Fifteen days for tenancies of one year or less under the default statute."},
		{State: StateRI, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault},
		{State: StateSC, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault},
		{State: StateSD, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault},
		{State: StateTN, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault},
		{State: StateTX, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault, Notes: "One month's notice; the statute keys on the rent-paying period."},
		{State: StateUT, MonthToMonthNoticeDays: 15, FixedTermNoticeText: fixedTermDefault},
		{State: StateVT, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault, Notes: "One full rental period; landlord-initiated terminations require more."},
		{State: StateVA, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault},
		{State: StateWA, MonthToMonthNoticeDays: 20, FixedTermNoticeText: fixedTermDefault, Notes: "Tenants give 20 days before the end of the rental period."},
		{State: StateWV, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault},
		{State: StateWI, MonthToMonthNoticeDays: 28, FixedTermNoticeText: fixedTermDefault},
		{State: StateWY, MonthToMonthNoticeDays: 30, FixedTermNoticeText: fixedTermDefault},
	}
}
