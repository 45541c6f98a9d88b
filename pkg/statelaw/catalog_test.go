package statelaw

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDefaultCatalog(t *testing.T) {
	c, err := NewDefaultCatalog()
	require.NoError(t, err)
	require.NotNil(t, c)
	require.Equal(t, DefaultRevision, c.Revision())

	// Every published jurisdiction has a record in each domain.
	for _, code := range AllStates() {
		fee, err := c.FeeRule(code)
		require.NoError(t, err, "fee rule %s", code)
		require.Equal(t, code, fee.State)

		dep, err := c.DepositRule(code)
		require.NoError(t, err, "deposit rule %s", code)
		require.Equal(t, code, dep.State)

		not, err := c.NoticeRule(code)
		require.NoError(t, err, "notice rule %s", code)
		require.Equal(t, code, not.State)
	}
}

func TestAllStates(t *testing.T) {
	codes := AllStates()
	require.Len(t, codes, 51) // 50 states + DC
	require.True(t, sortedStateCodes(codes))
	require.Equal(t, "California", StateName(StateCA))
	require.Equal(t, "District of Columbia", StateName(StateDC))
	require.Empty(t, StateName(StateCode("ZZ")))
}

func sortedStateCodes(codes []StateCode) bool {
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			return false
		}
	}
	return true
}

func TestLookup_UnknownJurisdiction(t *testing.T) {
	c, err := NewDefaultCatalog()
	require.NoError(t, err)

	for _, lookup := range []func(StateCode) error{
		func(s StateCode) error { _, err := c.FeeRule(s); return err },
		func(s StateCode) error { _, err := c.DepositRule(s); return err },
		func(s StateCode) error { _, err := c.NoticeRule(s); return err },
	} {
		err := lookup(StateCode("PR"))
		require.Error(t, err)
		var unsupported *UnsupportedJurisdictionError
		require.ErrorAs(t, err, &unsupported)
		require.Equal(t, StateCode("PR"), unsupported.Code)
	}
}

func TestNewCatalog_RejectsUnknownState(t *testing.T) {
	_, err := NewCatalog(
		[]*FeeRule{{State: "XX", Combination: CombineNone, Description: "bogus"}},
		nil, nil, "1.0.0")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown state code")
}

func TestNewCatalog_RejectsDuplicateState(t *testing.T) {
	_, err := NewCatalog(
		[]*FeeRule{
			{State: StateOH, Combination: CombineNone, Description: "first"},
			{State: StateOH, Combination: CombineNone, Description: "second"},
		},
		nil, nil, "1.0.0")
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate")
}

func TestInvariants_NoneWithCaps(t *testing.T) {
	// NONE implies both caps absent.
	_, err := NewCatalog(
		[]*FeeRule{{State: StateOH, Combination: CombineNone, MaxFeePercent: 5, Description: "bad"}},
		nil, nil, "1.0.0")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invariant violated")
}

func TestInvariants_LesserOfNeedsBothSides(t *testing.T) {
	_, err := NewCatalog(
		[]*FeeRule{{State: StateOH, Combination: CombineLesserOf, MaxFeePercent: 5, Description: "bad"}},
		nil, nil, "1.0.0")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invariant violated")
}

func TestInvariants_TieredNeedsThresholdAndPercents(t *testing.T) {
	_, err := NewCatalog(
		[]*FeeRule{{State: StateOH, Combination: CombineTieredByRent, LowTierPercent: 12, HighTierPercent: 10, Description: "bad"}},
		nil, nil, "1.0.0")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invariant violated")
}

func TestInvariants_DepositMultiplierRange(t *testing.T) {
	_, err := NewCatalog(nil,
		[]*DepositRule{{State: StateOH, Multiplier: mult(9), Description: "bad"}},
		nil, "1.0.0")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invariant violated")
}

func TestInvariants_NoticeDaysRange(t *testing.T) {
	_, err := NewCatalog(nil, nil,
		[]*NoticeRule{{State: StateOH, MonthToMonthNoticeDays: 0, FixedTermNoticeText: "x"}},
		"1.0.0")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invariant violated")
}

func TestTiers_MustAscend(t *testing.T) {
	_, err := NewCatalog(nil, nil,
		[]*NoticeRule{{
			State:                  StateOH,
			MonthToMonthNoticeDays: 30,
			TenureTiers: []TenureTier{
				{MinTenancyMonths: 24, NoticeDays: 90},
				{MinTenancyMonths: 12, NoticeDays: 60},
			},
			FixedTermNoticeText: "x",
		}}, "1.0.0")
	require.Error(t, err)
	require.Contains(t, err.Error(), "ascend")
}

func TestNoticeDaysFor_Tiers(t *testing.T) {
	c, err := NewDefaultCatalog()
	require.NoError(t, err)

	ny, err := c.NoticeRule(StateNY)
	require.NoError(t, err)
	require.Equal(t, 30, ny.NoticeDaysFor(0))
	require.Equal(t, 30, ny.NoticeDaysFor(11))
	require.Equal(t, 60, ny.NoticeDaysFor(12))
	require.Equal(t, 60, ny.NoticeDaysFor(23))
	require.Equal(t, 90, ny.NoticeDaysFor(24))
	require.Equal(t, 90, ny.NoticeDaysFor(120))

	// Untiered jurisdictions ignore tenancy length.
	md, err := c.NoticeRule(StateMD)
	require.NoError(t, err)
	require.Equal(t, 60, md.NoticeDaysFor(0))
	require.Equal(t, 60, md.NoticeDaysFor(48))
}

func TestHash_DeterministicAndContentSensitive(t *testing.T) {
	a, err := NewDefaultCatalog()
	require.NoError(t, err)
	b, err := NewDefaultCatalog()
	require.NoError(t, err)

	require.NotEmpty(t, a.Hash())
	require.Equal(t, a.Hash(), b.Hash())

	// Changing one record changes the hash.
	fees := DefaultFeeRules()
	for _, r := range fees {
		if r.State == StateHI {
			r.MaxFeePercent = 9
		}
	}
	changed, err := NewCatalog(fees, DefaultDepositRules(), DefaultNoticeRules(), DefaultRevision)
	require.NoError(t, err)
	require.NotEqual(t, a.Hash(), changed.Hash())
}

func TestHash_OrderIndependent(t *testing.T) {
	fees := DefaultFeeRules()
	reversed := make([]*FeeRule, len(fees))
	for i, r := range fees {
		reversed[len(fees)-1-i] = r
	}

	a, err := NewCatalog(fees, DefaultDepositRules(), DefaultNoticeRules(), DefaultRevision)
	require.NoError(t, err)
	b, err := NewCatalog(reversed, DefaultDepositRules(), DefaultNoticeRules(), DefaultRevision)
	require.NoError(t, err)
	require.Equal(t, a.Hash(), b.Hash())
}

func TestDefaultFeeRules_CombinatorCoverage(t *testing.T) {
	seen := map[Combinator]bool{}
	for _, r := range DefaultFeeRules() {
		seen[r.Combination] = true
	}
	for _, c := range []Combinator{
		CombineNone, CombinePercentOnly, CombineFlatOnly,
		CombineLesserOf, CombineGreaterOf, CombineTieredByRent,
		CombineFixedPercentOfRent,
	} {
		require.True(t, seen[c], "no default rule exercises %s", c)
	}
}

func TestUnsupportedJurisdictionError_Message(t *testing.T) {
	err := error(&UnsupportedJurisdictionError{Code: "GU"})
	require.Contains(t, err.Error(), "GU")
}
