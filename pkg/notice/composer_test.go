package notice

import (
	"fmt"
	"testing"
	"time"

	"github.com/Tenantry-Labs/tenantry/core/pkg/statelaw"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)
}

func testComposer(t *testing.T) *Composer {
	t.Helper()
	c, err := statelaw.NewDefaultCatalog()
	require.NoError(t, err)
	return NewComposer(c, fixedClock)
}

func validRequest() Request {
	return Request{
		TenantName:      "Jordan Rivera",
		LandlordName:    "Oakview Property Management",
		PropertyAddress: "412 Calvert Street, Apt 3B, Baltimore, MD 21202",
		State:           statelaw.StateMD,
		TerminationDate: time.Date(2025, time.May, 31, 0, 0, 0, 0, time.UTC),
		Reason:          ReasonMonthToMonth,
	}
}

func TestCompose_Validation(t *testing.T) {
	c := testComposer(t)

	cases := []struct {
		name   string
		mutate func(*Request)
		field  string
	}{
		{"blank tenant", func(r *Request) { r.TenantName = "   " }, "tenant_name"},
		{"blank landlord", func(r *Request) { r.LandlordName = "" }, "landlord_name"},
		{"blank address", func(r *Request) { r.PropertyAddress = "\t" }, "property_address"},
		{"zero termination date", func(r *Request) { r.TerminationDate = time.Time{} }, "termination_date"},
		{"unknown reason", func(r *Request) { r.Reason = "EVICTION" }, "reason"},
		{"negative tenancy", func(r *Request) { r.TenancyMonths = -1 }, "tenancy_months"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			_, err := c.Compose(req)
			require.Error(t, err)
			var verr *statelaw.ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestCompose_UnknownJurisdiction(t *testing.T) {
	c := testComposer(t)
	req := validRequest()
	req.State = "PR"
	_, err := c.Compose(req)
	var unsupported *statelaw.UnsupportedJurisdictionError
	require.ErrorAs(t, err, &unsupported)
	require.Equal(t, statelaw.StateCode("PR"), unsupported.Code)
}

// Maryland's 60-day month-to-month window must appear literally in the
// letter text.
func TestCompose_Maryland_SixtyDays(t *testing.T) {
	c := testComposer(t)
	letter, err := c.Compose(validRequest())
	require.NoError(t, err)
	require.Equal(t, 60, letter.NoticeDays)
	require.Contains(t, letter.Body, "60 days' written notice")
	require.Contains(t, letter.Body, "Maryland law")
	require.Contains(t, letter.Body, "NOTICE OF LEASE TERMINATION")
	require.Contains(t, letter.Body, "May 31, 2025")
	require.Contains(t, letter.Body, "March 14, 2025")
}

// New York's window is tenure-tiered: 30, 60, or 90 days.
func TestCompose_NewYork_TenureTiers(t *testing.T) {
	c := testComposer(t)

	cases := []struct {
		months int
		days   int
	}{
		{0, 30},
		{11, 30},
		{12, 60},
		{24, 90},
	}

	for _, tc := range cases {
		req := validRequest()
		req.State = statelaw.StateNY
		req.TenancyMonths = tc.months
		letter, err := c.Compose(req)
		require.NoError(t, err)
		require.Equal(t, tc.days, letter.NoticeDays, "tenancy %d months", tc.months)
		require.Contains(t, letter.Body, fmt.Sprintf("%d days' written notice", tc.days))
	}
}

func TestCompose_AllReasons(t *testing.T) {
	c := testComposer(t)

	for _, reason := range []Reason{
		ReasonEndOfTerm, ReasonMonthToMonth, ReasonEarlyTermination,
		ReasonLandlordViolation, ReasonOther,
	} {
		req := validRequest()
		req.Reason = reason
		letter, err := c.Compose(req)
		require.NoError(t, err, "reason %s", reason)
		require.NotEmpty(t, letter.Body)
		require.Equal(t, reason, letter.Reason)
		if reason == ReasonMonthToMonth {
			require.NotZero(t, letter.NoticeDays)
		} else {
			require.Zero(t, letter.NoticeDays)
		}
	}
}

func TestCompose_EndOfTermUsesFixedTermText(t *testing.T) {
	c := testComposer(t)
	catalog, err := statelaw.NewDefaultCatalog()
	require.NoError(t, err)
	rule, err := catalog.NoticeRule(statelaw.StateMD)
	require.NoError(t, err)

	req := validRequest()
	req.Reason = ReasonEndOfTerm
	letter, err := c.Compose(req)
	require.NoError(t, err)
	require.Contains(t, letter.Body, rule.FixedTermNoticeText)
}

func TestCompose_Deterministic(t *testing.T) {
	c := testComposer(t)
	req := validRequest()
	req.AdditionalNotes = "Keys will be left with the building manager."

	a, err := c.Compose(req)
	require.NoError(t, err)
	b, err := c.Compose(req)
	require.NoError(t, err)
	require.Equal(t, a.Body, b.Body)
	require.Equal(t, a.GeneratedAt, b.GeneratedAt)
	require.Contains(t, a.Body, "Keys will be left")
}

// Decomposed and precomposed Unicode inputs render the same letter.
func TestCompose_UnicodeNormalization(t *testing.T) {
	c := testComposer(t)

	precomposed := validRequest()
	precomposed.TenantName = "Jos\u00e9 Alvarez"

	decomposed := validRequest()
	decomposed.TenantName = "Jose\u0301 Alvarez"

	a, err := c.Compose(precomposed)
	require.NoError(t, err)
	b, err := c.Compose(decomposed)
	require.NoError(t, err)
	require.Equal(t, a.Body, b.Body)
}

func TestCompose_NilClockDefaultsToNow(t *testing.T) {
	catalog, err := statelaw.NewDefaultCatalog()
	require.NoError(t, err)
	c := NewComposer(catalog, nil)

	before := time.Now().UTC()
	letter, err := c.Compose(validRequest())
	require.NoError(t, err)
	require.False(t, letter.GeneratedAt.Before(before.Truncate(time.Second)))
}
