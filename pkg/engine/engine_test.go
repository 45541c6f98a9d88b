package engine

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Tenantry-Labs/tenantry/core/pkg/deposit"
	"github.com/Tenantry-Labs/tenantry/core/pkg/latefee"
	"github.com/Tenantry-Labs/tenantry/core/pkg/notice"
	"github.com/Tenantry-Labs/tenantry/core/pkg/statelaw"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	catalog, err := statelaw.NewDefaultCatalog()
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(catalog, logger)
}

func TestEvaluateLateFee_StampsMetadata(t *testing.T) {
	e := testEngine(t)

	out, err := e.EvaluateLateFee(context.Background(), latefee.Input{
		State:            statelaw.StateCO,
		MonthlyRentCents: 60000,
		ChargedFeeCents:  6000,
		GracePeriodDays:  7,
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.RequestID)
	require.Equal(t, e.CatalogHash(), out.CatalogHash)
	require.Equal(t, latefee.VerdictExcessive, out.Result.Verdict)
}

func TestEvaluateLateFee_DistinctRequestIDs(t *testing.T) {
	e := testEngine(t)
	in := latefee.Input{State: statelaw.StateNY, MonthlyRentCents: 80000, ChargedFeeCents: 1000, GracePeriodDays: 5}

	a, err := e.EvaluateLateFee(context.Background(), in)
	require.NoError(t, err)
	b, err := e.EvaluateLateFee(context.Background(), in)
	require.NoError(t, err)
	require.NotEqual(t, a.RequestID, b.RequestID)
	require.Equal(t, a.Result, b.Result)
}

func TestEvaluateDepositCap(t *testing.T) {
	e := testEngine(t)

	out, err := e.EvaluateDepositCap(context.Background(), deposit.Input{
		State:                 statelaw.StateNY,
		MonthlyRentCents:      250000,
		RequestedDepositCents: 250000,
	})
	require.NoError(t, err)
	require.True(t, out.Result.Capped)
	require.True(t, out.Result.WithinCap)
	require.Equal(t, e.CatalogHash(), out.CatalogHash)
}

func TestComposeTerminationNotice(t *testing.T) {
	catalog, err := statelaw.NewDefaultCatalog()
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := func() time.Time { return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC) }
	e := New(catalog, logger).WithComposer(notice.NewComposer(catalog, clock))

	out, err := e.ComposeTerminationNotice(context.Background(), notice.Request{
		TenantName:      "Sam Okafor",
		LandlordName:    "Harborline Rentals LLC",
		PropertyAddress: "77 Pratt Street, Baltimore, MD 21201",
		State:           statelaw.StateMD,
		TerminationDate: time.Date(2025, time.August, 31, 0, 0, 0, 0, time.UTC),
		Reason:          notice.ReasonMonthToMonth,
	})
	require.NoError(t, err)
	require.Contains(t, out.Letter.Body, "60 days' written notice")
	require.Contains(t, out.Letter.Body, "June 1, 2025")
	require.NotEmpty(t, out.RequestID)
}

func TestSnapshot_CountsToolsVerdictsAndErrors(t *testing.T) {
	e := testEngine(t)
	ctx := context.Background()

	_, err := e.EvaluateLateFee(ctx, latefee.Input{State: statelaw.StateCA, MonthlyRentCents: 200000, ChargedFeeCents: 5000})
	require.NoError(t, err)
	_, err = e.EvaluateLateFee(ctx, latefee.Input{State: statelaw.StateCA, MonthlyRentCents: 200000, ChargedFeeCents: 50000})
	require.NoError(t, err)
	_, err = e.EvaluateDepositCap(ctx, deposit.Input{State: statelaw.StateTX, MonthlyRentCents: 100000, RequestedDepositCents: 100000})
	require.NoError(t, err)
	_, err = e.EvaluateLateFee(ctx, latefee.Input{State: "PR", MonthlyRentCents: 100000})
	require.Error(t, err)

	m := e.Snapshot()
	require.Equal(t, int64(2), m.ByTool[ToolLateFee])
	require.Equal(t, int64(1), m.ByTool[ToolDeposit])
	require.Equal(t, int64(1), m.ByVerdict[latefee.VerdictLegal])
	require.Equal(t, int64(1), m.ByVerdict[latefee.VerdictExcessive])
	require.Equal(t, int64(1), m.Errors)
}

func TestSnapshot_IsACopy(t *testing.T) {
	e := testEngine(t)
	m := e.Snapshot()
	m.ByTool[ToolLateFee] = 99

	require.Zero(t, e.Snapshot().ByTool[ToolLateFee])
}

func TestErrorsPassThroughUnwrapped(t *testing.T) {
	e := testEngine(t)

	_, err := e.EvaluateLateFee(context.Background(), latefee.Input{State: statelaw.StateCA, MonthlyRentCents: -1})
	var verr *statelaw.ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = e.EvaluateDepositCap(context.Background(), deposit.Input{State: "XX", MonthlyRentCents: 1000})
	var unsupported *statelaw.UnsupportedJurisdictionError
	require.ErrorAs(t, err, &unsupported)
}
