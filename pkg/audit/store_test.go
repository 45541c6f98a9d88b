package audit

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleRecord(id string, ts time.Time) *Record {
	return &Record{
		RequestID:   id,
		Tool:        "latefee",
		State:       "CO",
		Verdict:     "EXCESSIVE",
		CatalogHash: "deadbeef",
		Input:       `{"state":"CO","monthly_rent_cents":60000,"charged_fee_cents":6000}`,
		Output:      `{"verdict":"EXCESSIVE"}`,
		Timestamp:   ts,
	}
}

func TestAppendAndGet(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	want := sampleRecord("req-1", time.Date(2025, time.April, 2, 10, 0, 0, 0, time.UTC))
	require.NoError(t, s.Append(ctx, want))

	got, err := s.Get(ctx, "req-1")
	require.NoError(t, err)
	require.Equal(t, want.Tool, got.Tool)
	require.Equal(t, want.State, got.State)
	require.Equal(t, want.Verdict, got.Verdict)
	require.Equal(t, want.CatalogHash, got.CatalogHash)
	require.JSONEq(t, want.Input, got.Input)
	require.JSONEq(t, want.Output, got.Output)
	require.True(t, want.Timestamp.Equal(got.Timestamp))
}

func TestGet_NotFound(t *testing.T) {
	s := testStore(t)
	_, err := s.Get(context.Background(), "absent")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestAppend_DuplicateRequestIDRejected(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	ts := time.Now()

	require.NoError(t, s.Append(ctx, sampleRecord("req-1", ts)))
	require.Error(t, s.Append(ctx, sampleRecord("req-1", ts)))
}

func TestList_NewestFirst(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	base := time.Date(2025, time.April, 2, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		r := sampleRecord(fmt.Sprintf("req-%d", i), base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, s.Append(ctx, r))
	}

	records, err := s.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, "req-4", records[0].RequestID)
	require.Equal(t, "req-3", records[1].RequestID)
	require.Equal(t, "req-2", records[2].RequestID)
}

func TestList_Empty(t *testing.T) {
	s := testStore(t)
	records, err := s.List(context.Background(), 10)
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestEmptyVerdictRoundTrips(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	r := sampleRecord("req-n", time.Now())
	r.Tool = "notice"
	r.Verdict = ""
	require.NoError(t, s.Append(ctx, r))

	got, err := s.Get(ctx, "req-n")
	require.NoError(t, err)
	require.Empty(t, got.Verdict)
}
