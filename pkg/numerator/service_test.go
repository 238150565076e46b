package numerator

import (
	"context"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRow satisfies pgx.Row for a single upsert result.
type mockRow struct {
	prefix  string
	padding int
	num     int64
	err     error
}

func (m *mockRow) Scan(dest ...any) error {
	if m.err != nil {
		return m.err
	}
	*(dest[0].(*string)) = m.prefix
	*(dest[1].(*int)) = m.padding
	*(dest[2].(*int64)) = m.num
	return nil
}

// mockQuerier simulates the atomic upsert semantics of number_series.
type mockQuerier struct {
	mu     sync.Mutex
	series map[string]*Series
}

func newMockQuerier() *mockQuerier {
	return &mockQuerier{series: make(map[string]*Series)}
}

func (m *mockQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	m.mu.Lock()
	defer m.mu.Unlock()

	seriesType := args[0].(string)
	sr, ok := m.series[seriesType]
	if !ok {
		sr = &Series{
			SeriesType: seriesType,
			Prefix:     args[1].(string),
			Padding:    args[2].(int),
		}
		m.series[seriesType] = sr
	}
	sr.CurrentNumber++
	return &mockRow{prefix: sr.Prefix, padding: sr.Padding, num: sr.CurrentNumber}
}

func (m *mockQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func TestNext_FormatsWithDefaultPrefixAndPadding(t *testing.T) {
	svc := New(newMockQuerier())
	ctx := context.Background()

	num, err := svc.Next(ctx, SeriesGRN)
	require.NoError(t, err)
	assert.Equal(t, "GRN0001", num)

	num, err = svc.Next(ctx, SeriesGRN)
	require.NoError(t, err)
	assert.Equal(t, "GRN0002", num)
}

func TestNext_PrefixDerivation(t *testing.T) {
	svc := New(newMockQuerier())
	ctx := context.Background()

	num, err := svc.Next(ctx, SeriesPurchaseIndent)
	require.NoError(t, err)
	assert.Equal(t, "PUR0001", num)

	num, err = svc.Next(ctx, SeriesQC)
	require.NoError(t, err)
	assert.Equal(t, "QC0001", num)
}

func TestNext_SeriesAreIndependent(t *testing.T) {
	svc := New(newMockQuerier())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Next(ctx, SeriesIssue)
		require.NoError(t, err)
	}
	num, err := svc.Next(ctx, SeriesReturn)
	require.NoError(t, err)
	assert.Equal(t, "RET0001", num)
}

func TestNext_ConcurrentCallersGetDistinctNumbers(t *testing.T) {
	svc := New(newMockQuerier())
	ctx := context.Background()

	const n = 50
	results := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			num, err := svc.Next(ctx, SeriesAdjustment)
			assert.NoError(t, err)
			results <- num
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[string]bool, n)
	for num := range results {
		assert.False(t, seen[num], "duplicate number %s", num)
		seen[num] = true
	}
	assert.Len(t, seen, n)
}

func TestNext_EmptySeriesType(t *testing.T) {
	svc := New(newMockQuerier())
	_, err := svc.Next(context.Background(), "")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "GRN0007", Format("GRN", 4, 7))
	assert.Equal(t, "TRA12345", Format("TRA", 4, 12345))
	assert.Equal(t, "ISS0001", Format("ISS", 0, 1)) // zero padding falls back to default
}
