package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"shelfsmart/internal/domain"
)

func TestKeystrokeBelowMinimumNeverArms(t *testing.T) {
	r := NewRecorder(3, time.Second)

	for _, q := range []string{"", "a", "ab", "  ab  "} {
		_, ok := r.Keystroke(q)
		require.False(t, ok, "query %q must not arm a save", q)
	}
}

func TestOnlySettledGenerationSaves(t *testing.T) {
	r := NewRecorder(3, time.Second)

	gen1, ok := r.Keystroke("tolk")
	require.True(t, ok)
	gen2, ok := r.Keystroke("tolki")
	require.True(t, ok)
	gen3, ok := r.Keystroke("tolkien")
	require.True(t, ok)

	// Earlier ticks fire against superseded generations.
	_, ok = r.Take(gen1)
	require.False(t, ok)
	_, ok = r.Take(gen2)
	require.False(t, ok)

	query, ok := r.Take(gen3)
	require.True(t, ok)
	require.Equal(t, "tolkien", query)

	// The same tick cannot claim twice.
	_, ok = r.Take(gen3)
	require.False(t, ok)
}

func TestDuplicateOfLastSavedIsSuppressed(t *testing.T) {
	r := NewRecorder(3, time.Second)

	gen, _ := r.Keystroke("dune")
	_, ok := r.Take(gen)
	require.True(t, ok)

	gen, _ = r.Keystroke("dune")
	_, ok = r.Take(gen)
	require.False(t, ok, "re-typing the saved query must not save again")

	gen, _ = r.Keystroke("dune messiah")
	query, ok := r.Take(gen)
	require.True(t, ok)
	require.Equal(t, "dune messiah", query)
}

func TestTakeNowCancelsPendingSave(t *testing.T) {
	r := NewRecorder(3, time.Second)

	gen, ok := r.Keystroke("found")
	require.True(t, ok)

	query, ok := r.TakeNow("foundation")
	require.True(t, ok)
	require.Equal(t, "foundation", query)

	// The debounce tick for the earlier keystroke lands late and is dropped.
	_, ok = r.Take(gen)
	require.False(t, ok)
}

func TestTakeNowRespectsMinimumLength(t *testing.T) {
	r := NewRecorder(3, time.Second)

	_, ok := r.TakeNow("ab")
	require.False(t, ok, "Enter does not bypass the length rule")

	_, ok = r.TakeNow("   ")
	require.False(t, ok)
}

func TestTakeNowDuplicateSuppressed(t *testing.T) {
	r := NewRecorder(3, time.Second)

	_, ok := r.TakeNow("hobbit")
	require.True(t, ok)
	_, ok = r.TakeNow("hobbit")
	require.False(t, ok)
	require.Equal(t, "hobbit", r.LastSaved())
}

func TestRecorderDefaults(t *testing.T) {
	r := NewRecorder(0, 0)
	require.Equal(t, time.Second, r.Delay())

	_, ok := r.Keystroke("ab")
	require.False(t, ok)
	_, ok = r.Keystroke("abc")
	require.True(t, ok)
}

func TestTimeAgoBuckets(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		past time.Time
		want string
	}{
		{"just now", now.Add(-30 * time.Second), "Just now"},
		{"one minute", now.Add(-1 * time.Minute), "1 min ago"},
		{"minutes", now.Add(-45 * time.Minute), "45 mins ago"},
		{"one hour", now.Add(-90 * time.Minute), "1 hour ago"},
		{"hours", now.Add(-5 * time.Hour), "5 hours ago"},
		{"one day", now.Add(-30 * time.Hour), "1 day ago"},
		{"days", now.Add(-3 * 24 * time.Hour), "3 days ago"},
		{"old", now.Add(-30 * 24 * time.Hour), "Feb 13, 2026"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := TimeAgo(tc.past.Format(time.RFC3339), now)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestTimeAgoUnparseableFallsThrough(t *testing.T) {
	require.Equal(t, "yesterday-ish", TimeAgo("yesterday-ish", time.Now()))
}

func TestSimilarQueries(t *testing.T) {
	records := []domain.SearchRecord{
		{Query: "tolkien"},
		{Query: "tolkein"},
		{Query: "Tolkien"},
		{Query: "asimov"},
		{Query: "tolkein"},
	}

	got := Similar(records, "tolkien")
	require.Equal(t, []string{"tolkein"}, got,
		"exact matches excluded, duplicates collapsed, distant queries dropped")

	require.Nil(t, Similar(records, ""))
	require.Nil(t, Similar(records, "completely different"))
}
