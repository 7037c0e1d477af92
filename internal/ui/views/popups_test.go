package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"shelfsmart/internal/domain"
	"shelfsmart/internal/ui/state"
)

func TestHistoryPopupShowsLoadingUntilFirstFetch(t *testing.T) {
	styles := NewStyles()
	s := state.NewAppState()
	now := time.Now()

	require.Contains(t, RenderHistory(styles, s, now), "Loading...")

	s.HistoryLoaded = true
	require.Contains(t, RenderHistory(styles, s, now), "No recent searches")

	s.History = []domain.SearchRecord{
		{Query: "dune", ResultsCount: 2, CreatedAt: now.Format(time.RFC3339)},
	}
	out := RenderHistory(styles, s, now)
	require.Contains(t, out, "dune")
	require.NotContains(t, out, "Loading...")
}
