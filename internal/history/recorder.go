// Package history implements the debounced search-history recorder: which
// queries qualify for persistence, when the pending save fires, and how
// saved records are presented.
package history

import (
	"fmt"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"

	"shelfsmart/internal/domain"
)

// SearchType tags every saved query; the catalog table only has one search box.
const SearchType = "general"

// Recorder decides when a typed query becomes a saved search. It owns no
// timers: the UI schedules a tick for each generation it hands out, and a
// tick whose generation has been superseded is simply ignored. That gives
// trailing-edge debounce without a timer handle to cancel.
type Recorder struct {
	minLength int
	delay     time.Duration
	gen       int
	pending   string
	lastSaved string
}

// NewRecorder creates a recorder. Zero values fall back to the observed
// design: 3-character minimum, one second settle delay.
func NewRecorder(minLength int, delay time.Duration) *Recorder {
	if minLength <= 0 {
		minLength = 3
	}
	if delay <= 0 {
		delay = time.Second
	}
	return &Recorder{minLength: minLength, delay: delay}
}

// Delay returns the debounce interval for scheduling.
func (r *Recorder) Delay() time.Duration { return r.delay }

// Keystroke notes a change to the search input. When the query qualifies it
// returns a new generation and true; the caller schedules a save for that
// generation after Delay(). A non-qualifying query returns false and leaves
// any earlier pending save in place.
func (r *Recorder) Keystroke(query string) (int, bool) {
	query = strings.TrimSpace(query)
	if len(query) < r.minLength {
		return 0, false
	}
	r.gen++
	r.pending = query
	return r.gen, true
}

// Take claims the pending query for the given generation. It returns false
// when the generation has been superseded by a later keystroke or the query
// duplicates the last saved one.
func (r *Recorder) Take(gen int) (string, bool) {
	if gen != r.gen || r.pending == "" {
		return "", false
	}
	query := r.pending
	r.pending = ""
	if query == r.lastSaved {
		return "", false
	}
	r.lastSaved = query
	return query, true
}

// TakeNow claims the query immediately (Enter key), cancelling any pending
// debounced save. Queries below the minimum length never save, Enter or not.
func (r *Recorder) TakeNow(query string) (string, bool) {
	query = strings.TrimSpace(query)
	// Invalidate whatever is pending; Enter supersedes the timer.
	r.gen++
	r.pending = ""
	if len(query) < r.minLength {
		return "", false
	}
	if query == r.lastSaved {
		return "", false
	}
	r.lastSaved = query
	return query, true
}

// LastSaved reports the most recently claimed query.
func (r *Recorder) LastSaved() string { return r.lastSaved }

// TimeAgo humanizes a history timestamp relative to now, matching the web
// client's buckets.
func TimeAgo(createdAt string, now time.Time) string {
	past, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return createdAt
	}

	diff := now.Sub(past)
	mins := int(diff.Minutes())
	hours := int(diff.Hours())
	days := int(diff.Hours() / 24)

	switch {
	case mins < 1:
		return "Just now"
	case mins < 60:
		return fmt.Sprintf("%d min%s ago", mins, plural(mins))
	case hours < 24:
		return fmt.Sprintf("%d hour%s ago", hours, plural(hours))
	case days < 7:
		return fmt.Sprintf("%d day%s ago", days, plural(days))
	}
	return past.Format("Jan 2, 2006")
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}

// Similar returns past queries within edit distance 2 of q, excluding exact
// (case-insensitive) matches, in history order without duplicates.
func Similar(records []domain.SearchRecord, q string) []string {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return nil
	}

	seen := make(map[string]bool)
	var out []string
	for _, rec := range records {
		candidate := strings.ToLower(strings.TrimSpace(rec.Query))
		if candidate == "" || candidate == q || seen[candidate] {
			continue
		}
		if levenshtein.ComputeDistance(q, candidate) <= 2 {
			seen[candidate] = true
			out = append(out, rec.Query)
		}
	}
	return out
}
