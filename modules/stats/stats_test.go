package stats_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RafeefAlsuhaibani/takaful-sub001/modules/stats"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/apiclient"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/countup"
)

var start = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func newClient(t *testing.T, status int, body string) *apiclient.Client {
	t.Helper()
	r := chi.NewRouter()
	r.Get(stats.Path, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			http.Error(w, "unexpected token", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	client, err := apiclient.New(srv.URL)
	require.NoError(t, err)
	return client
}

// finishing emits one frame past any animation's end, then stops.
func finishing(context.Context) <-chan time.Time {
	out := make(chan time.Time, 1)
	out <- start.Add(time.Hour)
	close(out)
	return out
}

type labels map[string]string

func (l labels) Message(key string) string {
	if v, ok := l[key]; ok {
		return v
	}
	return key
}

func TestFetch(t *testing.T) {
	t.Parallel()

	client := newClient(t, http.StatusOK,
		`{"volunteers":67000,"projects":120,"beneficiaries":15000,"volunteer_hours":250000,"extra":1}`)

	s, err := stats.Fetch(context.Background(), client)
	require.NoError(t, err)
	assert.Equal(t, stats.Stats{
		Volunteers:     67000,
		Projects:       120,
		Beneficiaries:  15000,
		VolunteerHours: 250000,
	}, s)
}

func TestFetch_Error(t *testing.T) {
	t.Parallel()

	client := newClient(t, http.StatusServiceUnavailable, `{"detail":"maintenance"}`)

	_, err := stats.Fetch(context.Background(), client)
	require.Error(t, err)
	apiErr, ok := apiclient.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "maintenance", apiErr.Detail())

	_, err = stats.Load(context.Background(), client)
	assert.Error(t, err)
}

func TestBoard_StartsAtZero(t *testing.T) {
	t.Parallel()

	b := stats.NewBoard(stats.Stats{Volunteers: 67000, Projects: -5}, stats.WithLabeler(labels{
		"stats.volunteers": "Volunteers",
	}))
	defer b.Close()

	items := b.Items()
	require.Len(t, items, 4)
	assert.Equal(t, []string{
		stats.KeyVolunteers, stats.KeyProjects, stats.KeyBeneficiaries, stats.KeyVolunteerHours,
	}, []string{items[0].Key, items[1].Key, items[2].Key, items[3].Key})

	assert.Equal(t, "Volunteers", items[0].Label)
	assert.Equal(t, "stats.projects", items[1].Label, "missing labels fall back to the key")
	assert.Equal(t, int64(67000), items[0].Target)
	assert.Equal(t, int64(0), items[1].Target, "negative totals are clamped")
	for _, it := range items {
		assert.Equal(t, int64(0), it.Value)
	}
}

func TestBoard_AnimatesAndResets(t *testing.T) {
	t.Parallel()

	var (
		mu        sync.Mutex
		published []stats.Item
	)
	client := newClient(t, http.StatusOK, `{"volunteers":67000,"projects":120,"beneficiaries":15000,"volunteer_hours":250000}`)

	b, err := stats.Load(context.Background(), client,
		stats.WithLanguage("en"),
		stats.WithCounterOptions(countup.WithDuration(time.Second)),
		stats.WithDriverOptions(
			countup.WithFrameSource(finishing),
			countup.WithClock(func() time.Time { return start }),
		),
		stats.WithListener(func(it stats.Item) {
			mu.Lock()
			published = append(published, it)
			mu.Unlock()
		}),
	)
	require.NoError(t, err)
	defer b.Close()

	ctx := context.Background()
	b.Observe(ctx, 0.3)
	assert.Equal(t, int64(0), b.Items()[0].Value, "below the threshold nothing runs")

	b.Observe(ctx, 0.6)
	b.Wait()

	items := b.Items()
	assert.Equal(t, int64(67000), items[0].Value)
	assert.Equal(t, "67,000", items[0].Display)
	assert.Equal(t, "250,000", items[3].Display)

	b.Observe(ctx, 0.1)
	for _, it := range b.Items() {
		assert.Equal(t, int64(0), it.Value)
		assert.Equal(t, "0", it.Display)
	}

	mu.Lock()
	defer mu.Unlock()
	assert.NotEmpty(t, published)
	assert.Equal(t, int64(0), published[len(published)-1].Value)
}

func TestBoard_CloseStopsUpdates(t *testing.T) {
	t.Parallel()

	b := stats.NewBoard(stats.Stats{Volunteers: 10},
		stats.WithDriverOptions(countup.WithFrameSource(finishing)),
	)
	b.Close()
	b.Observe(context.Background(), 1)
	b.Wait()
	assert.Equal(t, int64(0), b.Items()[0].Value)
}
