package stats

import (
	"context"
	"fmt"

	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/apiclient"
)

const Path = "/api/public-home-stats/"

// Stats are the public platform totals shown on the home page.
type Stats struct {
	Volunteers     int64 `json:"volunteers"`
	Projects       int64 `json:"projects"`
	Beneficiaries  int64 `json:"beneficiaries"`
	VolunteerHours int64 `json:"volunteer_hours"`
}

// Keys of the board items, in display order. Each doubles as the suffix of
// its label's translation key.
const (
	KeyVolunteers     = "volunteers"
	KeyProjects       = "projects"
	KeyBeneficiaries  = "beneficiaries"
	KeyVolunteerHours = "volunteer_hours"
)

// Getter is the part of apiclient.Client used to fetch the stats.
type Getter interface {
	GetJSON(ctx context.Context, path string, out any, opts ...apiclient.RequestOption) error
}

// Fetch loads the stats. The endpoint is public, so no token is required.
func Fetch(ctx context.Context, api Getter) (Stats, error) {
	var s Stats
	if err := api.GetJSON(ctx, Path, &s); err != nil {
		return Stats{}, fmt.Errorf("fetching home stats: %w", err)
	}
	return s, nil
}

type entry struct {
	key   string
	value int64
}

func (s Stats) entries() []entry {
	return []entry{
		{KeyVolunteers, s.Volunteers},
		{KeyProjects, s.Projects},
		{KeyBeneficiaries, s.Beneficiaries},
		{KeyVolunteerHours, s.VolunteerHours},
	}
}
