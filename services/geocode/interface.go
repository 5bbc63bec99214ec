package geocode

import (
	"context"

	"github.com/ujwal-s-r/travel-agent-deployed/models"
)

// Geocoder resolves a free-form place name to coordinates.
//
// The two outcome channels are deliberately distinct: (nil, nil) means the
// place is unknown or unrecognized, which the orchestrator treats as a
// conversational outcome; a non-nil error means the capability itself
// failed (network, timeout, malformed response).
type Geocoder interface {
	Resolve(ctx context.Context, name string) (*models.ResolvedPlace, error)
}
