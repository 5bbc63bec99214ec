// File: services/trip/orchestrator.go
package trip

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ujwal-s-r/travel-agent-deployed/models"
	"github.com/ujwal-s-r/travel-agent-deployed/services/geocode"
	"github.com/ujwal-s-r/travel-agent-deployed/services/intent"
	"github.com/ujwal-s-r/travel-agent-deployed/services/places"
	"github.com/ujwal-s-r/travel-agent-deployed/services/weather"

	"go.uber.org/zap"
)

// ErrEmptyQuery rejects blank input before orchestration begins.
var ErrEmptyQuery = errors.New("query must not be empty")

// PlannerService turns a free-text travel query into a TripAnswer.
type PlannerService interface {
	PlanTrip(ctx context.Context, query string) (*models.TripAnswer, error)
}

// DefaultPlanner sequences the capabilities: classify the query, geocode
// the place candidate, then fetch weather and attractions concurrently for
// whichever the intent asks for. A failed weather or places call degrades
// its clause of the answer; it never aborts the request. Only a geocoder
// infrastructure failure surfaces as success=false, since without
// coordinates nothing downstream can run.
type DefaultPlanner struct {
	Classifier intent.Classifier
	Geocoder   geocode.Geocoder
	Weather    weather.Service
	Places     places.Service
	Logger     *zap.Logger

	// CapabilityTimeout bounds each individual capability call.
	CapabilityTimeout time.Duration
}

func (p *DefaultPlanner) timeout() time.Duration {
	if p.CapabilityTimeout > 0 {
		return p.CapabilityTimeout
	}
	return 10 * time.Second
}

func (p *DefaultPlanner) PlanTrip(ctx context.Context, query string) (*models.TripAnswer, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	in := p.Classifier.Classify(ctx, query)

	if in.PlaceCandidate == "" {
		p.Logger.Info("no place candidate in query", zap.String("query", query))
		return &models.TripAnswer{
			Success:  true,
			Response: "I couldn't identify which place you're asking about. Please mention a place name.",
		}, nil
	}

	geoCtx, cancel := context.WithTimeout(ctx, p.timeout())
	resolved, err := p.Geocoder.Resolve(geoCtx, in.PlaceCandidate)
	cancel()
	if err != nil {
		p.Logger.Error("geocoder unavailable", zap.String("candidate", in.PlaceCandidate), zap.Error(err))
		return &models.TripAnswer{
			Success:  false,
			Error:    fmt.Sprintf("geocoding failed: %v", err),
			Response: "I'm having trouble reaching my data sources right now. Please try again later.",
			Place:    in.PlaceCandidate,
		}, nil
	}
	if resolved == nil {
		p.Logger.Info("place not found", zap.String("candidate", in.PlaceCandidate))
		return &models.TripAnswer{
			Success:  true,
			Place:    in.PlaceCandidate,
			Response: fmt.Sprintf("I don't know if the place '%s' exists. Please check the spelling or try a different name.", in.PlaceCandidate),
		}, nil
	}

	weatherRes, placesRes := p.fanOut(ctx, in, resolved)

	answer := &models.TripAnswer{
		Success:   true,
		Place:     resolved.Name,
		Latitude:  &resolved.Latitude,
		Longitude: &resolved.Longitude,
		Response:  Compose(resolved.Name, in, weatherRes, placesRes),
	}

	if weatherRes != nil {
		answer.HasWeather = true
		answer.Temperature = &weatherRes.TemperatureCelsius
		answer.PrecipitationChance = &weatherRes.PrecipitationChancePercent
	}
	if placesRes != nil {
		answer.HasPlaces = true
		names := make([]string, 0, len(placesRes))
		for _, a := range placesRes {
			names = append(names, a.Name)
		}
		answer.Attractions = names
		answer.AttractionsWithCoords = placesRes
	}

	return answer, nil
}

// fanOut runs the weather and places calls concurrently for whichever the
// intent flags request. Each call gets its own timeout and its failure is
// contained here: a nil result means "unavailable" downstream. The two
// calls never block each other's success.
func (p *DefaultPlanner) fanOut(ctx context.Context, in models.Intent, place *models.ResolvedPlace) (*models.WeatherReport, []models.Attraction) {
	var (
		weatherRes *models.WeatherReport
		placesRes  []models.Attraction
		wg         sync.WaitGroup
	)

	if in.WantsWeather {
		wg.Add(1)
		go func() {
			defer wg.Done()
			callCtx, cancel := context.WithTimeout(ctx, p.timeout())
			defer cancel()
			res, err := p.Weather.Fetch(callCtx, place.Latitude, place.Longitude)
			if err != nil {
				p.Logger.Warn("weather capability unavailable", zap.String("place", place.Name), zap.Error(err))
				return
			}
			weatherRes = res
		}()
	}

	if in.WantsPlaces {
		wg.Add(1)
		go func() {
			defer wg.Done()
			callCtx, cancel := context.WithTimeout(ctx, p.timeout())
			defer cancel()
			res, err := p.Places.Fetch(callCtx, place.Latitude, place.Longitude, places.DefaultLimit)
			if err != nil {
				p.Logger.Warn("places capability unavailable", zap.String("place", place.Name), zap.Error(err))
				return
			}
			placesRes = res
		}()
	}

	wg.Wait()
	return weatherRes, placesRes
}
