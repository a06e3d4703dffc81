package services

import (
	"context"
	"net/url"
	"strconv"

	"github.com/jmercado/uicguessr/internal/catalog"
	"github.com/jmercado/uicguessr/internal/errors"
	"github.com/jmercado/uicguessr/internal/geo"
	"github.com/jmercado/uicguessr/internal/logger"
	"github.com/jmercado/uicguessr/internal/models"
)

// NavigateRequest names a walking-route query. The destination is always a
// building; the origin is either another building or raw coordinates from
// the browser's geolocation.
type NavigateRequest struct {
	To     string
	From   string
	Origin *geo.Point
}

// NavigationResult is a walking route to a campus building. From is nil when
// the origin was a raw coordinate pair.
type NavigationResult struct {
	From    *models.Building `json:"from,omitempty"`
	To      models.Building  `json:"to"`
	Route   geo.Route        `json:"route"`
	MapsURL string           `json:"maps_url"`
}

// CampusService serves the static campus catalog: buildings, the resource
// directory, the map model and point-to-point navigation.
type CampusService interface {
	Buildings(ctx context.Context) []models.Building
	Building(ctx context.Context, key string) (models.Building, error)
	Resources(ctx context.Context) []models.CampusResource
	Personas(ctx context.Context) []models.Persona
	MajorDecks(ctx context.Context) []models.MajorDeck
	Map(ctx context.Context, highlight string) (catalog.MapModel, error)
	Navigate(ctx context.Context, req NavigateRequest) (NavigationResult, error)
}

type campusService struct{}

// NewCampusService creates a new CampusService
func NewCampusService() CampusService {
	return campusService{}
}

func (campusService) Buildings(ctx context.Context) []models.Building {
	return catalog.Buildings()
}

func (campusService) Building(ctx context.Context, key string) (models.Building, error) {
	b, ok := catalog.Building(key)
	if !ok {
		return models.Building{}, errors.NewNotFoundError("building", key)
	}
	return b, nil
}

func (campusService) Resources(ctx context.Context) []models.CampusResource {
	return catalog.CampusResources()
}

func (campusService) Personas(ctx context.Context) []models.Persona {
	return catalog.Personas()
}

func (campusService) MajorDecks(ctx context.Context) []models.MajorDeck {
	return catalog.MajorDecks()
}

func (campusService) Map(ctx context.Context, highlight string) (catalog.MapModel, error) {
	if highlight != "" {
		if _, ok := catalog.Building(highlight); !ok {
			return catalog.MapModel{}, errors.NewNotFoundError("building", highlight)
		}
	}
	return catalog.CampusMapModel(highlight), nil
}

func (campusService) Navigate(ctx context.Context, req NavigateRequest) (NavigationResult, error) {
	log := logger.FromContext(ctx)

	dst, ok := catalog.Building(req.To)
	if !ok {
		return NavigationResult{}, errors.NewNotFoundError("building", req.To)
	}

	result := NavigationResult{To: dst}
	var origin geo.Point
	switch {
	case req.From != "":
		src, ok := catalog.Building(req.From)
		if !ok {
			return NavigationResult{}, errors.NewNotFoundError("building", req.From)
		}
		result.From = &src
		origin = geo.Point{Lat: src.Lat, Lng: src.Lng}
	case req.Origin != nil:
		origin = *req.Origin
	default:
		return NavigationResult{}, errors.NewValidationError("from", "a from building or lat/lng coordinates are required")
	}

	destination := geo.Point{Lat: dst.Lat, Lng: dst.Lng}
	result.Route = geo.Walk(origin, destination)
	result.MapsURL = directionsURL(origin, destination)
	log.Debug("navigate to %s: %.0fm, %d min, %s", req.To, result.Route.Meters, result.Route.Minutes, result.Route.Bearing)
	return result, nil
}

func coordPair(p geo.Point) string {
	return strconv.FormatFloat(p.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lng, 'f', -1, 64)
}

// placeURL links a point on Google Maps.
func placeURL(p geo.Point) string {
	return "https://www.google.com/maps?q=" + coordPair(p)
}

// directionsURL links walking directions between two points on Google Maps.
func directionsURL(from, to geo.Point) string {
	return "https://www.google.com/maps/dir/?api=1&origin=" + url.QueryEscape(coordPair(from)) +
		"&destination=" + url.QueryEscape(coordPair(to)) + "&travelmode=walking"
}
