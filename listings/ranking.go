package listings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ecobites/ecobites-api/geo"
	"github.com/ecobites/ecobites-api/geocode"
	"github.com/ecobites/ecobites-api/models"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
)

// ErrNoAddress is returned for a listing that has neither coordinates nor
// enough address fields to geocode.
var ErrNoAddress = errors.New("listing has no coordinates or address")

type SortKey string

const (
	SortDistance SortKey = "distance"
	SortExpiry   SortKey = "expiry"
)

// Geocoder resolves a free-form postal address to coordinates.
type Geocoder interface {
	Forward(ctx context.Context, query string) (geocode.Coordinates, error)
}

// Options configures a ranking run. Requester is nil when the caller could
// not determine the requester's position; distances are then omitted.
type Options struct {
	Requester *geocode.Coordinates
	SortKey   SortKey
}

type FoodListing struct {
	Donation   models.FoodDonation `json:"donation"`
	DistanceKm *float64            `json:"distanceKm,omitempty"`
	NextExpiry time.Time           `json:"nextExpiry"`
}

type NonFoodListing struct {
	Donation   models.NonFoodDonation `json:"donation"`
	DistanceKm *float64               `json:"distanceKm,omitempty"`
}

// Ranker builds the availability feed: it filters expired food items, resolves
// listing coordinates (geocoding addresses when needed), computes distances to
// the requester and sorts by the requested key.
type Ranker struct {
	geocoder Geocoder
	log      *logrus.Logger
	now      func() time.Time
}

func NewRanker(geocoder Geocoder, log *logrus.Logger) *Ranker {
	return &Ranker{geocoder: geocoder, log: log, now: time.Now}
}

// RankFood ranks food donations. Items whose expiry date is strictly before
// now are dropped, and a donation with no remaining items is dropped entirely.
// When a requester position is given, listings whose coordinates cannot be
// resolved are excluded from the ranked result; those failures come back as an
// aggregated non-fatal error.
func (r *Ranker) RankFood(ctx context.Context, donations []models.FoodDonation, opts Options) ([]FoodListing, error) {
	now := r.now()

	fresh := make([]FoodListing, 0, len(donations))
	for _, donation := range donations {
		items := make([]models.FoodItem, 0, len(donation.FoodItems))
		for _, item := range donation.FoodItems {
			if item.ExpiryDate.Before(now) {
				continue
			}
			items = append(items, item)
		}
		if len(items) == 0 {
			continue
		}
		donation.FoodItems = items
		fresh = append(fresh, FoodListing{Donation: donation, NextExpiry: earliestExpiry(items)})
	}

	sortKey := opts.SortKey
	if sortKey == "" {
		sortKey = SortExpiry
	}

	if opts.Requester == nil {
		r.sortFood(fresh, SortExpiry)
		return fresh, nil
	}

	ranked := make([]*FoodListing, len(fresh))
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs *multierror.Error
	)
	for i := range fresh {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			listing := fresh[i]
			coords, err := r.resolve(ctx, listing.Donation.Latitude, listing.Donation.Longitude, listing.Donation.Address)
			if err != nil {
				r.log.WithError(err).WithField("donationId", listing.Donation.ID).Debug("Excluding food listing from ranked result")
				mu.Lock()
				errs = multierror.Append(errs, fmt.Errorf("donation %d: %w", listing.Donation.ID, err))
				mu.Unlock()
				return
			}
			km := geo.HaversineKm(opts.Requester.Latitude, opts.Requester.Longitude, coords.Latitude, coords.Longitude)
			listing.DistanceKm = &km
			ranked[i] = &listing
		}(i)
	}
	wg.Wait()

	result := make([]FoodListing, 0, len(ranked))
	for _, listing := range ranked {
		if listing != nil {
			result = append(result, *listing)
		}
	}
	r.sortFood(result, sortKey)
	return result, errs.ErrorOrNil()
}

// RankNonFood ranks non-food donations. Their coordinates are mandatory at
// creation, so no geocoding is involved; sorting defaults to distance.
func (r *Ranker) RankNonFood(donations []models.NonFoodDonation, opts Options) []NonFoodListing {
	result := make([]NonFoodListing, 0, len(donations))
	for _, donation := range donations {
		listing := NonFoodListing{Donation: donation}
		if opts.Requester != nil {
			km := geo.HaversineKm(opts.Requester.Latitude, opts.Requester.Longitude, donation.Latitude, donation.Longitude)
			listing.DistanceKm = &km
		}
		result = append(result, listing)
	}

	sortKey := opts.SortKey
	if sortKey == "" {
		sortKey = SortDistance
	}
	switch {
	case sortKey == SortDistance && opts.Requester != nil:
		sort.SliceStable(result, func(i, j int) bool {
			return *result[i].DistanceKm < *result[j].DistanceKm
		})
	case sortKey == SortExpiry:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Donation.AvailableUntil.Before(result[j].Donation.AvailableUntil)
		})
	}
	return result
}

func (r *Ranker) resolve(ctx context.Context, lat, lng *float64, address models.Address) (geocode.Coordinates, error) {
	if lat != nil && lng != nil {
		return geocode.Coordinates{Latitude: *lat, Longitude: *lng}, nil
	}
	query := addressQuery(address)
	if query == "" {
		return geocode.Coordinates{}, ErrNoAddress
	}
	return r.geocoder.Forward(ctx, query)
}

func (r *Ranker) sortFood(list []FoodListing, key SortKey) {
	if key == SortDistance {
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].DistanceKm == nil || list[j].DistanceKm == nil {
				return list[j].DistanceKm == nil && list[i].DistanceKm != nil
			}
			return *list[i].DistanceKm < *list[j].DistanceKm
		})
		return
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].NextExpiry.Before(list[j].NextExpiry)
	})
}

func addressQuery(a models.Address) string {
	parts := make([]string, 0, 5)
	for _, part := range []string{a.Street, a.City, a.State, a.PostalCode, a.Country} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

func earliestExpiry(items []models.FoodItem) time.Time {
	earliest := items[0].ExpiryDate
	for _, item := range items[1:] {
		if item.ExpiryDate.Before(earliest) {
			earliest = item.ExpiryDate
		}
	}
	return earliest
}
