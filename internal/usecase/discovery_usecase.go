package usecase

import (
	"context"
	"fmt"

	"velvet/internal/entity"
	"velvet/internal/repo/geo"
	"velvet/internal/repo/persistent"
	"velvet/pkg/logger"
)

const fallbackSampleSize = 20

// LocationSource resolves the viewer's current position. Implementations
// may block on an external fix; Discover bounds them with a deadline.
type LocationSource interface {
	Locate(ctx context.Context) (entity.LatLng, error)
}

// LatLngSource is a LocationSource for a position the caller already has.
type LatLngSource entity.LatLng

func (s LatLngSource) Locate(ctx context.Context) (entity.LatLng, error) {
	return entity.LatLng(s), nil
}

type DiscoveryUseCase interface {
	Discover(ctx context.Context, viewerID string, source LocationSource, radiusMiles float64) (*entity.DiscoveryResult, error)
	UpdateLocation(ctx context.Context, userID string, lat, lng float64) error
	SetGhostMode(ctx context.Context, userID string, enabled bool) error
}

type discoveryUseCase struct {
	profileRepo persistent.ProfileRepository
	edgeRepo    persistent.EdgeRepository
	geoIndex    geo.Index
	logger      *logger.Logger
}

func NewDiscoveryUseCase(
	profileRepo persistent.ProfileRepository,
	edgeRepo persistent.EdgeRepository,
	geoIndex geo.Index,
	log *logger.Logger,
) DiscoveryUseCase {
	return &discoveryUseCase{
		profileRepo: profileRepo,
		edgeRepo:    edgeRepo,
		geoIndex:    geoIndex,
		logger:      log,
	}
}

// Discover races the location source against ctx. A fix in time yields
// radius-limited nearby results; a timeout or source failure yields the
// unpositioned fallback sample with a notice. The fallback is a degraded
// answer, never an error.
func (uc *discoveryUseCase) Discover(ctx context.Context, viewerID string, source LocationSource, radiusMiles float64) (*entity.DiscoveryResult, error) {
	type fix struct {
		pos entity.LatLng
		err error
	}

	// Buffered so a late fix doesn't leak the goroutine.
	fixCh := make(chan fix, 1)
	go func() {
		pos, err := source.Locate(ctx)
		fixCh <- fix{pos: pos, err: err}
	}()

	select {
	case f := <-fixCh:
		if f.err != nil {
			uc.logger.Warn("Location fix failed for %s: %v", viewerID, f.err)
			return uc.fallback(viewerID, "location unavailable, showing a general sample")
		}
		return uc.nearby(ctx, viewerID, f.pos, radiusMiles)
	case <-ctx.Done():
		uc.logger.Warn("Location fix timed out for %s", viewerID)
		return uc.fallback(viewerID, "location timed out, showing a general sample")
	}
}

func (uc *discoveryUseCase) nearby(ctx context.Context, viewerID string, pos entity.LatLng, radiusMiles float64) (*entity.DiscoveryResult, error) {
	if err := uc.UpdateLocation(ctx, viewerID, pos.Latitude, pos.Longitude); err != nil {
		uc.logger.Warn("Failed to record location for %s: %v", viewerID, err)
	}

	hits, err := uc.geoIndex.Nearby(ctx, pos.Latitude, pos.Longitude, entity.MilesToMeters(radiusMiles), fallbackSampleSize+1)
	if err != nil {
		uc.logger.Warn("Geo query failed for %s: %v", viewerID, err)
		return uc.fallback(viewerID, "location search unavailable, showing a general sample")
	}

	ids := make([]string, 0, len(hits))
	distances := make(map[string]float64, len(hits))
	for _, hit := range hits {
		if hit.UserID == viewerID {
			continue
		}
		ids = append(ids, hit.UserID)
		distances[hit.UserID] = hit.DistanceMeters
	}

	profiles, err := uc.profileRepo.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("load nearby profiles: %w", err)
	}
	byID := make(map[string]*entity.Profile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}

	blocked, err := uc.blockedSet(viewerID)
	if err != nil {
		return nil, err
	}

	// Walk ids, not profiles, to keep the store's nearest-first order.
	results := make([]entity.NearbyProfile, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok || p.GhostMode || blocked[id] {
			continue
		}
		results = append(results, entity.NearbyProfile{
			Profile:        *p,
			DistanceMeters: distances[id],
		})
	}

	return &entity.DiscoveryResult{
		Mode:     entity.DiscoveryNearby,
		Profiles: results,
	}, nil
}

func (uc *discoveryUseCase) fallback(viewerID, notice string) (*entity.DiscoveryResult, error) {
	profiles, err := uc.profileRepo.Sample(fallbackSampleSize)
	if err != nil {
		return nil, fmt.Errorf("fallback sample: %w", err)
	}

	blocked, err := uc.blockedSet(viewerID)
	if err != nil {
		return nil, err
	}

	results := make([]entity.NearbyProfile, 0, len(profiles))
	for _, p := range profiles {
		if p.ID == viewerID || p.GhostMode || blocked[p.ID] {
			continue
		}
		results = append(results, entity.NearbyProfile{Profile: *p})
	}

	return &entity.DiscoveryResult{
		Mode:     entity.DiscoveryFallback,
		Profiles: results,
		Notice:   notice,
	}, nil
}

func (uc *discoveryUseCase) blockedSet(viewerID string) (map[string]bool, error) {
	if viewerID == "" {
		return map[string]bool{}, nil
	}
	ids, err := uc.edgeRepo.ListBlockedIDs(viewerID)
	if err != nil {
		return nil, fmt.Errorf("list blocks: %w", err)
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// UpdateLocation stores the fix and refreshes the geo index. Ghost-mode
// profiles keep their stored location but stay out of the index.
func (uc *discoveryUseCase) UpdateLocation(ctx context.Context, userID string, lat, lng float64) error {
	if err := uc.profileRepo.UpdateLocation(userID, lat, lng); err != nil {
		return fmt.Errorf("update location: %w", err)
	}

	profile, err := uc.profileRepo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	if profile.GhostMode {
		return nil
	}
	return uc.geoIndex.Upsert(ctx, userID, lat, lng)
}

func (uc *discoveryUseCase) SetGhostMode(ctx context.Context, userID string, enabled bool) error {
	if err := uc.profileRepo.SetGhostMode(userID, enabled); err != nil {
		return fmt.Errorf("set ghost mode: %w", err)
	}

	if enabled {
		return uc.geoIndex.Remove(ctx, userID)
	}

	profile, err := uc.profileRepo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	if profile.Latitude == 0 && profile.Longitude == 0 {
		return nil
	}
	return uc.geoIndex.Upsert(ctx, userID, profile.Latitude, profile.Longitude)
}
