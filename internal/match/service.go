// internal/match/service.go

package match

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrStoreUnavailable = errors.New("profile store unavailable")
)

// Store is the profile store the discovery engine reads from and the
// mutation operations write through. Implementations map their own
// not-found condition to ErrProfileNotFound and wrap any other failure
// in ErrStoreUnavailable.
type Store interface {
	FindByID(ctx context.Context, id int64) (*Profile, error)
	FindByFilter(ctx context.Context, filter CandidateFilter) ([]*Profile, error)
	FindWithLocationByFilter(ctx context.Context, filter CandidateFilter) ([]*Profile, error)
	GetRelations(ctx context.Context, userID int64) (*Relations, error)

	CreateLike(ctx context.Context, likerID, targetID int64, image, comment *string, dedup bool) error
	CreateMatch(ctx context.Context, userID, targetID int64) error
	DeleteLike(ctx context.Context, likerID, targetID int64) error

	ListMatches(ctx context.Context, userID int64) ([]*Profile, error)
	ListReceivedLikes(ctx context.Context, userID int64) ([]*ReceivedLike, error)
}

type Service interface {
	// Discovery
	DiscoverCandidates(ctx context.Context, userID int64) ([]*Profile, error)
	DiscoverNearby(ctx context.Context, userID int64, lat, lon, radiusKm float64) ([]*Profile, error)

	// Relationship mutations
	Like(ctx context.Context, userID, targetID int64, image, comment *string) error
	CreateMatch(ctx context.Context, userID, targetID int64) error
	DeleteLike(ctx context.Context, userID, targetID int64) error

	// Listings
	GetMatches(ctx context.Context, userID int64) ([]*Profile, error)
	GetReceivedLikes(ctx context.Context, userID int64) ([]*ReceivedLike, error)
}

// Options tune engine behavior that product has not pinned down yet.
type Options struct {
	// DedupLikes makes a repeated like from the same sender replace the
	// earlier entry instead of accumulating a duplicate.
	DedupLikes bool
	// CacheTTL bounds the staleness of cached global discovery results.
	// Zero disables caching.
	CacheTTL time.Duration
}

type service struct {
	store Store
	cache *redis.Client // optional, nil disables caching
	opts  Options
}

// NewService creates the match discovery engine. cache may be nil.
func NewService(store Store, cache *redis.Client, opts Options) Service {
	return &service{store: store, cache: cache, opts: opts}
}

// DiscoverCandidates returns every profile that passes the acting user's
// preference filter, minus the user itself and everyone already matched or
// liked. The result order follows storage order and is unstable by contract.
func (s *service) DiscoverCandidates(ctx context.Context, userID int64) ([]*Profile, error) {
	if cached, ok := s.cacheGet(ctx, userID); ok {
		discoveryCacheHitsTotal.Inc()
		recordDiscovery("global", len(cached))
		return cached, nil
	}

	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	filter := BuildCandidateFilter(user)

	relations, err := s.store.GetRelations(ctx, userID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.store.FindByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := exclude(candidates, NewExclusionSet(userID, relations))

	s.cacheSet(ctx, userID, result)
	recordDiscovery("global", len(result))
	return result, nil
}

// DiscoverNearby is the radius-bounded variant: the same filter and
// exclusions as DiscoverCandidates, restricted to profiles with a location
// within radiusKm of the reference coordinate. Exclusions are always derived
// from the acting user's own relations.
func (s *service) DiscoverNearby(ctx context.Context, userID int64, lat, lon, radiusKm float64) ([]*Profile, error) {
	if radiusKm <= 0 {
		return nil, fmt.Errorf("%w: radius must be greater than zero", ErrInvalidArgument)
	}

	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	filter := BuildCandidateFilter(user)

	relations, err := s.store.GetRelations(ctx, userID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.store.FindWithLocationByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	nearby, err := WithinRadius(exclude(candidates, NewExclusionSet(userID, relations)), lat, lon, radiusKm)
	if err != nil {
		return nil, err
	}

	recordDiscovery("nearby", len(nearby))
	return nearby, nil
}

// Like appends a received-like entry to the target and records the target in
// the liker's liked set. Repeated likes accumulate unless DedupLikes is set.
func (s *service) Like(ctx context.Context, userID, targetID int64, image, comment *string) error {
	if userID == targetID {
		return fmt.Errorf("%w: cannot like your own profile", ErrInvalidArgument)
	}

	if err := s.ensureExists(ctx, userID, targetID); err != nil {
		return err
	}

	// Matched pairs never hold a pending like; CreateMatch clears them and
	// this guard keeps a later like from re-creating one.
	relations, err := s.store.GetRelations(ctx, userID)
	if err != nil {
		return err
	}
	for _, id := range relations.MatchIDs {
		if id == targetID {
			return fmt.Errorf("%w: profiles are already matched", ErrInvalidArgument)
		}
	}

	if err := s.store.CreateLike(ctx, userID, targetID, image, comment, s.opts.DedupLikes); err != nil {
		return err
	}

	likesTotal.Inc()
	s.cacheInvalidate(ctx, userID, targetID)
	return nil
}

// CreateMatch forms the symmetric match relation between both profiles and
// clears any pending like/crush entries between them, atomically.
func (s *service) CreateMatch(ctx context.Context, userID, targetID int64) error {
	if userID == targetID {
		return fmt.Errorf("%w: cannot match with your own profile", ErrInvalidArgument)
	}

	if err := s.ensureExists(ctx, userID, targetID); err != nil {
		return err
	}

	if err := s.store.CreateMatch(ctx, userID, targetID); err != nil {
		return err
	}

	matchesTotal.Inc()
	s.cacheInvalidate(ctx, userID, targetID)
	return nil
}

// DeleteLike removes the received-like entry on the target and the
// corresponding crush entry on the liker.
func (s *service) DeleteLike(ctx context.Context, userID, targetID int64) error {
	if err := s.ensureExists(ctx, userID, targetID); err != nil {
		return err
	}

	if err := s.store.DeleteLike(ctx, userID, targetID); err != nil {
		return err
	}

	likesDeletedTotal.Inc()
	s.cacheInvalidate(ctx, userID, targetID)
	return nil
}

func (s *service) GetMatches(ctx context.Context, userID int64) ([]*Profile, error) {
	if _, err := s.store.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.store.ListMatches(ctx, userID)
}

func (s *service) GetReceivedLikes(ctx context.Context, userID int64) ([]*ReceivedLike, error) {
	if _, err := s.store.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.store.ListReceivedLikes(ctx, userID)
}

// ensureExists resolves both profiles so mutations fail with
// ErrProfileNotFound before touching any relation row.
func (s *service) ensureExists(ctx context.Context, ids ...int64) error {
	for _, id := range ids {
		if _, err := s.store.FindByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// Cache helpers. The cache only bounds repeated global discovery reads;
// a miss or a cache failure always falls through to the store.

func discoverCacheKey(userID int64) string {
	return fmt.Sprintf("discover:candidates:%d", userID)
}

func (s *service) cacheGet(ctx context.Context, userID int64) ([]*Profile, bool) {
	if s.cache == nil || s.opts.CacheTTL <= 0 {
		return nil, false
	}

	raw, err := s.cache.Get(ctx, discoverCacheKey(userID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("match: discovery cache read failed: %v", err)
		}
		return nil, false
	}

	var profiles []*Profile
	if err := json.Unmarshal(raw, &profiles); err != nil {
		return nil, false
	}
	return profiles, true
}

func (s *service) cacheSet(ctx context.Context, userID int64, profiles []*Profile) {
	if s.cache == nil || s.opts.CacheTTL <= 0 {
		return
	}

	raw, err := json.Marshal(profiles)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, discoverCacheKey(userID), raw, s.opts.CacheTTL).Err(); err != nil {
		log.Printf("match: discovery cache write failed: %v", err)
	}
}

func (s *service) cacheInvalidate(ctx context.Context, userIDs ...int64) {
	if s.cache == nil {
		return
	}

	keys := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, discoverCacheKey(id))
	}
	if err := s.cache.Del(ctx, keys...).Err(); err != nil {
		log.Printf("match: discovery cache invalidation failed: %v", err)
	}
}
