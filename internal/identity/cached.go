package identity

import (
	"context"

	"fandom/internal/cache"
)

// CachedResolver wraps a Resolver with a Redis cache-aside layer.
// Profiles are external data with a short TTL; lookup failures are never
// cached, so an unavailable identity service keeps failing fast.
type CachedResolver struct {
	next Resolver
}

// NewCachedResolver decorates next with profile caching.
func NewCachedResolver(next Resolver) *CachedResolver {
	return &CachedResolver{next: next}
}

func (r *CachedResolver) ResolveArtist(ctx context.Context, artistID uint) (*ArtistProfile, error) {
	var profile ArtistProfile
	err := cache.CacheAside(ctx, cache.ArtistProfileKey(artistID), &profile, cache.ProfileTTL, func() error {
		resolved, err := r.next.ResolveArtist(ctx, artistID)
		if err != nil {
			return err
		}
		profile = *resolved
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *CachedResolver) ResolveUser(ctx context.Context, userID uint) (*UserProfile, error) {
	var profile UserProfile
	err := cache.CacheAside(ctx, cache.UserProfileKey(userID), &profile, cache.ProfileTTL, func() error {
		resolved, err := r.next.ResolveUser(ctx, userID)
		if err != nil {
			return err
		}
		profile = *resolved
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
