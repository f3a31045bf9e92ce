package cache

import (
	"fmt"
	"time"
)

// Only externally owned identity profiles are cached. Counts and
// banned-word sets are always recomputed from current rows.
const (
	ArtistProfileKeyPrefix = "identity:artist:%d"
	UserProfileKeyPrefix   = "identity:user:%d"
)

const (
	ProfileTTL = 5 * time.Minute
)

func ArtistProfileKey(artistID uint) string {
	return fmt.Sprintf(ArtistProfileKeyPrefix, artistID)
}

func UserProfileKey(userID uint) string {
	return fmt.Sprintf(UserProfileKeyPrefix, userID)
}
