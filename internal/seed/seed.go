package seed

import (
	"fmt"
	"log"
	"math/rand"

	"gorm.io/gorm"
)

// Options controls how much demo data the seeder generates. User and
// artist ids reference the external identity service, so the seeder only
// fabricates plausible id ranges rather than identity rows.
type Options struct {
	NumCommunities    int
	NumUsers          int
	PostsPerCommunity int
	ShouldClean       bool
}

// DefaultOptions returns a small but representative data set.
func DefaultOptions() Options {
	return Options{
		NumCommunities:    10,
		NumUsers:          50,
		PostsPerCommunity: 8,
		ShouldClean:       true,
	}
}

var sampleBannedWords = []string{
	"spoiler", "leak", "bootleg", "scalper", "presale", "reseller",
}

// Seed populates the database with communities, members, posts and likes.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d communities and %d users...",
		opts.NumCommunities, opts.NumUsers)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	f := NewFactory(db)

	// Artist ids start above the fan-user id range so the two never collide.
	artistBase := uint(opts.NumUsers + 1000)

	for i := 0; i < opts.NumCommunities; i++ {
		community, err := f.CreateCommunity(artistBase + uint(i))
		if err != nil {
			return fmt.Errorf("failed to create community: %w", err)
		}

		// A random slice of the fan-user id space joins each community.
		memberCount := 3 + f.r.Intn(opts.NumUsers/2+1)
		members := pickUserIDs(f.r, opts.NumUsers, memberCount)
		for _, userID := range members {
			if _, err := f.CreateMembership(community, userID); err != nil {
				return fmt.Errorf("failed to create membership: %w", err)
			}
		}

		if f.r.Intn(3) == 0 {
			words := sampleBannedWords[:1+f.r.Intn(len(sampleBannedWords))]
			if err := f.CreateBannedWords(community, words); err != nil {
				return fmt.Errorf("failed to create banned words: %w", err)
			}
		}

		for j := 0; j < opts.PostsPerCommunity; j++ {
			post, err := f.CreatePost(community)
			if err != nil {
				return fmt.Errorf("failed to create post: %w", err)
			}

			// Only members may like, so draw likers from the member set.
			likerCount := f.r.Intn(len(members) + 1)
			for _, userID := range members[:likerCount] {
				if err := f.CreateLike(post, userID); err != nil {
					return fmt.Errorf("failed to create like: %w", err)
				}
			}
		}
	}

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE post_likes, posts, community_banned_words, community_bans, community_members, communities RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

// pickUserIDs returns count distinct user ids drawn from 1..numUsers.
func pickUserIDs(r *rand.Rand, numUsers, count int) []uint {
	if count > numUsers {
		count = numUsers
	}
	perm := r.Perm(numUsers)
	ids := make([]uint, count)
	for i := 0; i < count; i++ {
		ids[i] = uint(perm[i] + 1)
	}
	return ids
}
