// Package settings holds the site settings the follow feature reads.
package settings

import (
	"os"
	"strconv"
)

type SiteSettings struct {
	// FollowShowStatisticsOnProfile gates the total_followers and
	// total_following fields on serialized user profiles.
	FollowShowStatisticsOnProfile bool
}

// Load reads site settings from the environment, with defaults.
func Load() *SiteSettings {
	return &SiteSettings{
		FollowShowStatisticsOnProfile: boolEnv("FOLLOW_SHOW_STATISTICS_ON_PROFILE", true),
	}
}

func boolEnv(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}
