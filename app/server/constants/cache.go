package constants

import "time"

const (
	CacheKeyConfirmCode = "biolink:auth:confirm:%s" // %s -> code
	CacheKeyLeaderboard = "biolink:leaderboard:%d"  // %d -> limit
)

const (
	CacheExpireConfirmCode = 24 * time.Hour
	CacheExpireLeaderboard = 1 * time.Minute
)
