// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis session-token cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for session-token cache entries.
const AuthCacheTTL = 10 * time.Minute

// SessionTokenTTL is the lifetime of an issued staff/customer session token.
const SessionTokenTTL = 24 * time.Hour
