// Package metadata is the client's persistent key/value storage: the place
// the session keys (userName, userEmail, userId, profilePhoto) live between
// runs.
//
// Three backends implement TxRepository:
//
//   - SQLiteRepository: table metadata(key, value) over dbx.DBTX; the default
//   - RedisRepository: keys under a prefix in a Redis database
//   - MemoryRepository: process-local map, used by tests and -s memory
//
// All of them treat a missing key as (nil, nil) and make Delete idempotent,
// so callers can swap backends without changing error handling.
package metadata
