package kvstore

// CacheSchemaVersion is the current version of the cache entry layout.
// Increment it when the cached payload format changes to drop old entries.
const CacheSchemaVersion = "1.0"

// Error messages
const (
	ErrMsgGetFailed         = "failed to read daily result"
	ErrMsgSetFailed         = "failed to write daily result"
	ErrMsgPruneFailed       = "failed to prune daily results"
	ErrMsgPruneNotSupported = "store does not support pruning"
)

// SQL statements for the postgres store
const (
	SQLSelectPayload = `
		SELECT payload
		FROM idle_daily_results
		WHERE cache_key = $1
	`

	SQLUpsertPayload = `
		INSERT INTO idle_daily_results (cache_key, payload, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (cache_key) DO UPDATE
		SET payload = EXCLUDED.payload, created_at = EXCLUDED.created_at
	`

	SQLInsertPayloadIfAbsent = `
		INSERT INTO idle_daily_results (cache_key, payload, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (cache_key) DO NOTHING
	`

	SQLDeleteBefore = `DELETE FROM idle_daily_results WHERE created_at < $1`
)
