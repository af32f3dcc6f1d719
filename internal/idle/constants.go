package idle

// Run count bounds
const (
	MinRuns = 1
	MaxRuns = 3
)

// Log messages
const (
	LogMsgStorageGetFailed  = "Daily result lookup failed, running fresh"
	LogMsgStorageSetFailed  = "Daily result could not be persisted"
	LogMsgCorruptPayload    = "Cached daily result is corrupt, running fresh"
	LogMsgDailyResultServed = "Daily result served"
	LogMsgDailyResultRan    = "Daily result computed"
	LogMsgLostWriteRace     = "Daily result already stored by another caller"
	LogMsgPruneCompleted    = "Stale daily results pruned"
)
