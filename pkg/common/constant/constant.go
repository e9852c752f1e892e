package constant

const (
	// Values a fresh sheet starts with.
	DefaultTotalAmount   = 1000
	DefaultWinningNumber = 5
	DefaultOdds          = 2

	// A range appended to a sheet starts right after the previous one and
	// spans this many integers.
	DefaultRangeWidth = 10
	FirstRangeStart   = 1

	// Currency amounts are shown with this many decimal places.
	DisplayPlaces = 2

	DefaultSweepWorkers   = 4
	DefaultSweepChunkSize = 64
	// Guards against sweeping absurd spans such as [1, 1e12].
	MaxSweepPoints = 1_000_000
)
