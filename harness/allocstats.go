package harness

import (
	"runtime"
	"time"

	"go.uber.org/zap"
)

// stageStats is the cost of one harness stage.
type stageStats struct {
	Duration time.Duration
	Bytes    uint64
	Mallocs  uint64
}

// measure runs fn and logs how long it took. With allocs set it also
// samples runtime.MemStats around fn; this stops the world twice per stage
// and is meant for diagnostics only.
func measure(logger *zap.Logger, stage string, allocs bool, fn func() error) (stageStats, error) {
	var before, after runtime.MemStats
	if allocs {
		runtime.ReadMemStats(&before)
	}
	start := time.Now()
	err := fn()
	st := stageStats{Duration: time.Since(start)}
	if allocs {
		runtime.ReadMemStats(&after)
		st.Bytes = after.TotalAlloc - before.TotalAlloc
		st.Mallocs = after.Mallocs - before.Mallocs
		logger.Info("allocations",
			zap.String("stage", stage),
			zap.Uint64("bytes", st.Bytes),
			zap.Uint64("mallocs", st.Mallocs))
	}
	logger.Debug("stage finished",
		zap.String("stage", stage),
		zap.Duration("took", st.Duration),
		zap.Bool("ok", err == nil))
	return st, err
}
