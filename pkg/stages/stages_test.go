package stages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribeflow/scribeflow/ent/task"
)

func TestOrderFor(t *testing.T) {
	t.Run("url source includes resolve", func(t *testing.T) {
		order := OrderFor(task.KindProcess, task.SourceTypeURL)
		assert.Equal(t, []StageType{
			StageResolve, StageDownload, StageTranscode, StageUploadStorage, StageTranscribe, StageSummarize,
		}, order)
	})

	t.Run("upload source starts at download", func(t *testing.T) {
		order := OrderFor(task.KindProcess, task.SourceTypeUpload)
		assert.Equal(t, StageDownload, order[0])
		assert.Equal(t, -1, Index(order, StageResolve))
	})

	t.Run("visualize is a single stage", func(t *testing.T) {
		order := OrderFor(task.KindVisualize, task.SourceTypeUpload)
		assert.Equal(t, []StageType{StageVisualize}, order)
	})
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, task.StatusExtracting, StatusFor(StageResolve))
	assert.Equal(t, task.StatusExtracting, StatusFor(StageUploadStorage))
	assert.Equal(t, task.StatusTranscribing, StatusFor(StageTranscribe))
	assert.Equal(t, task.StatusSummarizing, StatusFor(StageSummarize))
}

func TestBandsArePiecewiseAndOrdered(t *testing.T) {
	order := OrderFor(task.KindProcess, task.SourceTypeURL)

	prevHi := 0
	for _, stage := range order {
		lo, hi := Band(stage)
		assert.Equal(t, prevHi, lo, "band of %s starts where the previous ends", stage)
		require.Greater(t, hi, lo)
		prevHi = hi
	}
	// Summarize tops out below 100; completion owns 100.
	_, hi := Band(StageSummarize)
	assert.Equal(t, 99, hi)
}

func TestProgressAt(t *testing.T) {
	assert.Equal(t, 20, ProgressAt(StageTranscribe, 0))
	assert.Equal(t, 45, ProgressAt(StageTranscribe, 0.5))
	assert.Equal(t, 70, ProgressAt(StageTranscribe, 1))

	// Out-of-range fractions clamp to the band.
	assert.Equal(t, 20, ProgressAt(StageTranscribe, -3))
	assert.Equal(t, 70, ProgressAt(StageTranscribe, 9))
}

func TestProgressMonotoneAcrossPipeline(t *testing.T) {
	order := OrderFor(task.KindProcess, task.SourceTypeURL)

	last := -1
	for _, stage := range order {
		for _, frac := range []float64{0, 0.25, 0.5, 0.75, 1} {
			p := ProgressAt(stage, frac)
			assert.GreaterOrEqual(t, p, last)
			last = p
		}
	}
	assert.LessOrEqual(t, last, 99)
}
