package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribeflow/scribeflow/pkg/providers"
)

func ptr[T any](v T) *T { return &v }

func seg(speaker string, start, end float64, content string, confidence float64) providers.TranscriptionSegment {
	s := providers.TranscriptionSegment{
		StartSeconds: start,
		EndSeconds:   end,
		Content:      content,
		Confidence:   ptr(confidence),
	}
	if speaker != "" {
		s.SpeakerID = ptr(speaker)
	}
	return s
}

func TestConfidenceBand(t *testing.T) {
	assert.Equal(t, ConfidenceHigh, ConfidenceBand(ptr(0.95)))
	assert.Equal(t, ConfidenceHigh, ConfidenceBand(ptr(0.8)))
	assert.Equal(t, ConfidenceMedium, ConfidenceBand(ptr(0.79)))
	assert.Equal(t, ConfidenceMedium, ConfidenceBand(ptr(0.6)))
	assert.Equal(t, ConfidenceLow, ConfidenceBand(ptr(0.59)))
	assert.Equal(t, ConfidenceHigh, ConfidenceBand(nil))
}

func TestProcessDropsFillers(t *testing.T) {
	out := Process([]providers.TranscriptionSegment{
		seg("spk_0", 0, 1, "um", 0.4),
		seg("spk_0", 1, 2, "welcome everyone", 0.9),
		seg("spk_0", 10, 10.5, "嗯", 0.3),
	})

	require.Len(t, out, 1)
	assert.Equal(t, "welcome everyone", out[0].Content)
}

func TestProcessKeepsConfidentShortWords(t *testing.T) {
	// "um" said clearly is kept; so is a low-confidence non-filler.
	out := Process([]providers.TranscriptionSegment{
		seg("spk_0", 0, 1, "um", 0.9),
		seg("spk_1", 5, 6, "no", 0.4),
	})
	assert.Len(t, out, 2)
}

func TestProcessMergesSameSpeakerWithinGap(t *testing.T) {
	out := Process([]providers.TranscriptionSegment{
		seg("spk_0", 0, 2, "welcome everyone", 0.9),
		seg("spk_0", 3.5, 5, "to the meeting", 0.85),
		seg("spk_0", 10, 12, "next item", 0.95),
	})

	require.Len(t, out, 2)
	assert.Equal(t, "welcome everyone to the meeting", out[0].Content)
	assert.Equal(t, 0.0, out[0].StartSeconds)
	assert.Equal(t, 5.0, out[0].EndSeconds)
	// Merged confidence is the minimum of the parts.
	assert.InDelta(t, 0.85, *out[0].Confidence, 1e-9)
	assert.Equal(t, "next item", out[1].Content)
}

func TestProcessDoesNotMergeAcrossSpeakers(t *testing.T) {
	out := Process([]providers.TranscriptionSegment{
		seg("spk_0", 0, 2, "hello", 0.9),
		seg("spk_1", 2.5, 4, "hi there", 0.9),
	})
	assert.Len(t, out, 2)
}

func TestProcessJoinsCJKWithoutSpace(t *testing.T) {
	out := Process([]providers.TranscriptionSegment{
		seg("spk_0", 0, 2, "今天我们讨论", 0.9),
		seg("spk_0", 2.5, 4, "季度计划", 0.9),
	})

	require.Len(t, out, 1)
	assert.Equal(t, "今天我们讨论季度计划", out[0].Content)
}

func TestSpeakers(t *testing.T) {
	segments := []providers.TranscriptionSegment{
		seg("spk_1", 0, 1, "a", 0.9),
		seg("spk_0", 1, 2, "b", 0.9),
		seg("spk_1", 2, 3, "c", 0.9),
		{StartSeconds: 3, EndSeconds: 4, Content: "no speaker"},
	}
	assert.Equal(t, []string{"spk_0", "spk_1"}, Speakers(segments))
}

func TestFormatBlocks(t *testing.T) {
	text := FormatBlocks([]providers.TranscriptionSegment{
		seg("spk_0", 0, 1, "welcome everyone", 0.9),
		seg("spk_1", 1, 2, "thanks for having me", 0.9),
	})
	assert.Equal(t, "[spk_0] welcome everyone\n\n[spk_1] thanks for having me", text)
}

func TestAssessQuality(t *testing.T) {
	t.Run("low on poor average confidence", func(t *testing.T) {
		q := AssessQuality([]providers.TranscriptionSegment{
			seg("spk_0", 0, 1, "a", 0.5),
			seg("spk_0", 1, 2, "b", 0.4),
		})
		assert.Equal(t, ConfidenceLow, q.Score)
		assert.InDelta(t, 0.45, q.AvgConfidence, 1e-9)
		assert.Equal(t, 2, q.LowConfidenceCount)
		assert.InDelta(t, 1.0, q.LowConfidenceRatio, 1e-9)
	})

	t.Run("medium band", func(t *testing.T) {
		q := AssessQuality([]providers.TranscriptionSegment{
			seg("spk_0", 0, 1, "a", 0.7),
			seg("spk_0", 1, 2, "b", 0.7),
		})
		assert.Equal(t, ConfidenceMedium, q.Score)
	})

	t.Run("high band", func(t *testing.T) {
		q := AssessQuality([]providers.TranscriptionSegment{
			seg("spk_0", 0, 1, "a", 0.92),
			seg("spk_0", 1, 2, "b", 0.88),
		})
		assert.Equal(t, ConfidenceHigh, q.Score)
		assert.Zero(t, q.LowConfidenceCount)
	})

	t.Run("no confidence information scores medium", func(t *testing.T) {
		q := AssessQuality([]providers.TranscriptionSegment{
			{StartSeconds: 0, EndSeconds: 1, Content: "a"},
		})
		assert.Equal(t, ConfidenceMedium, q.Score)
		assert.InDelta(t, 0.75, q.AvgConfidence, 1e-9)
	})

	t.Run("empty transcript scores low", func(t *testing.T) {
		q := AssessQuality(nil)
		assert.Equal(t, ConfidenceLow, q.Score)
		assert.InDelta(t, 1.0, q.LowConfidenceRatio, 1e-9)
	})
}

func TestQualityNotice(t *testing.T) {
	low := Quality{Score: ConfidenceLow, AvgConfidence: 0.45}
	assert.Contains(t, low.Notice(), "low confidence")
	assert.Contains(t, low.Notice(), "0.45")

	medium := Quality{Score: ConfidenceMedium}
	assert.Contains(t, medium.Notice(), "speech recognition")

	assert.Empty(t, Quality{Score: ConfidenceHigh}.Notice())
}
