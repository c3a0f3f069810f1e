// Package transcript post-processes raw vendor transcription output:
// filler removal, same-speaker merging, confidence banding, and speaker
// block formatting for downstream summarization.
package transcript

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/scribeflow/scribeflow/pkg/providers"
)

// Confidence bands.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

const (
	// fillerConfidenceCeiling: only low-confidence tokens are dropped.
	fillerConfidenceCeiling = 0.7
	// fillerMaxRunes: fillers are at most two characters.
	fillerMaxRunes = 2
	// mergeGapSeconds: same-speaker segments this close merge into one.
	mergeGapSeconds = 2.0
)

// fillerWords are discourse noises stripped from transcripts. Both English
// and Chinese sets, lowercased.
var fillerWords = map[string]struct{}{
	"um": {}, "uh": {}, "er": {}, "ah": {}, "eh": {}, "mm": {}, "hm": {},
	"嗯": {}, "啊": {}, "呃": {}, "哦": {}, "哎": {}, "唉": {}, "诶": {},
	"那个": {}, "这个": {},
}

// ConfidenceBand maps a confidence value to its band. Segments without a
// reported confidence count as high so they are never visually flagged.
func ConfidenceBand(confidence *float64) string {
	switch {
	case confidence == nil, *confidence >= 0.8:
		return ConfidenceHigh
	case *confidence >= 0.6:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// isFiller reports whether a segment is pure filler: low confidence, at most
// two runes, and in the filler set.
func isFiller(seg providers.TranscriptionSegment) bool {
	if seg.Confidence == nil || *seg.Confidence >= fillerConfidenceCeiling {
		return false
	}
	content := strings.ToLower(strings.TrimSpace(seg.Content))
	if utf8.RuneCountInString(content) > fillerMaxRunes {
		return false
	}
	_, ok := fillerWords[strings.Trim(content, ".,!?，。！？")]
	return ok
}

// Process cleans raw vendor segments: fillers are dropped, and consecutive
// segments of the same speaker within the merge gap collapse into one. The
// merged confidence is the duration-weighted minimum of the parts.
func Process(raw []providers.TranscriptionSegment) []providers.TranscriptionSegment {
	var out []providers.TranscriptionSegment

	for _, seg := range raw {
		if strings.TrimSpace(seg.Content) == "" || isFiller(seg) {
			continue
		}

		if len(out) > 0 && mergeable(&out[len(out)-1], &seg) {
			merge(&out[len(out)-1], seg)
			continue
		}
		out = append(out, seg)
	}
	return out
}

func mergeable(prev *providers.TranscriptionSegment, next *providers.TranscriptionSegment) bool {
	if !sameSpeaker(prev.SpeakerID, next.SpeakerID) {
		return false
	}
	return next.StartSeconds-prev.EndSeconds <= mergeGapSeconds
}

func sameSpeaker(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func merge(dst *providers.TranscriptionSegment, src providers.TranscriptionSegment) {
	dst.Content = joinContent(dst.Content, src.Content)
	dst.EndSeconds = src.EndSeconds
	dst.Words = append(dst.Words, src.Words...)
	if src.Confidence != nil && (dst.Confidence == nil || *src.Confidence < *dst.Confidence) {
		dst.Confidence = src.Confidence
	}
}

// joinContent concatenates merged segment text. CJK text joins without a
// separator; everything else gets a space.
func joinContent(a, b string) string {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if a == "" {
		return b
	}
	last, _ := utf8.DecodeLastRuneInString(a)
	if last >= 0x4E00 && last <= 0x9FFF {
		return a + b
	}
	return a + " " + b
}

// Speakers returns the distinct speaker labels in ascending order.
func Speakers(segments []providers.TranscriptionSegment) []string {
	seen := make(map[string]struct{})
	for _, seg := range segments {
		if seg.SpeakerID != nil {
			seen[*seg.SpeakerID] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// FormatBlocks renders segments as speaker-attributed text blocks separated
// by blank lines:
//
//	[spk_0] welcome everyone
//
//	[spk_1] thanks for having me
//
// Segments without a speaker render without the prefix. This is the text
// handed to summarization prompts.
func FormatBlocks(segments []providers.TranscriptionSegment) string {
	var b strings.Builder
	for i, seg := range segments {
		if i > 0 {
			b.WriteString("\n\n")
		}
		if seg.SpeakerID != nil {
			fmt.Fprintf(&b, "[%s] ", *seg.SpeakerID)
		}
		b.WriteString(strings.TrimSpace(seg.Content))
	}
	return b.String()
}

// Quality is the transcript quality assessment that drives summary prompt
// caveats and model substitution.
type Quality struct {
	// Score is high, medium, or low, from average segment confidence.
	Score              string
	AvgConfidence      float64
	LowConfidenceCount int
	LowConfidenceRatio float64
}

const (
	qualityHighThreshold   = 0.8
	qualityMediumThreshold = 0.6
	// lowConfidenceThreshold counts individually unreliable segments.
	lowConfidenceThreshold = 0.7
)

// AssessQuality scores a transcript on its average segment confidence:
// high >= 0.8, medium >= 0.6, low below. Segments without a reported
// confidence are excluded from the average; a transcript with no confidence
// information at all scores medium.
func AssessQuality(segments []providers.TranscriptionSegment) Quality {
	if len(segments) == 0 {
		return Quality{Score: ConfidenceLow, LowConfidenceRatio: 1}
	}

	var sum float64
	scored, low := 0, 0
	for _, seg := range segments {
		if seg.Confidence == nil {
			continue
		}
		scored++
		sum += *seg.Confidence
		if *seg.Confidence < lowConfidenceThreshold {
			low++
		}
	}
	if scored == 0 {
		return Quality{Score: ConfidenceMedium, AvgConfidence: 0.75}
	}

	q := Quality{
		AvgConfidence:      sum / float64(scored),
		LowConfidenceCount: low,
		LowConfidenceRatio: float64(low) / float64(len(segments)),
	}
	switch {
	case q.AvgConfidence >= qualityHighThreshold:
		q.Score = ConfidenceHigh
	case q.AvgConfidence >= qualityMediumThreshold:
		q.Score = ConfidenceMedium
	default:
		q.Score = ConfidenceLow
	}
	return q
}

// Notice returns the preamble injected into summarization prompts for this
// quality level. High quality yields no notice.
func (q Quality) Notice() string {
	switch q.Score {
	case ConfidenceLow:
		return fmt.Sprintf("IMPORTANT: this transcript was recognized with low confidence "+
			"(average %.2f) and likely contains recognition errors. Infer the intended "+
			"meaning from context, correct obvious homophone mistakes, and extract only "+
			"the information you are confident about.", q.AvgConfidence)
	case ConfidenceMedium:
		return "Note: this transcript comes from speech recognition and may contain " +
			"occasional recognition errors. Read it by meaning rather than literally."
	default:
		return ""
	}
}
