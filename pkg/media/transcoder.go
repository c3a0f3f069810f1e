package media

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/scribeflow/scribeflow/pkg/providers"
)

// Audio normalization targets. Speech recognition works on mono 16 kHz,
// and a single canonical format keeps provider handling uniform.
const (
	targetSampleRate = 16000
	targetChannels   = 1
	targetFormat     = "wav"
)

// ProbeResult describes a media file as reported by ffprobe.
type ProbeResult struct {
	DurationSeconds float64
	Format          string
	HasAudio        bool
	HasVideo        bool
}

// Transcoder normalizes media files to mono WAV via ffmpeg.
type Transcoder struct {
	ffmpegPath  string
	ffprobePath string
}

// NewTranscoder creates a Transcoder. Empty paths fall back to looking up
// the binaries on PATH.
func NewTranscoder(ffmpegPath, ffprobePath string) *Transcoder {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	return &Transcoder{ffmpegPath: ffmpegPath, ffprobePath: ffprobePath}
}

type ffprobeOutput struct {
	Streams []struct {
		CodecType string `json:"codec_type"`
	} `json:"streams"`
	Format struct {
		FormatName string `json:"format_name"`
		Duration   string `json:"duration"`
	} `json:"format"`
}

// Probe inspects a media file and reports its duration and stream layout.
func (t *Transcoder) Probe(ctx context.Context, path string) (*ProbeResult, error) {
	cmd := exec.CommandContext(ctx, t.ffprobePath,
		"-v", "error",
		"-show_format",
		"-show_streams",
		"-of", "json",
		path,
	)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, providers.Errorf(providers.KindInvalidFormat, resolverName,
			"ffprobe failed: %v: %s", err, firstLine(stderr.String()))
	}

	var out ffprobeOutput
	if err := json.Unmarshal(stdout.Bytes(), &out); err != nil {
		return nil, providers.Errorf(providers.KindInvalidFormat, resolverName, "parsing ffprobe output: %v", err)
	}

	result := &ProbeResult{Format: out.Format.FormatName}
	if out.Format.Duration != "" {
		d, err := strconv.ParseFloat(out.Format.Duration, 64)
		if err != nil {
			return nil, providers.Errorf(providers.KindInvalidFormat, resolverName, "parsing duration %q: %v", out.Format.Duration, err)
		}
		result.DurationSeconds = d
	}
	for _, stream := range out.Streams {
		switch stream.CodecType {
		case "audio":
			result.HasAudio = true
		case "video":
			result.HasVideo = true
		}
	}
	if !result.HasAudio {
		return nil, providers.Errorf(providers.KindInvalidFormat, resolverName, "no audio stream in %s", filepath.Base(path))
	}
	return result, nil
}

// Transcode extracts and normalizes the audio track of src into a mono
// 16 kHz WAV next to it, returning the output path.
func (t *Transcoder) Transcode(ctx context.Context, src string) (string, error) {
	dst := strings.TrimSuffix(src, filepath.Ext(src)) + "." + targetFormat
	if dst == src {
		dst = src + ".norm." + targetFormat
	}

	cmd := exec.CommandContext(ctx, t.ffmpegPath,
		"-y",
		"-i", src,
		"-vn",
		"-ac", strconv.Itoa(targetChannels),
		"-ar", strconv.Itoa(targetSampleRate),
		"-c:a", "pcm_s16le",
		dst,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", providers.Errorf(providers.KindInvalidFormat, resolverName,
			"ffmpeg failed: %v: %s", err, firstLine(stderr.String()))
	}
	return dst, nil
}

// firstLine trims tool output to something loggable.
func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	if len(s) > 200 {
		s = s[:200]
	}
	return s
}
