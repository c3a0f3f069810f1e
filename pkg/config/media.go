package config

import "time"

// MediaConfig controls upload limits and URL source downloads.
type MediaConfig struct {
	// MaxUploadMB bounds presigned uploads and URL downloads.
	MaxUploadMB int64 `yaml:"max_upload_mb"`

	// MaxDurationHours bounds the media length a task may process.
	MaxDurationHours float64 `yaml:"max_duration_hours"`

	// DownloadTimeout bounds a single URL source fetch.
	DownloadTimeout time.Duration `yaml:"download_timeout"`

	// AllowedURLSchemes restricts URL sources. Only http and https by
	// default.
	AllowedURLSchemes []string `yaml:"allowed_url_schemes"`

	// FFmpegPath and FFprobePath override binary lookup on PATH.
	FFmpegPath  string `yaml:"ffmpeg_path,omitempty"`
	FFprobePath string `yaml:"ffprobe_path,omitempty"`

	// WorkDir is where intermediate audio lands during processing.
	WorkDir string `yaml:"work_dir,omitempty"`
}

// SupportedAudioFormats are containers accepted without video demux.
var SupportedAudioFormats = []string{"mp3", "wav", "m4a", "flac", "aac", "ogg"}

// SupportedVideoFormats are containers whose audio track gets extracted.
var SupportedVideoFormats = []string{"mp4", "avi", "mov", "mkv", "webm"}

// DefaultMediaConfig returns the built-in media defaults.
func DefaultMediaConfig() *MediaConfig {
	return &MediaConfig{
		MaxUploadMB:       500,
		MaxDurationHours:  8,
		DownloadTimeout:   10 * time.Minute,
		AllowedURLSchemes: []string{"http", "https"},
	}
}

// IsSupportedFormat reports whether ext (no dot, lowercase) is a supported
// audio or video container.
func IsSupportedFormat(ext string) bool {
	for _, f := range SupportedAudioFormats {
		if f == ext {
			return true
		}
	}
	for _, f := range SupportedVideoFormats {
		if f == ext {
			return true
		}
	}
	return false
}

// IsVideoFormat reports whether ext is a video container.
func IsVideoFormat(ext string) bool {
	for _, f := range SupportedVideoFormats {
		if f == ext {
			return true
		}
	}
	return false
}
