package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUploadKey(t *testing.T) {
	at := time.Date(2026, 3, 7, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, "uploads/2026/03/abc123.mp3", UploadKey(at, "abc123", "mp3"))
	assert.Equal(t, "uploads/2026/03/abc123.mp3", UploadKey(at, "abc123", ".MP3"))
	assert.Equal(t, "uploads/2026/03/abc123.bin", UploadKey(at, "abc123", ""))
}

func TestVisualKey(t *testing.T) {
	got := VisualKey("u1", "t1", "mindmap", "s9", "png")
	assert.Equal(t, "visuals/u1/t1/mindmap_s9.png", got)
}
