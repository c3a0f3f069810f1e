package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "v1.3.0", c.Version)
	for _, summaryType := range []string{
		"overview", "key_points", "action_items", "chapters",
		"visual_mindmap", "visual_timeline", "visual_flowchart",
	} {
		p, ok := c.Prompts[summaryType]
		require.True(t, ok, "missing prompt for %s", summaryType)
		assert.NotEmpty(t, p.System)
		assert.Contains(t, p.User, "{{.Transcript}}")
		assert.Contains(t, p.User, "{{.QualityNotice}}")
	}
}

func TestRender(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	system, user, err := c.Render("overview", Params{
		Transcript: "[spk_0] hello world",
		Style:      "meeting",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, system)
	assert.Contains(t, user, "[spk_0] hello world")
	assert.Contains(t, user, "meeting transcript")
	assert.False(t, strings.Contains(user, "{{"), "unrendered template markers")
}

func TestRenderQualityNotice(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	notice := "IMPORTANT: this transcript was recognized with low confidence."
	for _, summaryType := range []string{"overview", "key_points", "action_items", "chapters"} {
		_, user, err := c.Render(summaryType, Params{
			Transcript:    "[spk_0] mumbled words",
			QualityNotice: notice,
		})
		require.NoError(t, err)
		assert.Contains(t, user, notice, "quality notice missing from %s prompt", summaryType)
	}

	// High quality renders without leftover markers.
	_, user, err := c.Render("overview", Params{Transcript: "x"})
	require.NoError(t, err)
	assert.NotContains(t, user, "{{")
	assert.NotContains(t, user, "IMPORTANT")
}

func TestRenderDefaultsStyle(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	_, user, err := c.Render("key_points", Params{Transcript: "x"})
	require.NoError(t, err)
	assert.Contains(t, user, "general transcript")
}

func TestRenderUnknownType(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	_, _, err = c.Render("haiku", Params{Transcript: "x"})
	require.Error(t, err)
}
