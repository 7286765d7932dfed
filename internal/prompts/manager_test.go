package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_LoadsEmbeddedTemplates(t *testing.T) {
	m, err := NewManager()
	require.NoError(t, err)

	for _, name := range []string{"question_generation", "performance_analysis", "setup_assistant"} {
		_, err := m.Build(name, nil)
		assert.NoError(t, err, "template %s should be loaded", name)
	}
}

func TestManager_BuildSubstitutesVars(t *testing.T) {
	m, err := NewManager()
	require.NoError(t, err)

	prompt, err := m.Build("question_generation", map[string]string{
		"Role":   "Backend Engineer",
		"Level":  "senior",
		"Type":   "technical",
		"Skills": "Go, PostgreSQL",
	})
	require.NoError(t, err)
	assert.Contains(t, prompt, "Backend Engineer")
	assert.Contains(t, prompt, "Go, PostgreSQL")
	assert.NotContains(t, prompt, "{{.Role}}")
	assert.NotContains(t, prompt, "{{.Skills}}")
}

func TestManager_UnknownTemplate(t *testing.T) {
	m, err := NewManager()
	require.NoError(t, err)

	_, err = m.Build("nope", nil)
	assert.Error(t, err)
}
