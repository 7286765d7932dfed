package prompts

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed templates/*.yaml
var templateFS embed.FS

// promptTemplate is the on-disk shape of one template file.
type promptTemplate struct {
	Description string `yaml:"description"`
	Prompt      string `yaml:"prompt"`
}

// Manager loads the embedded YAML prompt templates once and renders them with
// simple placeholder substitution.
type Manager struct {
	prompts map[string]string
}

func NewManager() (*Manager, error) {
	m := &Manager{prompts: make(map[string]string)}
	if err := m.load(); err != nil {
		return nil, fmt.Errorf("failed to load prompt templates: %w", err)
	}
	return m, nil
}

// Build renders the named template, replacing every {{.Key}} with vars[Key].
func (m *Manager) Build(name string, vars map[string]string) (string, error) {
	tmpl, exists := m.prompts[name]
	if !exists {
		return "", fmt.Errorf("prompt template not found: %s", name)
	}
	result := tmpl
	for key, value := range vars {
		result = strings.ReplaceAll(result, "{{."+key+"}}", value)
	}
	return result, nil
}

func (m *Manager) load() error {
	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return fmt.Errorf("failed to read templates directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		data, err := templateFS.ReadFile("templates/" + entry.Name())
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", entry.Name(), err)
		}

		var tmpl promptTemplate
		if err := yaml.Unmarshal(data, &tmpl); err != nil {
			return fmt.Errorf("failed to parse template file %s: %w", entry.Name(), err)
		}
		if strings.TrimSpace(tmpl.Prompt) == "" {
			return fmt.Errorf("template file %s has an empty prompt", entry.Name())
		}

		m.prompts[strings.TrimSuffix(entry.Name(), ".yaml")] = tmpl.Prompt
	}

	return nil
}
