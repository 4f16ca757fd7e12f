package hydraulics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenario(t *testing.T) {
	path := writeScenario(t, `{
		"name": "Design point",
		"flow": 0.025,
		"diameter": 0.1541,
		"density": 998,
		"viscosity": 0.001,
		"roughness": 0.000046
	}`)

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "Design point", s.Name)

	c := s.Conduit()
	assert.Equal(t, 0.025, c.Q)
	assert.Equal(t, 0.1541, c.D)
	assert.NoError(t, c.Validate())
}

func TestLoadScenarioInvalidJSON(t *testing.T) {
	path := writeScenario(t, `{not json`)

	_, err := LoadScenario(path)
	assert.Error(t, err)
}

func TestLoadScenarioInvalidParameters(t *testing.T) {
	path := writeScenario(t, `{"flow": 0.025, "diameter": -1, "density": 998, "viscosity": 0.001, "roughness": 0.000046}`)

	_, err := LoadScenario(path)
	assert.Error(t, err)
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
