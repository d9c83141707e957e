package schedule

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBusinessHours_EmptyPathUsesDefault(t *testing.T) {
	hours, err := LoadBusinessHours("")
	require.NoError(t, err)
	assert.Equal(t, DefaultBusinessHours(), hours)
}

func TestLoadBusinessHours_MissingFileUsesDefault(t *testing.T) {
	hours, err := LoadBusinessHours(filepath.Join(t.TempDir(), "nao-existe.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultBusinessHours(), hours)
}

func TestLoadBusinessHours_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hours.toml")
	content := `
[[hours]]
dayOfWeek = 2
startTime = "08:00"
endTime = "12:00"
active = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	hours, err := LoadBusinessHours(path)
	require.NoError(t, err)
	require.Len(t, hours, 1)

	assert.Equal(t, 2, hours[0].DayOfWeek)
	assert.Equal(t, "08:00", hours[0].StartTime)
	assert.Equal(t, "12:00", hours[0].EndTime)
	assert.True(t, hours[0].Active)
}

func TestLoadBusinessHours_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hours.toml")
	require.NoError(t, os.WriteFile(path, []byte("isso não é toml ["), 0600))

	_, err := LoadBusinessHours(path)
	assert.Error(t, err)
}

func TestDefaultBusinessHours_OneEntryPerWeekday(t *testing.T) {
	seen := map[int]bool{}
	for _, h := range DefaultBusinessHours() {
		assert.False(t, seen[h.DayOfWeek], "dia %d duplicado", h.DayOfWeek)
		seen[h.DayOfWeek] = true
	}
	assert.Len(t, seen, 7)
}
