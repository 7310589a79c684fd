package persistence

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nateberkopec/toastee/toast"
)

func writeDataFile(t *testing.T, name, content string) {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmpDir)

	dir := filepath.Join(tmpDir, "toastee")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestPreferencesRoundTrip(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	prefs := Preferences{
		Theme:     toast.ThemeNeobrutalist,
		Size:      toast.SizeLG,
		Position:  toast.PositionBottom,
		Animation: toast.AnimationBounce,
	}
	require.NoError(t, SavePreferences(prefs))

	loaded, err := LoadPreferences()
	require.NoError(t, err)
	assert.Equal(t, prefs, loaded)
}

func TestLoadPreferencesMissing(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	loaded, err := LoadPreferences()
	require.NoError(t, err, "missing file is not an error")
	assert.Equal(t, Preferences{}, loaded)
	assert.Empty(t, loaded.Options())
}

func TestLoadPreferencesRejectsUnknownVersion(t *testing.T) {
	writeDataFile(t, preferencesFile, `{"version": 9}`)

	_, err := LoadPreferences()
	assert.ErrorContains(t, err, "unsupported preferences.json version: 9")
}

func TestLoadHistoryRejectsCorruptFile(t *testing.T) {
	writeDataFile(t, historyFile, `{"version":`)

	_, err := LoadHistory()
	assert.Error(t, err)
}

func TestPreferencesOptionsConfigureStore(t *testing.T) {
	store := toast.NewStore()
	store.Set(Preferences{Theme: toast.ThemeNeobrutalist, Position: toast.PositionBottom}.Options()...)

	assert.Equal(t, toast.ThemeNeobrutalist, store.Theme())
	assert.Equal(t, toast.PositionBottom, store.DefaultPosition())
	assert.Equal(t, toast.SizeMD, store.Size(), "size untouched")
}

func TestHistoryRoundTripAndLimit(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	var messages []string
	for i := 0; i < maxHistorySize+5; i++ {
		messages = append(messages, fmt.Sprintf("message %d", i))
	}
	require.NoError(t, SaveHistory(messages))

	loaded, err := LoadHistory()
	require.NoError(t, err)
	require.Len(t, loaded, maxHistorySize)
	assert.Equal(t, "message 5", loaded[0], "oldest entries are trimmed")
}

func TestLoadHistoryMissing(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	loaded, err := LoadHistory()
	require.NoError(t, err)
	assert.NotNil(t, loaded)
	assert.Empty(t, loaded)
}

func TestDataPath(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmpDir)

	path, err := dataPath(preferencesFile)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "toastee", "preferences.json"), path)
}
