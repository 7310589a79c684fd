package settings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nateberkopec/toastee/toast"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, s.Duration)
	assert.Equal(t, "toastee.log", s.LogFile)
	assert.False(t, s.Desktop)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TOAST_THEME", "neobrutalist")
	t.Setenv("TOAST_DURATION", "5s")
	t.Setenv("TOAST_DESKTOP", "true")

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "neobrutalist", s.Theme)
	assert.Equal(t, 5*time.Second, s.Duration)
	assert.True(t, s.Desktop)
}

func TestLoadFromEnvFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("TOAST_SIZE=xl\nTOAST_ANIMATION=spring\n"), 0644))
	t.Setenv("TOAST_SIZE", "")
	os.Unsetenv("TOAST_SIZE")
	t.Setenv("TOAST_ANIMATION", "fade")

	s, err := Load(file)
	require.NoError(t, err)

	assert.Equal(t, "xl", s.Size)
	assert.Equal(t, "fade", s.Animation, "environment wins over .env")
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("TOAST_DURATION", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))
}

func TestLoadRejectsMalformedEnvFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("TOAST-THEME=material\n"), 0644))

	_, err := Load(file)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEnvFile)
	assert.ErrorContains(t, err, file)
}

func TestOptionsConfigureStore(t *testing.T) {
	store := toast.NewStore()
	store.Set(Settings{Theme: "neobrutalist", Duration: 0, Position: "bottom"}.Options()...)

	assert.Equal(t, toast.ThemeNeobrutalist, store.Theme())
	assert.Equal(t, toast.PositionBottom, store.DefaultPosition())
	assert.Equal(t, time.Duration(0), store.DefaultDuration())
	assert.Equal(t, toast.AnimationSlide, store.DefaultAnimation())
}
