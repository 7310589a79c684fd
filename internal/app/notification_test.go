package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nateberkopec/toastee/toast"
)

func TestDesktopMirrorForwardsNewErrorsAndWarnings(t *testing.T) {
	var sent []string
	mirror := newDesktopMirror(func(kind toast.Kind, title, message string) {
		sent = append(sent, string(kind)+":"+message)
	})

	reg := toast.NewRegistry(toast.RegistryConfig{})
	reg.Subscribe(mirror.listen)

	reg.Success("fine")
	reg.Error("broken")
	reg.Warning("careful")
	reg.Info("fyi")

	assert.Equal(t, []string{"error:broken", "warning:careful"}, sent)
}
