package app

import (
	"github.com/gen2brain/beeep"

	"github.com/nateberkopec/toastee/toast"
)

// notify sends a system notification with the given title and message.
// Errors use Alert, which includes a system sound.
// Errors are ignored to ensure notification failures don't crash the app.
func notify(kind toast.Kind, title, message string) {
	if kind == toast.KindError {
		_ = beeep.Alert(title, message, "")
		return
	}
	_ = beeep.Notify(title, message, "")
}

// desktopMirror forwards newly raised error and warning toasts to the
// desktop so they are noticed while the terminal is in the background.
type desktopMirror struct {
	seen map[toast.ID]struct{}
	send func(kind toast.Kind, title, message string)
}

func newDesktopMirror(send func(kind toast.Kind, title, message string)) *desktopMirror {
	if send == nil {
		send = notify
	}
	return &desktopMirror{
		seen: make(map[toast.ID]struct{}),
		send: send,
	}
}

func (d *desktopMirror) listen(active []toast.Toast) {
	current := make(map[toast.ID]struct{}, len(active))
	for _, t := range active {
		current[t.ID] = struct{}{}
		if _, ok := d.seen[t.ID]; ok {
			continue
		}
		if t.Kind == toast.KindError || t.Kind == toast.KindWarning {
			d.send(t.Kind, "toastee: "+string(t.Kind), t.Message)
		}
	}
	d.seen = current
}
