// Package toast is the lifecycle engine behind toast notifications.
//
// A Registry keeps the ordered set of active toasts, resolves per-call
// options over the global defaults held by a Store, and publishes a fresh
// snapshot to every subscriber after each Create, Remove or Clear. It knows
// nothing about rendering: auto-dismiss timers and entrance or exit
// animations belong to the presentation adapter, which calls Remove once a
// toast's exit animation has finished.
//
//	t := toast.New(toast.ToasterConfig{})
//	t.Configure(toast.WithTheme(toast.ThemeNeobrutalist))
//	unsubscribe := t.Subscribe(func(active []toast.Toast) { render(active) })
//	defer unsubscribe()
//	t.Success("Saved", toast.WithDuration(3*time.Second))
package toast
