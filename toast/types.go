package toast

import (
	"fmt"
	"maps"
	"time"
)

// Kind is the severity of a toast.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
)

// Position is the screen edge a toast stacks against.
type Position string

const (
	PositionTop    Position = "top"
	PositionBottom Position = "bottom"
)

// Animation selects the entrance animation of a toast.
type Animation string

const (
	AnimationFade   Animation = "fade"
	AnimationSlide  Animation = "slide"
	AnimationSpring Animation = "spring"
	AnimationBounce Animation = "bounce"
)

// Theme names a visual theme. The set is open; renderers fall back to
// ThemeMaterial for names they do not know.
type Theme string

const (
	ThemeMaterial     Theme = "material"
	ThemeNeobrutalist Theme = "neobrutalist"
)

// Size names a size token.
type Size string

const (
	SizeXS  Size = "xs"
	SizeSM  Size = "sm"
	SizeMD  Size = "md"
	SizeLG  Size = "lg"
	SizeXL  Size = "xl"
	Size2XL Size = "2xl"
)

// Sizes lists every size token from smallest to largest.
var Sizes = []Size{SizeXS, SizeSM, SizeMD, SizeLG, SizeXL, Size2XL}

// Animations lists every animation style.
var Animations = []Animation{AnimationFade, AnimationSlide, AnimationSpring, AnimationBounce}

// StyleRole identifies which part of a toast a style fragment applies to.
type StyleRole string

const (
	RoleContainer        StyleRole = "container"
	RoleText             StyleRole = "text"
	RoleSuccessContainer StyleRole = "successContainer"
	RoleErrorContainer   StyleRole = "errorContainer"
	RoleInfoContainer    StyleRole = "infoContainer"
	RoleWarningContainer StyleRole = "warningContainer"
	RoleSuccessText      StyleRole = "successText"
	RoleErrorText        StyleRole = "errorText"
	RoleInfoText         StyleRole = "infoText"
	RoleWarningText      StyleRole = "warningText"
)

// ContainerRole returns the kind-specific container role.
func (k Kind) ContainerRole() StyleRole {
	return StyleRole(string(k) + "Container")
}

// TextRole returns the kind-specific text role.
func (k Kind) TextRole() StyleRole {
	return StyleRole(string(k) + "Text")
}

// StyleFragment is a partial style. Empty colours are left to the theme.
type StyleFragment struct {
	Foreground       string
	Background       string
	BorderForeground string
	Bold             bool
	Italic           bool
}

// StyleOverrides maps roles to fragments that are merged over theme and size
// defaults when a toast is rendered.
type StyleOverrides map[StyleRole]StyleFragment

// Clone returns an independent copy. A nil map stays nil.
func (s StyleOverrides) Clone() StyleOverrides {
	if s == nil {
		return nil
	}
	return maps.Clone(s)
}

// ID identifies a toast within the lifetime of a Registry. IDs increase
// strictly and are never reused.
type ID uint64

func (id ID) String() string {
	return fmt.Sprintf("toast-%d", uint64(id))
}

// Toast is an active notification. Values handed out by the Registry are
// copies; the Registry never mutates a toast after creating it.
type Toast struct {
	ID             ID
	Kind           Kind
	Message        string
	CreatedAt      time.Time
	Duration       time.Duration
	Position       Position
	Animation      Animation
	Theme          Theme
	Size           Size
	StyleOverrides StyleOverrides
}

// AutoDismiss reports whether the toast expires on its own.
func (t Toast) AutoDismiss() bool {
	return t.Duration > 0
}

func cloneToasts(in []Toast) []Toast {
	out := make([]Toast, len(in))
	for i, t := range in {
		t.StyleOverrides = t.StyleOverrides.Clone()
		out[i] = t
	}
	return out
}
