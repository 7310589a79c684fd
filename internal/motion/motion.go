package motion

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/nateberkopec/toastee/toast"
)

const (
	fps = 60

	// FrameInterval is the tick rate animations are sampled at.
	FrameInterval = time.Second / fps

	EntranceDuration = 300 * time.Millisecond
	ExitDuration     = 200 * time.Millisecond

	// springSettle bounds how long spring entrances run before snapping.
	springSettle = 600 * time.Millisecond
)

// Frame is the visual state of a toast at one instant. Offset is the
// fraction of the toast still displaced toward its screen edge (1 fully
// off-screen, 0 at rest, negative when overshooting).
type Frame struct {
	Offset  float64
	Opacity float64
	Done    bool
}

// Timeline maps elapsed time to frames.
type Timeline struct {
	Duration time.Duration
	offset   func(p float64) float64
	opacity  func(p float64) float64
}

// At samples the timeline. Elapsed values past Duration yield the final frame.
func (tl Timeline) At(elapsed time.Duration) Frame {
	if tl.Duration <= 0 || elapsed >= tl.Duration {
		return Frame{Offset: tl.offset(1), Opacity: tl.opacity(1), Done: true}
	}
	if elapsed < 0 {
		elapsed = 0
	}
	p := float64(elapsed) / float64(tl.Duration)
	return Frame{Offset: tl.offset(p), Opacity: tl.opacity(p)}
}

// Rest is the frame of a toast that is fully shown.
var Rest = Frame{Offset: 0, Opacity: 1, Done: true}

// Entrance returns the entrance timeline for an animation style. Unknown
// styles animate like slide.
func Entrance(anim toast.Animation) Timeline {
	fadeIn := func(p float64) float64 { return clamp(p / fadePortion(anim)) }
	switch anim {
	case toast.AnimationFade:
		return Timeline{
			Duration: EntranceDuration,
			offset:   func(float64) float64 { return 0 },
			opacity:  fadeIn,
		}
	case toast.AnimationSpring:
		return Timeline{
			Duration: springSettle,
			offset:   spring(26, 0.9),
			opacity:  fadeIn,
		}
	case toast.AnimationBounce:
		return Timeline{
			Duration: springSettle,
			offset:   spring(22, 0.35),
			opacity:  fadeIn,
		}
	default:
		return Timeline{
			Duration: EntranceDuration,
			offset:   func(p float64) float64 { return 1 - easeOutCubic(p) },
			opacity:  fadeIn,
		}
	}
}

// Exit returns the timeline played before a toast is removed: it fades out
// while sliding back toward its edge.
func Exit() Timeline {
	return Timeline{
		Duration: ExitDuration,
		offset:   func(p float64) float64 { return p },
		opacity:  func(p float64) float64 { return 1 - p },
	}
}

// fadePortion is the share of the timeline spent fading in. Spring styles
// run longer than the 300ms fade so it covers only the first half.
func fadePortion(anim toast.Animation) float64 {
	switch anim {
	case toast.AnimationSpring, toast.AnimationBounce:
		return float64(EntranceDuration) / float64(springSettle)
	default:
		return 1
	}
}

func easeOutCubic(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}

// spring returns a damped oscillator released from offset 1 toward 0,
// stepped once per frame over the settle window. omega is the angular
// frequency and zeta the damping ratio; values below 1 overshoot.
func spring(omega, zeta float64) func(float64) float64 {
	s := harmonica.NewSpring(harmonica.FPS(fps), omega, zeta)
	frames := int(springSettle / FrameInterval)
	samples := make([]float64, frames+1)
	pos, vel := 1.0, 0.0
	samples[0] = pos
	for i := 1; i <= frames; i++ {
		pos, vel = s.Update(pos, vel, 0)
		samples[i] = pos
	}

	return func(p float64) float64 {
		if p >= 1 {
			return 0
		}
		return samples[int(math.Round(p*float64(frames)))]
	}
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
