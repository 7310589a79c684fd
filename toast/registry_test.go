package toast_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nateberkopec/toastee/toast"
)

type recorder struct {
	rounds [][]toast.Toast
}

func (r *recorder) listen(active []toast.Toast) {
	r.rounds = append(r.rounds, active)
}

func (r *recorder) last() []toast.Toast {
	if len(r.rounds) == 0 {
		return nil
	}
	return r.rounds[len(r.rounds)-1]
}

func TestRegistryCreateScenario(t *testing.T) {
	t.Parallel()

	reg := toast.NewRegistry(toast.RegistryConfig{})
	rec := &recorder{}
	reg.Subscribe(rec.listen)

	id := reg.Create(toast.KindSuccess, "Saved",
		toast.WithDuration(3*time.Second),
		toast.WithPosition(toast.PositionTop),
	)
	assert.Equal(t, "toast-1", id.String())

	active := rec.last()
	require.Len(t, active, 1)
	assert.Equal(t, toast.KindSuccess, active[0].Kind)
	assert.Equal(t, "Saved", active[0].Message)
	assert.Equal(t, toast.PositionTop, active[0].Position)

	reg.Remove(id)
	assert.Empty(t, rec.last())
}

func TestRegistryIDsStrictlyIncrease(t *testing.T) {
	t.Parallel()

	reg := toast.NewRegistry(toast.RegistryConfig{})
	var prev toast.ID
	for i := 0; i < 20; i++ {
		id := reg.Info("x")
		assert.Greater(t, uint64(id), uint64(prev))
		prev = id
		if i%3 == 0 {
			reg.Remove(id)
		}
		if i == 10 {
			reg.Clear()
		}
	}
}

func TestRegistryLengthAccounting(t *testing.T) {
	t.Parallel()

	reg := toast.NewRegistry(toast.RegistryConfig{})
	a := reg.Success("a")
	b := reg.Error("b")
	reg.Warning("c")
	assert.Equal(t, 3, reg.Len())

	reg.Remove(a)
	reg.Remove(a)
	reg.Remove(toast.ID(999))
	assert.Equal(t, 2, reg.Len())

	reg.Remove(b)
	assert.Equal(t, 1, reg.Len())

	reg.Clear()
	assert.Equal(t, 0, reg.Len())
}

func TestRegistryPreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	reg := toast.NewRegistry(toast.RegistryConfig{})
	first := reg.Info("first")
	second := reg.Info("second")
	third := reg.Info("third")
	reg.Remove(second)

	ids := []toast.ID{}
	for _, item := range reg.Snapshot() {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []toast.ID{first, third}, ids)
}

func TestRegistryDurationResolution(t *testing.T) {
	t.Parallel()

	store := toast.NewStore()
	reg := toast.NewRegistry(toast.RegistryConfig{Store: store})

	store.Set(toast.WithDuration(5000 * time.Millisecond))
	fromConfig := reg.Info("x")
	explicit := reg.Info("y", toast.WithDuration(1000*time.Millisecond))
	sticky := reg.Info("z", toast.WithDuration(0))

	got, ok := reg.Get(fromConfig)
	require.True(t, ok)
	assert.Equal(t, 5000*time.Millisecond, got.Duration)

	got, _ = reg.Get(explicit)
	assert.Equal(t, 1000*time.Millisecond, got.Duration)

	got, _ = reg.Get(sticky)
	assert.Equal(t, time.Duration(0), got.Duration)
	assert.False(t, got.AutoDismiss())
}

func TestRegistryHardcodedFallbacks(t *testing.T) {
	t.Parallel()

	reg := toast.NewRegistry(toast.RegistryConfig{Store: &toast.Store{}})

	got, _ := reg.Get(reg.Info("x"))
	assert.Equal(t, toast.ThemeMaterial, got.Theme)
	assert.Equal(t, toast.SizeMD, got.Size)
	assert.Equal(t, toast.PositionTop, got.Position)
	assert.Equal(t, toast.AnimationSlide, got.Animation)
	assert.Equal(t, 3*time.Second, got.Duration)
}

func TestRegistryFreezesThemeAtCreation(t *testing.T) {
	t.Parallel()

	store := toast.NewStore()
	reg := toast.NewRegistry(toast.RegistryConfig{Store: store})

	store.Set(toast.WithTheme(toast.ThemeNeobrutalist))
	id := reg.Info("x")
	store.Set(toast.WithTheme(toast.ThemeMaterial))

	got, ok := reg.Get(id)
	require.True(t, ok)
	assert.Equal(t, toast.ThemeNeobrutalist, got.Theme)
}

func TestRegistryPerCallOptionsWin(t *testing.T) {
	t.Parallel()

	store := toast.NewStore()
	store.Set(
		toast.WithAnimation(toast.AnimationBounce),
		toast.WithSize(toast.SizeXL),
		toast.WithStyleOverrides(toast.StyleOverrides{toast.RoleText: {Bold: true}}),
	)
	reg := toast.NewRegistry(toast.RegistryConfig{Store: store})

	id := reg.Warning("w",
		toast.WithAnimation(toast.AnimationFade),
		toast.WithPosition(toast.PositionBottom),
	)
	got, _ := reg.Get(id)
	assert.Equal(t, toast.AnimationFade, got.Animation)
	assert.Equal(t, toast.PositionBottom, got.Position)
	assert.Equal(t, toast.SizeXL, got.Size)
	assert.True(t, got.StyleOverrides[toast.RoleText].Bold)
}

func TestRegistryStampsCreatedAt(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	reg := toast.NewRegistry(toast.RegistryConfig{Clock: func() time.Time { return now }})

	got, _ := reg.Get(reg.Error("boom"))
	assert.True(t, got.CreatedAt.Equal(now))
	assert.Equal(t, toast.KindError, got.Kind)
}

func TestRegistryDoubleRemoveStillNotifies(t *testing.T) {
	t.Parallel()

	reg := toast.NewRegistry(toast.RegistryConfig{})
	rec := &recorder{}
	reg.Subscribe(rec.listen)

	id := reg.Success("a")
	reg.Remove(id)
	before := len(rec.rounds)

	assert.NotPanics(t, func() { reg.Remove(id) })
	assert.Len(t, rec.rounds, before+1)
	assert.Empty(t, rec.last())
}

func TestRegistrySubscribeAfterClearSeesEmpty(t *testing.T) {
	t.Parallel()

	reg := toast.NewRegistry(toast.RegistryConfig{})
	reg.Info("a")
	reg.Info("b")
	reg.Clear()

	rec := &recorder{}
	reg.Subscribe(rec.listen)
	require.Len(t, rec.rounds, 1)
	assert.Empty(t, rec.rounds[0])
}

func TestRegistrySubscriberOrder(t *testing.T) {
	t.Parallel()

	reg := toast.NewRegistry(toast.RegistryConfig{})
	var calls []string
	reg.Subscribe(func([]toast.Toast) { calls = append(calls, "A") })
	reg.Subscribe(func([]toast.Toast) { calls = append(calls, "B") })
	calls = nil

	reg.Info("x")
	reg.Clear()
	assert.Equal(t, []string{"A", "B", "A", "B"}, calls)
}

func TestRegistryUnsubscribe(t *testing.T) {
	t.Parallel()

	reg := toast.NewRegistry(toast.RegistryConfig{})
	rec := &recorder{}
	unsubscribe := reg.Subscribe(rec.listen)
	reg.Info("x")
	unsubscribe()
	unsubscribe()
	reg.Info("y")

	assert.Len(t, rec.rounds, 2)
}

func TestRegistrySnapshotsAreIsolated(t *testing.T) {
	t.Parallel()

	reg := toast.NewRegistry(toast.RegistryConfig{})
	reg.Subscribe(func(active []toast.Toast) {
		for i := range active {
			active[i].Message = "tampered"
		}
	})
	rec := &recorder{}
	reg.Subscribe(rec.listen)

	id := reg.Info("original")
	assert.Equal(t, "original", rec.last()[0].Message)

	got, _ := reg.Get(id)
	assert.Equal(t, "original", got.Message)
}

func TestRegistryListenerMayReenter(t *testing.T) {
	t.Parallel()

	reg := toast.NewRegistry(toast.RegistryConfig{})
	reg.Subscribe(func(active []toast.Toast) {
		for _, item := range active {
			if item.Kind == toast.KindError {
				reg.Remove(item.ID)
			}
		}
	})

	reg.Error("gone")
	reg.Info("stays")
	require.Equal(t, 1, reg.Len())
	assert.Equal(t, "stays", reg.Snapshot()[0].Message)
}

func TestRegistryFaultyListenerIsIsolated(t *testing.T) {
	t.Parallel()

	reg := toast.NewRegistry(toast.RegistryConfig{})
	reg.Subscribe(func(active []toast.Toast) {
		if len(active) > 0 {
			panic("renderer exploded")
		}
	})
	rec := &recorder{}
	reg.Subscribe(rec.listen)

	assert.NotPanics(t, func() { reg.Info("x") })
	assert.Len(t, rec.last(), 1)
	assert.Equal(t, 1, reg.Len())
}

func TestRegistryConcurrentCreatesDeliverInOrder(t *testing.T) {
	t.Parallel()

	const workers, perWorker = 8, 50

	reg := toast.NewRegistry(toast.RegistryConfig{})
	var sizes []int
	reg.Subscribe(func(active []toast.Toast) {
		sizes = append(sizes, len(active))
	})

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				reg.Info("concurrent")
			}
		}()
	}
	wg.Wait()

	require.Len(t, sizes, workers*perWorker+1)
	for i, n := range sizes {
		require.Equal(t, i, n, "round %d delivered out of order", i)
	}
}

func TestRegistryReentrantMutationFollowsCurrentRound(t *testing.T) {
	t.Parallel()

	reg := toast.NewRegistry(toast.RegistryConfig{})
	reg.Subscribe(func(active []toast.Toast) {
		if len(active) == 1 && active[0].Kind == toast.KindError {
			reg.Info("follow-up")
		}
	})
	rec := &recorder{}
	reg.Subscribe(rec.listen)

	reg.Error("first")

	require.Len(t, rec.rounds, 3)
	assert.Empty(t, rec.rounds[0])
	assert.Len(t, rec.rounds[1], 1, "second listener sees the error round before the follow-up")
	assert.Len(t, rec.rounds[2], 2)
}
