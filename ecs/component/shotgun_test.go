package component

import (
	"math"
	"testing"
)

func newTestShotgun() *Shotgun {
	return &Shotgun{
		Shots:        ShotgunCapacity,
		FiringTime:   0.05,
		ReloadTime:   1.0,
		Damage:       100,
		FalloffStart: 15,
		FalloffEnd:   30,
	}
}

const dt = 1.0 / 60

func TestShotgunDoubleBarrel(t *testing.T) {
	sg := newTestShotgun()
	held := &Input{FirePressed: true, FireJustPressed: true}

	step := sg.Step(dt, held)
	if !step.Fired || sg.Shots != 1 || sg.State.Phase != ShotgunFiring {
		t.Fatalf("press should fire the first barrel: %+v shots=%d phase=%s", step, sg.Shots, sg.State.Phase)
	}
	if sg.NextState.Phase != ShotgunIdle {
		t.Fatalf("one shot left, expected next state idle, got %s", sg.NextState.Phase)
	}

	// Holding the trigger never fires the second barrel.
	held = &Input{FirePressed: true}
	for range 30 {
		if sg.Step(dt, held).Fired {
			t.Fatalf("held trigger fired the second barrel")
		}
	}
	if sg.State.Phase != ShotgunIdle || sg.Shots != 1 {
		t.Fatalf("expected idle with one shot, got %s shots=%d", sg.State.Phase, sg.Shots)
	}

	step = sg.Step(dt, &Input{FireJustReleased: true})
	if !step.Fired || sg.Shots != 0 || sg.NextState.Phase != ShotgunReloading {
		t.Fatalf("release should fire the second barrel and plan a reload: %+v shots=%d next=%s", step, sg.Shots, sg.NextState.Phase)
	}

	reloadEvents := 0
	ticks := 0
	for sg.Shots != ShotgunCapacity {
		step := sg.Step(dt, &Input{FirePressed: true, FireJustPressed: true})
		if step.Fired {
			t.Fatalf("fired while empty")
		}
		if step.Reloaded {
			reloadEvents++
		}
		ticks++
		if ticks > 200 {
			t.Fatalf("reload never completed")
		}
	}
	if reloadEvents != 1 {
		t.Fatalf("expected one reload event, got %d", reloadEvents)
	}
	// Firing (0.05s) then reloading (1.0s).
	if want := int(math.Round((0.05 + 1.0) / dt)); ticks < want-2 || ticks > want+3 {
		t.Fatalf("expected about %d ticks to reload, got %d", want, ticks)
	}
	if sg.State.Phase != ShotgunIdle {
		t.Fatalf("expected idle after reload, got %s", sg.State.Phase)
	}
}

func TestShotgunReleaseWithFullMagazineDoesNothing(t *testing.T) {
	sg := newTestShotgun()
	if sg.Step(dt, &Input{FireJustReleased: true}).Fired {
		t.Fatalf("release with two shots must not fire")
	}
}

func TestShotgunShotsNeverRefillEarly(t *testing.T) {
	sg := newTestShotgun()
	sg.Step(dt, &Input{FirePressed: true})
	for range 5 {
		sg.Step(dt, &Input{})
	}
	sg.Step(dt, &Input{FireJustReleased: true})

	for i := 0; sg.State.Phase != ShotgunIdle; i++ {
		if sg.Shots != 0 {
			t.Fatalf("tick %d: shots refilled before reload finished (%d, %s)", i, sg.Shots, sg.State.Phase)
		}
		sg.Step(dt, &Input{FirePressed: true})
	}
	if sg.Shots != ShotgunCapacity {
		t.Fatalf("expected full magazine after reload, got %d", sg.Shots)
	}
}

func TestShotgunDamageFalloff(t *testing.T) {
	sg := newTestShotgun()
	tests := []struct {
		dist float64
		want float64
	}{
		{0, 100},
		{15, 100},
		{22.5, 50},
		{30, 0},
		{45, 0},
	}
	for _, tc := range tests {
		if got := sg.DamageAt(tc.dist); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("DamageAt(%v) = %v, want %v", tc.dist, got, tc.want)
		}
	}
}
