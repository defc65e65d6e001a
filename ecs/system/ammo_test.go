package system

import (
	"testing"

	"github.com/mbellows/notestrike/ecs/component"
)

func TestAmmoRecharge(t *testing.T) {
	f := newFixture(t, component.ModeMusic)
	sys := NewAmmoSystem(f.tuning)
	f.session.Ammo.Current = 2

	interval := f.tuning.RechargeTicks()
	runTicks(sys, f.w, interval-1)
	if f.session.Ammo.Current != 2 {
		t.Fatalf("recharged early: %d", f.session.Ammo.Current)
	}

	sys.Update(f.w)
	if f.session.Ammo.Current != 3 {
		t.Fatalf("ammo = %d, want 3", f.session.Ammo.Current)
	}
	if f.session.Ammo.Timer != 0 {
		t.Fatalf("timer should rewind after a recharge")
	}
}

func TestAmmoCapsAtMax(t *testing.T) {
	f := newFixture(t, component.ModeMusic)
	sys := NewAmmoSystem(f.tuning)

	runTicks(sys, f.w, f.tuning.RechargeTicks()*3)
	if f.session.Ammo.Current != f.session.Ammo.Max {
		t.Fatalf("ammo = %d, want max %d", f.session.Ammo.Current, f.session.Ammo.Max)
	}
	if f.session.Ammo.Timer != 0 {
		t.Fatalf("timer should idle at zero when full")
	}
}

func TestAmmoMissResetsRechargeInterval(t *testing.T) {
	f := newFixture(t, component.ModeMusic)
	sys := NewAmmoSystem(f.tuning)
	f.session.Ammo.Current = 2

	runTicks(sys, f.w, f.tuning.RechargeTicks()/2)
	f.session.Ammo.SpendMiss()

	// The half-elapsed progress is gone: a full interval is required again.
	runTicks(sys, f.w, f.tuning.RechargeTicks()-1)
	if f.session.Ammo.Current != 1 {
		t.Fatalf("partial interval recharged: %d", f.session.Ammo.Current)
	}
	sys.Update(f.w)
	if f.session.Ammo.Current != 2 {
		t.Fatalf("ammo = %d, want 2", f.session.Ammo.Current)
	}
}
