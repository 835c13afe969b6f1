package systems

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"

	"github.com/automoto/combattext/components"
	cfg "github.com/automoto/combattext/config"
)

const missText = "MISS"

// UpdateCombat applies queued damage events to target health and spawns the
// matching floating text above each target.
func UpdateCombat(ecs *ecs.ECS) {
	ft, _ := GetFloatingText(ecs)

	// --------------------------------------------------------------------
	// 1. Process queued damage events
	// --------------------------------------------------------------------
	var hit []*donburi.Entry
	components.DamageEvent.Each(ecs.World, func(e *donburi.Entry) {
		hit = append(hit, e)
	})
	for _, e := range hit {
		dmg := components.DamageEvent.Get(e)

		if e.HasComponent(components.Health) && dmg.Amount != 0 {
			hp := components.Health.Get(e)
			if dmg.Heal {
				hp.Current += dmg.Amount
			} else {
				hp.Current -= dmg.Amount
			}
			if e.HasComponent(components.HealthBar) {
				components.HealthBar.Get(e).TimeToLive = cfg.Targets.HealthBarDuration
			} else {
				donburi.Add(e, components.HealthBar, &components.HealthBarData{
					TimeToLive: cfg.Targets.HealthBarDuration,
				})
			}
		}

		if ft != nil && e.HasComponent(components.Target) {
			pos := components.Target.Get(e).Position.Add(mgl64.Vec3{0, cfg.FloatingText.SpawnHeight, 0})
			spawnCombatText(ft, *dmg, pos)
		}

		donburi.Remove[components.DamageEventData](e, components.DamageEvent)
	}

	// --------------------------------------------------------------------
	// 2. Clamp health ranges (0..Max); dummies refill when emptied
	// --------------------------------------------------------------------
	components.Health.Each(ecs.World, func(e *donburi.Entry) {
		hp := components.Health.Get(e)
		if hp.Current > hp.Max || hp.Current <= 0 {
			hp.Current = hp.Max
		}
	})

	// --------------------------------------------------------------------
	// 3. Tick health bar visibility
	// --------------------------------------------------------------------
	var expired []*donburi.Entry
	components.HealthBar.Each(ecs.World, func(e *donburi.Entry) {
		bar := components.HealthBar.Get(e)
		bar.TimeToLive--
		if bar.TimeToLive <= 0 {
			expired = append(expired, e)
		}
	})
	for _, e := range expired {
		donburi.Remove[components.HealthBarData](e, components.HealthBar)
	}
}

func spawnCombatText(ft *components.FloatingTextData, dmg components.DamageEventData, pos mgl64.Vec3) {
	switch {
	case dmg.Amount == 0:
		if ft.Miss >= 0 {
			ft.Manager.Spawn(missText, pos, ft.Miss)
		}
	case dmg.Heal:
		if ft.Heal >= 0 {
			ft.Manager.SpawnNumber(dmg.Amount, pos, ft.Heal)
		}
	case dmg.Critical:
		if ft.Critical >= 0 {
			ft.Manager.SpawnNumber(dmg.Amount, pos, ft.Critical)
		}
	default:
		if ft.Damage >= 0 {
			ft.Manager.SpawnNumber(dmg.Amount, pos, ft.Damage)
		}
	}
}

// RollHit picks a random combat outcome from the target config.
func RollHit(rng *rand.Rand) components.DamageEventData {
	t := cfg.Targets
	roll := rng.Float64()
	switch {
	case roll < t.MissChance:
		return components.DamageEventData{}
	case roll < t.MissChance+t.HealChance:
		return components.DamageEventData{Amount: t.MinDamage + rng.IntN(t.MaxDamage-t.MinDamage+1), Heal: true}
	}
	amount := t.MinDamage + rng.IntN(t.MaxDamage-t.MinDamage+1)
	if rng.Float64() < t.CritChance {
		return components.DamageEventData{Amount: int(float64(amount) * t.CritScale), Critical: true}
	}
	return components.DamageEventData{Amount: amount}
}

// QueueHit adds a damage event to the target, replacing any pending one.
func QueueHit(e *donburi.Entry, dmg components.DamageEventData) {
	if e.HasComponent(components.DamageEvent) {
		logger.Debug("Replacing pending hit", zap.Int("amount", dmg.Amount))
		components.DamageEvent.SetValue(e, dmg)
		return
	}
	donburi.Add(e, components.DamageEvent, &dmg)
}
