package system

import (
	"github.com/milk9111/reaperrun/common"
	"github.com/milk9111/reaperrun/obj"
)

// ResolveCombat applies body contact between the player and enemies: a
// descending player landing on an enemy stomps it, any other overlap hurts
// both sides.
func ResolveCombat(player *obj.Player, enemies []*obj.Enemy, sideTolerance float64) {
	if player == nil || player.State() == obj.PlayerDying {
		return
	}
	for _, e := range enemies {
		if e.IsDead || e.State() == obj.EnemyDying {
			continue
		}
		ph, eh := player.Hitbox.Rect(), e.Hitbox.Rect()

		if isStomp(player, ph, eh) {
			e.Hurt()
			player.Bounce()
			player.ArmStompCooldown()
			continue
		}

		if ph.Intersects(eh) && ph.Bottom() > eh.Y+sideTolerance && !player.HitOnCooldown() {
			player.Hurt()
			e.Hurt()
		}
	}
}

func isStomp(player *obj.Player, ph, eh common.Rect) bool {
	if player.State() != obj.PlayerDescending || player.StompOnCooldown() {
		return false
	}
	return ph.OverlapsX(eh) && ph.Bottom() >= eh.Y && ph.Y < eh.Bottom()
}
