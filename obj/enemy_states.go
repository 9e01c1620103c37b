package obj

import "math"

// EnemyState is a state of the enemy state machine.
type EnemyState int

const (
	EnemyIdle EnemyState = iota
	EnemyWalking
	EnemyAttacking
	EnemyHurt
	EnemyDying
)

func (s EnemyState) String() string {
	switch s {
	case EnemyIdle:
		return "idle"
	case EnemyWalking:
		return "walking"
	case EnemyAttacking:
		return "attacking"
	case EnemyHurt:
		return "hurt"
	case EnemyDying:
		return "dying"
	}
	return "unknown"
}

func (e *Enemy) enterState() {
	switch e.state {
	case EnemyIdle:
		e.play(AnimIdle)
	case EnemyWalking:
		e.play(AnimWalking)
	case EnemyAttacking:
		e.play(AnimSlashing)
		if e.Kind != KindBoss {
			e.env.Sound().Play(SoundZombieAttack)
		}
	case EnemyHurt:
		if !e.hurtCooldown.Active(e.env.Now()) {
			e.HP.Dec()
			e.hurtCooldown.Arm(e.env.Now())
		}
		e.play(AnimHurt)
		if e.Kind == KindBoss {
			e.env.Sound().Play(SoundBoss)
		}
	case EnemyDying:
		e.play(AnimDying)
	}
}

// checkForAction starts an attack when the player walks into reach.
func (e *Enemy) checkForAction() {
	if e.state != EnemyWalking {
		return
	}
	pl := e.env.Player()
	if pl == nil || !e.inReach(pl) {
		return
	}
	if e.attackCooldown.Active(e.env.Now()) {
		return
	}
	e.setState(EnemyAttacking)
}

func (e *Enemy) finished() bool {
	return e.Anim.Finished(e.Direction)
}

func (e *Enemy) updateState() {
	pl := e.env.Player()

	switch e.state {
	case EnemyIdle:
		if pl == nil {
			return
		}
		if e.cfg.AggroRange <= 0 || math.Abs(pl.X-e.X) <= e.cfg.AggroRange {
			e.setState(EnemyWalking)
		}

	case EnemyWalking:
		if pl == nil {
			return
		}
		if pl.X < e.X {
			e.X -= e.cfg.Speed
		} else {
			e.X += e.cfg.Speed
		}
		e.facePlayer(pl)

	case EnemyAttacking:
		if pl == nil {
			return
		}
		e.facePlayer(pl)
		if !e.finished() {
			return
		}
		e.attackCooldown.Arm(e.env.Now())
		if e.Kind == KindBoss {
			e.fireProjectile()
		}
		if e.inReach(pl) && pl.Hitbox.Rect().OverlapsY(e.Hitbox.Rect()) {
			pl.Hurt()
		}
		e.setState(EnemyWalking)

	case EnemyHurt:
		if e.finished() {
			e.setState(EnemyWalking)
		}

	case EnemyDying:
		if !e.finished() {
			return
		}
		e.IsDead = true
		if e.Kind == KindBoss && !e.winSent {
			e.winSent = true
			e.env.Lifecycle().OnWin()
		}
	}
}
