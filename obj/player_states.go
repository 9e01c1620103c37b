package obj

import "github.com/milk9111/reaperrun/common"

// PlayerState is a state of the player state machine.
type PlayerState int

const (
	PlayerIdle PlayerState = iota
	PlayerRunLeft
	PlayerRunRight
	PlayerJumpStart
	PlayerAscending
	PlayerDescending
	PlayerAttackGround
	PlayerAttackAir
	PlayerSlideLeft
	PlayerSlideRight
	PlayerHurt
	PlayerDying
)

var playerStateNames = [...]string{
	PlayerIdle:         "idle",
	PlayerRunLeft:      "run-left",
	PlayerRunRight:     "run-right",
	PlayerJumpStart:    "jump-start",
	PlayerAscending:    "ascending",
	PlayerDescending:   "descending",
	PlayerAttackGround: "attack-ground",
	PlayerAttackAir:    "attack-air",
	PlayerSlideLeft:    "slide-left",
	PlayerSlideRight:   "slide-right",
	PlayerHurt:         "hurt",
	PlayerDying:        "dying",
}

func (s PlayerState) String() string {
	if s < 0 || int(s) >= len(playerStateNames) {
		return "unknown"
	}
	return playerStateNames[s]
}

func runState(dir common.Direction) PlayerState {
	if dir == common.Left {
		return PlayerRunLeft
	}
	return PlayerRunRight
}

func slideState(dir common.Direction) PlayerState {
	if dir == common.Left {
		return PlayerSlideLeft
	}
	return PlayerSlideRight
}

func (p *Player) enterState() {
	switch p.state {
	case PlayerIdle:
		p.play(AnimIdle)
	case PlayerRunLeft, PlayerRunRight:
		p.Direction = common.Right
		if p.state == PlayerRunLeft {
			p.Direction = common.Left
		}
		p.play(AnimWalking)
	case PlayerJumpStart:
		p.VelocityY = p.cfg.JumpForce
		p.play(AnimJumpStart)
	case PlayerAscending:
		p.play(AnimAscending)
	case PlayerDescending:
		p.play(AnimDescending)
	case PlayerAttackGround:
		p.play(AnimSlashing)
	case PlayerAttackAir:
		p.play(AnimSlashingAir)
	case PlayerSlideLeft, PlayerSlideRight:
		p.Direction = common.Right
		if p.state == PlayerSlideLeft {
			p.Direction = common.Left
		}
		p.play(AnimSliding)
	case PlayerHurt:
		// re-entry inside the hit window costs nothing
		if !p.hitCooldown.Active(p.env.Now()) {
			p.HP.Dec()
			p.hitCooldown.Arm(p.env.Now())
		}
		p.VelocityX = 0
		p.play(AnimHurt)
	case PlayerDying:
		p.VelocityX = 0
		p.play(AnimDying)
	}
}

func (p *Player) handleInput(in Input) {
	if in == nil {
		return
	}
	switch p.state {
	case PlayerIdle:
		p.groundInput(in, false)
	case PlayerRunLeft, PlayerRunRight:
		p.groundInput(in, true)
	case PlayerJumpStart, PlayerAscending, PlayerDescending:
		p.airInput(in)
	}
}

// heldDirection resolves the horizontal keys. Holding both counts as neither.
func heldDirection(in Input) (common.Direction, bool) {
	left, right := in.Pressed(KeyLeft), in.Pressed(KeyRight)
	switch {
	case right && !left:
		return common.Right, true
	case left && !right:
		return common.Left, true
	}
	return common.Right, false
}

// groundInput handles Idle and Run. Run additionally falls back to Idle once
// nothing is held.
func (p *Player) groundInput(in Input, running bool) {
	dir, moving := heldDirection(in)
	switch {
	case moving && (!running || dir != p.Direction):
		p.setState(runState(dir))
	case in.Pressed(KeyJump):
		p.setState(PlayerJumpStart)
	case in.Pressed(KeyAttack):
		p.setState(PlayerAttackGround)
	case in.Pressed(KeySlide) && !p.SlideOnCooldown():
		p.setState(slideState(p.Direction))
	case running && in.Idle() && p.IsOnGround():
		p.setState(PlayerIdle)
	}
}

func (p *Player) airInput(in Input) {
	if dir, moving := heldDirection(in); moving {
		p.setDirection(dir)
		p.VelocityX = dir.Sign() * p.cfg.Speed
	}

	switch {
	case in.Pressed(KeyAttack):
		p.setState(PlayerAttackAir)
	case in.Pressed(KeySlide) && !p.SlideOnCooldown():
		p.setState(slideState(p.Direction))
	case in.Idle() && p.IsOnGround() && p.state != PlayerJumpStart:
		p.setState(PlayerIdle)
	}
}

func (p *Player) finished() bool {
	return p.Anim.Finished(p.Direction)
}

// settle returns to Idle on the ground and to Descending in the air.
func (p *Player) settle() {
	if p.IsOnGround() {
		p.setState(PlayerIdle)
		return
	}
	p.setState(PlayerDescending)
}

func (p *Player) updateState() {
	switch p.state {
	case PlayerIdle:
		p.VelocityX = 0
		if !p.IsOnGround() {
			p.setState(PlayerDescending)
			return
		}
		p.VelocityY = 0

	case PlayerRunLeft, PlayerRunRight:
		p.VelocityX = p.Direction.Sign() * p.cfg.Speed

	case PlayerJumpStart:
		if p.finished() {
			p.setState(PlayerAscending)
		}

	case PlayerAscending:
		if p.VelocityY > 0 {
			p.setState(PlayerDescending)
		}

	case PlayerDescending:
		if p.IsOnGround() {
			p.VelocityY = 0
			p.Y = p.env.GroundLevel()
			p.setState(PlayerIdle)
		}

	case PlayerAttackGround:
		p.VelocityX = p.Direction.Sign() * p.cfg.Speed / 2
		if p.finished() {
			p.fireProjectile()
			p.setState(PlayerIdle)
		}

	case PlayerAttackAir:
		p.VelocityX = p.Direction.Sign() * p.cfg.Speed / 2
		if p.finished() {
			p.fireProjectile()
			p.settle()
		}

	case PlayerSlideLeft, PlayerSlideRight:
		if p.Crystals.Empty() {
			p.setState(PlayerIdle)
			return
		}
		p.VelocityX = p.Direction.Sign() * p.cfg.DashSpeed
		if p.finished() {
			p.Crystals.Dec()
			p.slideCooldown.Arm(p.env.Now())
			p.settle()
		}

	case PlayerHurt:
		p.VelocityX = 0
		if p.finished() {
			p.setState(PlayerIdle)
		}

	case PlayerDying:
		p.VelocityX = 0
		if p.finished() && !p.gameOverSent {
			p.gameOverSent = true
			p.env.Lifecycle().OnGameOver()
		}
	}
}
