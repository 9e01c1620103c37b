package main

import (
	"fmt"
	"sort"

	"github.com/milk9111/reaperrun/common"
	"github.com/milk9111/reaperrun/component"
	"github.com/milk9111/reaperrun/obj"
	"github.com/milk9111/reaperrun/prefabs"
)

// preview plays one animation tag of a character the same way the game
// does, so frame counts and the finish boundary can be checked by eye.
type preview struct {
	name   string
	sprite obj.SpriteConfig
	anims  obj.Animations
	tags   []obj.AnimTag

	idx  int
	dir  common.Direction
	anim component.SpriteAnimation

	// loops counts how often a once animation finished and was restarted.
	loops int
}

func loadPreview(spec *prefabs.WorldSpec, name string) (*preview, error) {
	var (
		sprite obj.SpriteConfig
		anims  obj.Animations
	)
	if name == "player" {
		cfg, err := spec.PlayerConfig()
		if err != nil {
			return nil, err
		}
		sprite, anims = cfg.Sprite, cfg.Animations
	} else {
		cfg, err := spec.EnemyConfig(name)
		if err != nil {
			return nil, err
		}
		sprite, anims = cfg.Sprite, cfg.Animations
	}
	return newPreview(name, sprite, anims), nil
}

func newPreview(name string, sprite obj.SpriteConfig, anims obj.Animations) *preview {
	tags := make([]obj.AnimTag, 0, len(anims))
	for tag := range anims {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })

	p := &preview{
		name:   name,
		sprite: sprite,
		anims:  anims,
		tags:   tags,
		anim:   component.NewSpriteAnimation(sprite.MaxFrameCount, sprite.FrameTicks),
	}
	p.restart()
	return p
}

func (p *preview) tag() obj.AnimTag {
	if len(p.tags) == 0 {
		return ""
	}
	return p.tags[p.idx]
}

// selectTag jumps to tag if the character has it.
func (p *preview) selectTag(tag obj.AnimTag) bool {
	for i, t := range p.tags {
		if t == tag {
			p.idx = i
			p.restart()
			return true
		}
	}
	return false
}

// cycle moves through the tags by delta, wrapping at both ends.
func (p *preview) cycle(delta int) {
	if len(p.tags) == 0 {
		return
	}
	p.idx = (p.idx + delta%len(p.tags) + len(p.tags)) % len(p.tags)
	p.restart()
}

func (p *preview) face(dir common.Direction) {
	if dir == p.dir {
		return
	}
	p.dir = dir
	p.anim.Mirror()
}

func (p *preview) restart() {
	p.loops = 0
	p.anim.Play(p.anims[p.tag()], p.dir)
}

// step advances one tick. Once animations restart after they finish so the
// preview keeps moving.
func (p *preview) step() {
	if p.anim.Def.Playback == component.PlayOnce && p.anim.Finished(p.dir) {
		loops := p.loops + 1
		p.restart()
		p.loops = loops
		return
	}
	p.anim.Step(p.dir)
}

func (p *preview) source() common.Rect {
	return p.sprite.Source(p.anim.Column(p.dir), p.anim.Def.Row)
}

func (p *preview) status() string {
	return fmt.Sprintf("%s %s (%s)  frame %d/%d  column %d  row %d  finished %v  restarts %d",
		p.name, p.tag(), p.dir,
		p.anim.Frame(p.dir), p.anim.Def.FrameCount, p.anim.Column(p.dir), p.anim.Def.Row,
		p.anim.Finished(p.dir), p.loops)
}
