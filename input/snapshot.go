package input

import (
	"strings"

	"github.com/milk9111/reaperrun/obj"
)

// Snapshot is a plain pressed-key set. It satisfies obj.Input on its own and
// is what headless drivers feed the world.
type Snapshot map[obj.Key]bool

// Of builds a snapshot with keys held.
func Of(keys ...obj.Key) Snapshot {
	s := make(Snapshot, len(keys))
	for _, k := range keys {
		s[k] = true
	}
	return s
}

func (s Snapshot) Pressed(k obj.Key) bool { return s[k] }

func (s Snapshot) Idle() bool {
	for _, down := range s {
		if down {
			return false
		}
	}
	return true
}

// String lists the held keys in key order, e.g. "left+jump".
func (s Snapshot) String() string {
	var held []string
	for _, k := range obj.AllKeys {
		if s[k] {
			held = append(held, k.String())
		}
	}
	if len(held) == 0 {
		return "idle"
	}
	return strings.Join(held, "+")
}
