package obj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackgroundRowRecycle(t *testing.T) {
	cases := []struct {
		name     string
		velocity float64
		divider  float64
	}{
		{"right_fast", 10, 2},
		{"right_slow", 10, 5},
		{"left_fast", -10, 2},
		{"left_dash", -20, 3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			row := NewBackgroundRow("bg", c.divider, testViewport, 540)
			tiles := map[*Background]bool{}
			for _, b := range row {
				tiles[b] = true
			}

			for i := 0; i < 2000; i++ {
				row.Scroll(c.velocity)
				row = row.Recycle(testViewport)

				require.Len(t, row, BackgroundTilesPerRow)
				for j := 1; j < len(row); j++ {
					assert.InDelta(t, row[j-1].X+row[j-1].Width, row[j].X, 1e-6, "gap or overlap at tick %d", i)
				}
				assert.LessOrEqual(t, row[0].X, 1e-6, "left edge uncovered at tick %d", i)
				assert.GreaterOrEqual(t, row[2].X+row[2].Width, testViewport-1e-6, "right edge uncovered at tick %d", i)
				for _, b := range row {
					assert.True(t, tiles[b])
				}
			}
		})
	}
}
