package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tasosnikitakis/sorcery-game/config"
)

func TestLoadAnimationTable(t *testing.T) {
	table, err := LoadAnimationTable()
	assert.NoError(t, err)
	assert.Len(t, table, 3)

	for _, id := range []config.AnimationID{config.WalkLeft, config.WalkRight, config.IdleFront} {
		def, ok := table[id]
		if !ok {
			t.Fatalf("clip %s missing from table", id)
		}
		assert.Equal(t, 4, def.Count, "clip %s", id)
		assert.Equal(t, 24, def.W, "clip %s", id)
		assert.Equal(t, 24, def.H, "clip %s", id)
		assert.Equal(t, 1, def.Spacing, "clip %s", id)
	}

	// The three strips sit side by side on the same sheet row.
	assert.Equal(t, 0, table[config.WalkLeft].X)
	assert.Equal(t, 100, table[config.IdleFront].X)
	assert.Equal(t, 200, table[config.WalkRight].X)
}
