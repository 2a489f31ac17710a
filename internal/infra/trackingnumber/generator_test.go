package trackingnumber

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var trackingNumberPattern = regexp.MustCompile(`^BOX-[0-9A-Z]+-[0-9A-Z]{6}$`)

func TestGenerator_Format(t *testing.T) {
	gen := NewGenerator()

	for range 50 {
		assert.Regexp(t, trackingNumberPattern, gen.Generate())
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	gen := &generator{
		now:    func() time.Time { return time.UnixMilli(36 * 36) },
		random: func() uint64 { return 35 },
	}

	assert.Equal(t, "BOX-100-00000Z", gen.Generate())
}

func TestGenerator_Distinct(t *testing.T) {
	gen := NewGenerator()
	seen := make(map[string]struct{})

	for range 1000 {
		tn := gen.Generate()
		_, dup := seen[tn]
		assert.False(t, dup, tn)
		seen[tn] = struct{}{}
	}
}
