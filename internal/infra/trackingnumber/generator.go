// Package trackingnumber issues public shipment tracking numbers.
package trackingnumber

import (
	"encoding/binary"
	"strconv"
	"strings"
	"time"

	"boxtrack/internal/domain/service"

	"github.com/google/uuid"
)

const suffixLength = 6

// generator builds BOX-<base36 unix millis>-<6 random base36 characters>.
type generator struct {
	now    func() time.Time
	random func() uint64
}

// NewGenerator returns the default tracking number generator.
func NewGenerator() service.TrackingNumberGenerator {
	return &generator{now: time.Now, random: randomUint64}
}

func (g *generator) Generate() string {
	millis := strconv.FormatInt(g.now().UnixMilli(), 36)

	suffix := strconv.FormatUint(g.random(), 36)
	if len(suffix) < suffixLength {
		suffix = strings.Repeat("0", suffixLength-len(suffix)) + suffix
	}
	suffix = suffix[len(suffix)-suffixLength:]

	return strings.ToUpper(service.TrackingNumberPrefix + millis + "-" + suffix)
}

// randomUint64 draws from a version 4 UUID, which reads crypto/rand.
func randomUint64() uint64 {
	id := uuid.New()

	return binary.BigEndian.Uint64(id[8:])
}
