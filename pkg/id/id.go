package id

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Generator hands out monotonic ULIDs. IDs generated within the same
// millisecond stay lexicographically increasing.
type Generator struct {
	mu   sync.Mutex
	now  func() time.Time
	mono io.Reader
}

// NewGenerator seeds a PRNG from crypto/rand. A nil clock means time.Now.
func NewGenerator(now func() time.Time) *Generator {
	var seed int64
	_ = binary.Read(cryptoRand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if now == nil {
		now = time.Now
	}
	return &Generator{
		now:  now,
		mono: ulid.Monotonic(rand.New(rand.NewSource(seed)), 0),
	}
}

// Next returns a new ID and the instant it encodes.
func (g *Generator) Next() (string, time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()

	t := g.now().UTC()
	id, err := ulid.New(ulid.Timestamp(t), g.mono)
	if err != nil {
		// Only when the clock goes backwards within the monotonic window or
		// entropy runs dry.
		panic(err)
	}
	return id.String(), ulid.Time(id.Time())
}

var std = NewGenerator(nil)

// New returns a ULID string from the process-wide generator.
func New() string {
	s, _ := std.Next()
	return s
}

// Time extracts the creation time encoded in a ULID string.
func Time(s string) (time.Time, error) {
	id, err := ulid.ParseStrict(s)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(id.Time()).UTC(), nil
}
