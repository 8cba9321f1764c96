package id

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorMonotonic(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	g := NewGenerator(func() time.Time { return fixed })

	var ids []string
	for i := 0; i < 50; i++ {
		s, at := g.Next()
		assert.True(t, at.Equal(fixed))
		ids = append(ids, s)
	}
	assert.True(t, sort.StringsAreSorted(ids))
	assert.Len(t, ids[0], 26)
}

func TestTimeRoundTrip(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 6, 1, 12, 0, 0, 123_000_000, time.UTC)
	g := NewGenerator(func() time.Time { return at })
	s, _ := g.Next()

	got, err := Time(s)
	require.NoError(t, err)
	assert.True(t, got.Equal(at))

	_, err = Time("not-a-ulid")
	assert.Error(t, err)
}

func TestNewIsUnique(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		s := New()
		assert.False(t, seen[s])
		seen[s] = true
	}
}
