package accesskey

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keyPattern = regexp.MustCompile(`^[ABCDEFGHJKLMNPQRSTUVWXYZ23456789]{4}-[ABCDEFGHJKLMNPQRSTUVWXYZ23456789]{4}$`)

func TestIssueShape(t *testing.T) {
	for i := 0; i < 1000; i++ {
		key := Issue()
		require.Regexp(t, keyPattern, key)
	}
}

func TestIssueNeverEmitsAmbiguousCharacters(t *testing.T) {
	for i := 0; i < 1000; i++ {
		key := Issue()
		for _, c := range []string{"I", "O", "0", "1"} {
			assert.NotContains(t, key, c)
		}
	}
}

func TestIssueUniqueRetriesOnCollision(t *testing.T) {
	var seen []string
	rejections := 3
	key := IssueUnique(func(k string) bool {
		seen = append(seen, k)
		rejections--
		return rejections >= 0
	})
	require.Len(t, seen, 4)
	assert.Equal(t, seen[len(seen)-1], key)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "AB2C-XY9Z", Normalize("  ab2c-xy9z \n"))
}

func TestAlphabetSize(t *testing.T) {
	assert.Len(t, Alphabet, 32)
	// no duplicate symbols
	for i, c := range Alphabet {
		assert.Equal(t, i, strings.IndexRune(Alphabet, c))
	}
}
