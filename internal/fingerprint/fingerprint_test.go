package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprintKnownVectors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		// h("abc") = (0*31+97)*31+98 = 3105; 3105*31+99 = 96354
		{name: "short ascii", in: "abc", want: "v1_96354_3_abc_abc"},
		{name: "empty", in: "", want: "v1_0_0__"},
		{name: "whitespace only", in: " \t\n ", want: "v1_0_0__"},
		// single char: hash is the char code itself
		{name: "single char", in: "a", want: "v1_97_1_a_a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fingerprint(tt.in))
		})
	}
}

func TestFingerprintDeterminism(t *testing.T) {
	text := "Experienced backend engineer with 7 years of Go and Postgres."
	require.Equal(t, Fingerprint(text), Fingerprint(text))
}

func TestFingerprintWhitespaceInsensitive(t *testing.T) {
	base := "Experienced backend engineer with 7 years of Go and Postgres."
	perturbed := "  Experienced\tbackend   engineer\nwith 7 years of\r\nGo and Postgres.  "
	upper := "EXPERIENCED BACKEND ENGINEER WITH 7 YEARS OF GO AND POSTGRES."

	assert.Equal(t, Fingerprint(base), Fingerprint(perturbed))
	assert.Equal(t, Fingerprint(base), Fingerprint(upper))
}

func TestFingerprintDistinguishesContent(t *testing.T) {
	assert.NotEqual(t, Fingerprint("backend engineer"), Fingerprint("frontend engineer"))
}

func TestFingerprintSliceBounds(t *testing.T) {
	// 25 code units: head and tail are disjoint
	fp := Fingerprint("abcdefghijklmnopqrstuvwxy")
	assert.Contains(t, fp, "_25_abcdefghij_pqrstuvwxy")

	// shorter than 20: head and tail overlap
	fp = Fingerprint("abcdefghijkl")
	assert.Contains(t, fp, "_12_abcdefghij_cdefghijkl")
}

func TestSeedMatchesHash(t *testing.T) {
	// Seed of "abc" uses the same rolling hash as the fingerprint.
	assert.Equal(t, int64(96354), Seed("abc"))
	assert.GreaterOrEqual(t, Seed("anything at all"), int64(0))
}
