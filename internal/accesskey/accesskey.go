// Package accesskey issues the human-typable secrets candidates use to enter
// proctored sessions. Keys are independent of the HR login system.
package accesskey

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// Alphabet excludes visually ambiguous characters: I, O, 0, 1.
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const groupLen = 4

// Issue returns a fresh XXXX-XXXX key. Both groups are drawn independently
// and uniformly with replacement from Alphabet.
func Issue() string {
	return group() + "-" + group()
}

// IssueUnique retries until exists reports the key as unused. The ~32^8
// keyspace makes collisions improbable, but the store check turns that from
// a probabilistic property into a guarantee for authentication lookups.
func IssueUnique(exists func(key string) bool) string {
	for {
		key := Issue()
		if !exists(key) {
			return key
		}
	}
}

// Normalize maps user-typed input to the canonical form used for lookups.
func Normalize(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}

func group() string {
	b := make([]byte, groupLen)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(Alphabet))))
		if err != nil {
			panic(fmt.Sprintf("accesskey: crypto/rand unavailable: %v", err))
		}
		b[i] = Alphabet[n.Int64()]
	}
	return string(b)
}
