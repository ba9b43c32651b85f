// Package random generates random alphanumeric strings from crypto/rand.
package random

import (
	"crypto/rand"
	"math/big"
)

var alphabet []rune

func init() {
	for c := '0'; c <= '9'; c++ {
		alphabet = append(alphabet, c)
	}
	for c := 'a'; c <= 'z'; c++ {
		alphabet = append(alphabet, c)
	}
	for c := 'A'; c <= 'Z'; c++ {
		alphabet = append(alphabet, c)
	}
}

// Seq returns a random alphanumeric string of length n.
func Seq(n int) string {
	runes := make([]rune, n)
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			panic("crypto/rand failed: " + err.Error())
		}
		runes[i] = alphabet[idx.Int64()]
	}
	return string(runes)
}
