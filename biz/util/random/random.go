package random

import (
	cryptorand "crypto/rand"

	"github.com/bytedance/gopkg/lang/fastrand"
)

const (
	SaltLength = 10

	alnum = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// saltAlphabet covers ASCII 65-91 and 93-126, skipping 96 (backtick).
var saltAlphabet = buildSaltAlphabet()

func buildSaltAlphabet() []byte {
	var chars []byte
	for c := byte(65); c < 92; c++ {
		chars = append(chars, c)
	}
	for c := byte(93); c < 127; c++ {
		if c != 96 {
			chars = append(chars, c)
		}
	}
	return chars
}

// RandStr returns a random alphanumeric string of length n. Not
// suitable for secrets, only for log ids and test fixtures.
func RandStr(n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alnum[fastrand.Intn(len(alnum))]
	}
	return string(buf)
}

// Salt returns a fresh credential salt: SaltLength characters drawn
// from saltAlphabet. Each random byte is scaled onto the alphabet
// index range instead of reduced modulo its size, so no symbol is
// favored by the reduction. A failing entropy source is not a
// recoverable condition here, so read errors panic.
func Salt() string {
	raw := make([]byte, SaltLength)
	if _, err := cryptorand.Read(raw); err != nil {
		panic(err)
	}

	lastIndex := len(saltAlphabet) - 1
	buf := make([]byte, SaltLength)
	for i, b := range raw {
		buf[i] = saltAlphabet[int(b)*lastIndex/255]
	}
	return string(buf)
}
