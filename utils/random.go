package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateSecureRandomString verilen alfabeden crypto/rand ile n karakterlik dizi üretir.
func GenerateSecureRandomString(n int, alphabet string) (string, error) {
	if n <= 0 {
		return "", errors.New("uzunluk pozitif olmalı")
	}
	if alphabet == "" {
		return "", errors.New("alfabe boş olamaz")
	}
	max := big.NewInt(int64(len(alphabet)))
	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = alphabet[idx.Int64()]
	}
	return string(buf), nil
}

// RandomBase36 küçük harf base-36 (0-9a-z) rastgele dizi üretir.
func RandomBase36(n int) (string, error) {
	return GenerateSecureRandomString(n, base36Alphabet)
}
