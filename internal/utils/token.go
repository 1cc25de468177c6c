package utils

import "crypto/rand"

// 64 URL-safe characters, 10 per token. 64^10 possible tokens keeps collision
// probability negligible while staying short enough for a share link.
const (
	shareIDAlphabet = "useandom-26T198340PX75pxJACKVERYMINDBUSHWOLF_GQZbfghjklqvwyzrict"
	shareIDLength   = 10
)

// GenerateShareID returns a fixed-length random token for a project's public
// submission form. With a 64-character alphabet each byte of randomness maps
// to exactly one character, so the output is uniform.
func GenerateShareID() (string, error) {
	buf := make([]byte, shareIDLength)

	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	token := make([]byte, shareIDLength)
	for i, b := range buf {
		token[i] = shareIDAlphabet[int(b)&63]
	}

	return string(token), nil
}
