// Package token builds the long, shareable form of device authorization
// tokens: the server-issued random token bound to the user's identity
// and public key by a memory-hard hash, rendered in Base58 for reliable
// copy/paste.
package token

import "strings"

// alphabet is the Flickr Base58 alphabet. It omits the visually
// ambiguous characters 0, O, I, and l; device firmware decodes tokens
// with the same alphabet, so it must never change.
const alphabet = "123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ"

// EncodeBase58 renders buf in the Flickr Base58 alphabet. The buffer is
// treated as one big-endian unsigned integer and repeatedly divided by
// 58; each leading zero byte becomes one leading '1' character, outside
// the arithmetic. An empty or all-zero buffer encodes to "1".
func EncodeBase58(buf []byte) string {
	zeros := 0
	for zeros < len(buf) && buf[zeros] == 0 {
		zeros++
	}

	// An empty or all-zero buffer collapses to a single zero digit, not
	// one digit per byte.
	if zeros == len(buf) {
		return string(alphabet[0])
	}

	// Long division on a working copy; each pass extracts one digit.
	digits := make([]byte, 0, len(buf)*138/100+1)
	num := make([]byte, len(buf)-zeros)
	copy(num, buf[zeros:])

	for len(num) > 0 {
		rem := 0
		next := num[:0]
		for _, b := range num {
			cur := rem*256 + int(b)
			q := cur / 58
			rem = cur % 58
			if len(next) > 0 || q != 0 {
				next = append(next, byte(q))
			}
		}
		digits = append(digits, alphabet[rem])
		num = next
	}

	var sb strings.Builder
	sb.Grow(zeros + len(digits))
	for i := 0; i < zeros; i++ {
		sb.WriteByte(alphabet[0])
	}
	for i := len(digits) - 1; i >= 0; i-- {
		sb.WriteByte(digits[i])
	}

	return sb.String()
}
