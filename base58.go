package chainnum

// base58Alphabet is the Bitcoin alphabet, which omits 0, O, I and l.
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var base58Digits = func() (t [256]int8) {
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(base58Alphabet); i++ {
		t[base58Alphabet[i]] = int8(i)
	}
	return t
}()

// Base58EncodedLen returns the maximum length of the Base58 encoding of n
// bytes. 138/100 is just over log(256)/log(58).
func Base58EncodedLen(n int) int {
	return n*138/100 + 1
}

// EncodeBase58 returns the Base58 encoding of src.
func EncodeBase58(src []byte) string {
	var buf [Base58MaxEncodedLen64]byte
	return string(AppendBase58(buf[:0], src))
}

// Base58MaxEncodedLen64 is Base58EncodedLen(64), enough for any 32 or 64 byte
// payload.
const Base58MaxEncodedLen64 = 64*138/100 + 1

// AppendBase58 appends the Base58 encoding of src to dst. Each leading zero
// byte of src becomes one leading '1'; the rest of src is treated as a
// big-endian number and written in base 58.
func AppendBase58(dst, src []byte) []byte {
	zeros := 0
	for zeros < len(src) && src[zeros] == 0 {
		zeros++
		dst = append(dst, base58Alphabet[0])
	}

	var scratch [64]byte
	var num []byte
	if len(src) <= len(scratch) {
		num = scratch[:len(src)]
	} else {
		num = make([]byte, len(src))
	}
	copy(num, src)

	// Divide num by 58 in place until it is exhausted, collecting remainders
	// least significant first, then reverse them into place.
	start := len(dst)
	for pos := zeros; pos < len(num); {
		var rem uint
		for i := pos; i < len(num); i++ {
			acc := rem<<8 | uint(num[i])
			num[i] = byte(acc / 58)
			rem = acc % 58
		}
		dst = append(dst, base58Alphabet[rem])
		for pos < len(num) && num[pos] == 0 {
			pos++
		}
	}
	digits := dst[start:]
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return dst
}

// DecodeBase58 decodes s into dst, which must be exactly the size of the
// expected payload (32 bytes for a hash or Solana address, 64 for a
// signature). The decode fails if s contains a character outside the
// alphabet, if its value does not fit in dst, or if the number of leading '1'
// characters is not exactly the number of leading zero bytes in dst. That last
// rule rejects both truncated payloads and extra padding '1's, so every
// payload has one accepted encoding.
//
// On failure dst is zeroed.
func DecodeBase58(dst []byte, s string) error {
	if err := decodeBase58(dst, s); err != nil {
		clear(dst)
		return parseError("DecodeBase58", s, err)
	}
	return nil
}

func decodeBase58(dst []byte, s string) error {
	if len(dst) == 0 || len(s) == 0 || len(s) > Base58EncodedLen(len(dst)) {
		return ErrInvalidLength
	}
	clear(dst)

	for i := 0; i < len(s); i++ {
		d := base58Digits[s[i]]
		if d < 0 {
			return ErrInvalidDigit
		}
		carry := uint(d)
		for j := len(dst) - 1; j >= 0; j-- {
			carry += uint(dst[j]) * 58
			dst[j] = byte(carry)
			carry >>= 8
		}
		if carry != 0 {
			return ErrOverflow
		}
	}

	ones := 0
	for ones < len(s) && s[ones] == base58Alphabet[0] {
		ones++
	}
	zeros := 0
	for zeros < len(dst) && dst[zeros] == 0 {
		zeros++
	}
	if ones != zeros {
		return ErrNonCanonical
	}
	return nil
}
