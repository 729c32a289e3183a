package chainnum

import (
	"github.com/shabbyrobe/go-chainnum/keccak"
)

// Keccak256 returns the Keccak-256 digest of the concatenation of data.
func Keccak256(data ...[]byte) Hash32 {
	if len(data) == 1 {
		return Hash32FromBytes(keccak.Sum256(data[0]))
	}
	var h keccak.Hasher
	for _, d := range data {
		h.Write(d)
	}
	return Hash32FromBytes(h.Sum256())
}

// ChecksumHex returns the EIP-55 mixed-case form of an EVM address, with the
// 0x prefix.
func ChecksumHex(addr [20]byte) string {
	var buf [42]byte
	return string(appendChecksumHex(buf[:0], &addr))
}

// appendChecksumHex hashes the lowercase hex digits of addr and upper-cases
// each letter whose corresponding hash nibble is 8 or more.
func appendChecksumHex(dst []byte, addr *[20]byte) []byte {
	var lower [40]byte
	appendHexBytes(lower[:0], addr[:], lowerHex)
	sum := keccak.Sum256(lower[:])

	dst = append(dst, '0', 'x')
	for i, c := range lower {
		if c >= 'a' {
			nib := sum[i/2]
			if i%2 == 0 {
				nib >>= 4
			}
			if nib&0xF >= 8 {
				c -= 'a' - 'A'
			}
		}
		dst = append(dst, c)
	}
	return dst
}
