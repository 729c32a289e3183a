package chainnum

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1

	signBit = 0x8000000000000000
)

var (
	MaxU256 = U256{hi: maxUint64, hm: maxUint64, lm: maxUint64, lo: maxUint64}
	MaxI256 = I256{hi: 0x7FFFFFFFFFFFFFFF, hm: maxUint64, lm: maxUint64, lo: maxUint64}
	MinI256 = I256{hi: signBit}
	MaxU128 = U128{hi: maxUint64, lo: maxUint64}

	zeroU256     U256
	zeroI256     I256
	minusOneI256 = I256{hi: maxUint64, hm: maxUint64, lm: maxUint64, lo: maxUint64}

	// minI256Magnitude is 1 << 255, the magnitude of MinI256.
	minI256Magnitude = U256{hi: signBit}
)
