/*
Package chainnum provides fixed-width numeric and identifier types for
blockchain protocols: uint256 (U256), int256 (I256), 32-byte hashes (Hash32),
EVM and Solana addresses (Address) and 4-byte function selectors (Selector).

All of them are value types; all operations return new values.

Simple example:

	u1 := U256From64(math.MaxUint64)
	u2 := U256From64(math.MaxUint64)
	fmt.Println(u1.Mul(u2).Text(FormatDecimal))
	// Output: 340282366920938463426481119284349108225

Arithmetic comes in two flavours. Add, Sub, Mul, Lsh and friends wrap modulo
2^256 and never fail. AddChecked, SubChecked and MulChecked return
ErrOverflow instead of wrapping:

	max := MaxU256
	_, err := max.AddChecked(U256From64(1))
	// errors.Is(err, ErrOverflow) == true

U256 and I256 can be created from a variety of sources:

	U256FromRaw(hi, hm, lm, lo uint64) U256
	U256FromLimbs(l [4]uint64) U256
	U256From64(v uint64) U256
	U256FromBigInt(v *big.Int) (out U256, accurate bool)
	U256FromFloat64(f float64) (out U256, inRange bool)
	U256FromBytes32(b [32]byte) U256
	U256FromMinimal(b []byte) (U256, error)
	U256FromUint256(v *uint256.Int) U256
	ParseU256(s string) (U256, error)
	ParseQuantity(s string) (U256, error)
	DecodeABIWordU256(b []byte) (U256, error)

Text forms are chosen with a Format, resolved once from a short token by
ParseFormat ("d", "x", "0x", "0X64" and so on) and passed to Text,
AppendFormat or FormatTo. FormatTo never writes a partial result.

All parse functions trim ASCII whitespace and one pair of surrounding double
quotes, and return a *ParseError wrapping one of the Err* sentinels. On
failure the returned value is always the zero value.

The value types support the following formatting and marshalling interfaces:

  - fmt.Formatter (U256, I256)
  - fmt.Stringer
  - json.Marshaler
  - json.Unmarshaler
  - encoding.TextMarshaler
  - encoding.TextUnmarshaler
  - encoding.BinaryMarshaler
  - encoding.BinaryUnmarshaler
*/
package chainnum
