package chainnum

func (u U256) MarshalText() ([]byte, error) {
	return u.AppendFormat(nil, FormatDefault), nil
}

// UnmarshalText accepts anything ParseU256 does. On failure u is left
// unchanged.
func (u *U256) UnmarshalText(bts []byte) (err error) {
	v, err := ParseU256Bytes(bts)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// MarshalJSON writes u as a quoted quantity, "0x..." in minimal hex.
func (u U256) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, u.FormattedLen(FormatDefault)+2)
	b = append(b, '"')
	b = u.AppendFormat(b, FormatDefault)
	return append(b, '"'), nil
}

// UnmarshalJSON accepts a quoted quantity or decimal string, or a bare JSON
// number.
func (u *U256) UnmarshalJSON(bts []byte) (err error) {
	return u.UnmarshalText(bts)
}

func (u U256) MarshalBinary() ([]byte, error) {
	b := u.Bytes32()
	return b[:], nil
}

func (u *U256) UnmarshalBinary(data []byte) error {
	v, err := U256FromBigEndian(data)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (i I256) MarshalText() ([]byte, error) {
	return i.AppendFormat(nil, FormatDefault), nil
}

func (i *I256) UnmarshalText(bts []byte) (err error) {
	v, err := ParseI256Bytes(bts)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalJSON writes i as a quoted decimal string.
func (i I256) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, i.FormattedLen(FormatDefault)+2)
	b = append(b, '"')
	b = i.AppendFormat(b, FormatDefault)
	return append(b, '"'), nil
}

func (i *I256) UnmarshalJSON(bts []byte) (err error) {
	return i.UnmarshalText(bts)
}

func (i I256) MarshalBinary() ([]byte, error) {
	b := i.Bytes32()
	return b[:], nil
}

func (i *I256) UnmarshalBinary(data []byte) error {
	v, err := I256FromBigEndian(data)
	if err != nil {
		return err
	}
	*i = v
	return nil
}
