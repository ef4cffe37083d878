package base64

// DecodeString returns the bytes represented by the base64 string s.
func DecodeString(s string) ([]byte, error) {
	return Decode([]byte(s))
}

// Decode returns the bytes represented by the base64 text in src.
//
// Characters of the standard and the URL-safe alphabet may be mixed. CR and
// LF are skipped anywhere. The first '=' ends the data; only '=', CR and LF
// may follow it. On failure no partial result is returned and the error is
// either an *InvalidByteError or ErrInvalidLength.
func Decode(src []byte) ([]byte, error) {
	out := make([]byte, 0, len(src))

	var acc uint32
	groups := 0

	i := 0
loop:
	for ; i < len(src); i++ {
		v := decodeMap[src[i]]
		switch v {
		case ignore:
			continue
		case pad:
			break loop
		case invalid:
			return nil, &InvalidByteError{Byte: src[i], Offset: i}
		}
		acc = acc<<6 | uint32(v)
		groups++
		if groups == 4 {
			groups = 0
			out = append(out, byte(acc>>16), byte(acc>>8), byte(acc))
		}
	}

	for ; i < len(src); i++ {
		switch src[i] {
		case padChar, '\r', '\n':
		default:
			return nil, &InvalidByteError{Byte: src[i], Offset: i}
		}
	}

	switch groups {
	case 1:
		return nil, ErrInvalidLength
	case 2:
		// 12 bits, the low 4 are padding
		out = append(out, byte(acc>>4))
	case 3:
		// 18 bits, the low 2 are padding
		out = append(out, byte(acc>>10), byte(acc>>2))
	}
	return out, nil
}
