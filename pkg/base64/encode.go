package base64

import "slices"

// EncodedLen returns the exact length of the encoding of n bytes under cfg,
// including padding and line separators.
func EncodedLen(n int, cfg Config) int {
	if n == 0 {
		return 0
	}
	groups, rem := n/3, n%3
	l := groups * 4
	switch {
	case rem != 0 && cfg.Pad:
		l += 4
	case rem != 0:
		l += rem + 1
	}
	if cfg.LineLength > 0 {
		// a separator goes in once a line holds LineLength or more characters,
		// so every line carries whole groups of four
		perLine := (cfg.LineLength + 3) / 4
		breaks := 0
		if groups > 0 {
			breaks = (groups - 1) / perLine
			if rem != 0 && groups%perLine == 0 {
				breaks++
			}
		}
		l += breaks * len(cfg.Newline.sequence())
	}
	return l
}

// Encode returns the base64 encoding of src formatted according to cfg.
// Empty input always encodes to the empty string.
func Encode(src []byte, cfg Config) string {
	if len(src) == 0 {
		return ""
	}
	return string(AppendEncode(make([]byte, 0, EncodedLen(len(src), cfg)), src, cfg))
}

// AppendEncode appends the base64 encoding of src to dst and returns the
// extended buffer.
func AppendEncode(dst, src []byte, cfg Config) []byte {
	if len(src) == 0 {
		return dst
	}
	dst = slices.Grow(dst, EncodedLen(len(src), cfg))

	enc := cfg.CharSet.alphabet()
	newline := cfg.Newline.sequence()

	// col counts characters emitted since the last separator
	col := 0
	wrap := func() {
		if cfg.LineLength > 0 && col >= cfg.LineLength {
			dst = append(dst, newline...)
			col = 0
		}
	}

	n := len(src) / 3 * 3
	for i := 0; i < n; i += 3 {
		wrap()
		v := uint32(src[i])<<16 | uint32(src[i+1])<<8 | uint32(src[i+2])
		dst = append(dst,
			enc[v>>18&0x3F],
			enc[v>>12&0x3F],
			enc[v>>6&0x3F],
			enc[v&0x3F],
		)
		col += 4
	}

	rem := len(src) - n
	if rem == 0 {
		return dst
	}

	wrap()
	v := uint32(src[n]) << 16
	if rem == 2 {
		v |= uint32(src[n+1]) << 8
	}
	dst = append(dst, enc[v>>18&0x3F], enc[v>>12&0x3F])
	switch rem {
	case 1:
		if cfg.Pad {
			dst = append(dst, padChar, padChar)
		}
	case 2:
		dst = append(dst, enc[v>>6&0x3F])
		if cfg.Pad {
			dst = append(dst, padChar)
		}
	}
	return dst
}
