package base64

const (
	// StandardAlphabet is the RFC 4648 alphabet.
	StandardAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	// URLSafeAlphabet is the RFC 4648 section 5 alphabet.
	URLSafeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

	padChar = '='
)

// decode table sentinels, all above the 6-bit value range
const (
	invalid byte = 0xFF
	ignore  byte = 0xFE
	pad     byte = 0xFD
)

// decodeMap maps every input byte to its 6-bit value or a sentinel.
// Both alphabets are merged, so '+' and '-' are 62, '/' and '_' are 63.
var decodeMap = func() [256]byte {
	var m [256]byte
	for i := range m {
		m[i] = invalid
	}
	for i := 0; i < len(StandardAlphabet); i++ {
		m[StandardAlphabet[i]] = byte(i)
		m[URLSafeAlphabet[i]] = byte(i)
	}
	m['\r'] = ignore
	m['\n'] = ignore
	m[padChar] = pad
	return m
}()
