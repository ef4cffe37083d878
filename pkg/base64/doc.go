// Package base64 implements the base64 family of binary-to-text encodings:
// RFC 4648 standard, RFC 4648 base64url and RFC 2045 MIME.
//
// Encoding is driven by a Config value selecting the alphabet, the padding,
// and an optional line length together with the newline sequence used for wrapping.
// Decoding is permissive: characters of both alphabets are accepted in the
// same input, line breaks are skipped and padding marks the end of the data.
//
//	s := base64.Encode([]byte("foobar"), base64.MIMEConfig)
//	data, err := base64.DecodeString(s)
//
// All functions operate on complete in-memory buffers and are safe for
// concurrent use.
//
// http://www.rfc-editor.org/rfc/rfc4648
// http://www.rfc-editor.org/rfc/rfc2045#section-6.8
package base64
