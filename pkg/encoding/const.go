package encoding

const (
	// Supported Encodings
	Raw        = "raw"
	Base64     = "base64"
	Base64URL  = "base64url"
	Base64MIME = "base64mime"
)
