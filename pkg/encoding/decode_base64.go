package encoding

import (
	"github.com/open-component-model/base64/pkg/base64"
)

func init() {
	// the decoder accepts both alphabets, so one instance serves every variant
	RegisterDecoder(Base64, base64Decoder{})
	RegisterDecoder(Base64URL, base64Decoder{})
	RegisterDecoder(Base64MIME, base64Decoder{})
}

type base64Decoder struct{}

func (d base64Decoder) Decode(data []byte) ([]byte, error) {
	return base64.Decode(data)
}
