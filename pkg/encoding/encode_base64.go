package encoding

import (
	"github.com/open-component-model/base64/pkg/base64"
)

func init() {
	RegisterEncoder(Base64, NewBase64Encoder(base64.StandardConfig))
	RegisterEncoder(Base64URL, NewBase64Encoder(base64.URLSafeConfig))
	RegisterEncoder(Base64MIME, NewBase64Encoder(base64.MIMEConfig))
}

// Base64Encoder encodes with a fixed configuration.
type Base64Encoder struct {
	config base64.Config
}

func NewBase64Encoder(cfg base64.Config) *Base64Encoder {
	return &Base64Encoder{config: cfg}
}

func (e *Base64Encoder) Config() base64.Config {
	return e.config
}

func (e *Base64Encoder) Encode(data []byte) []byte {
	return base64.AppendEncode(nil, data, e.config)
}
