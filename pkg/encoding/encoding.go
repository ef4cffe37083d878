package encoding

import (
	"fmt"
	"sort"
	"strings"
)

type Decoder interface {
	Decode(data []byte) ([]byte, error)
}

type Encoder interface {
	Encode(data []byte) []byte
}

var decoders = map[string]Decoder{}
var encoders = map[string]Encoder{}

// RegisterDecoder is meant to be called from init functions only.
func RegisterDecoder(name string, d Decoder) {
	decoders[name] = d
}

func SupportedDecoders() []string {
	return sortedKeys(decoders)
}

func GetDecoder(name string) (Decoder, error) {
	decoder := decoders[name]
	if decoder == nil {
		return nil, fmt.Errorf("unknown encoding %q (supported %s)", name, strings.Join(SupportedDecoders(), ","))
	}
	return decoder, nil
}

// RegisterEncoder is meant to be called from init functions only.
func RegisterEncoder(name string, e Encoder) {
	encoders[name] = e
}

func SupportedEncoders() []string {
	return sortedKeys(encoders)
}

func GetEncoder(name string) (Encoder, error) {
	encoder := encoders[name]
	if encoder == nil {
		return nil, fmt.Errorf("unknown encoding %q (supported %s)", name, strings.Join(SupportedEncoders(), ","))
	}
	return encoder, nil
}

func sortedKeys[V any](m map[string]V) []string {
	s := []string{}
	for k := range m {
		s = append(s, k)
	}
	sort.Strings(s)
	return s
}
