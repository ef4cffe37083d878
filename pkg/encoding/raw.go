package encoding

func init() {
	RegisterDecoder(Raw, rawDecoder{})
	RegisterEncoder(Raw, rawEncoder{})
}

type rawDecoder struct{}

func (d rawDecoder) Decode(data []byte) ([]byte, error) {
	return data, nil
}

type rawEncoder struct{}

func (e rawEncoder) Encode(data []byte) []byte {
	return data
}
