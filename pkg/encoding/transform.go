package encoding

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/open-component-model/base64/pkg/base64"
	"github.com/open-component-model/base64/pkg/log"
)

// Decode decodes data with the decoder registered under name.
// A nil logger disables logging.
func Decode(name string, data []byte, logger *zap.Logger) ([]byte, error) {
	logger = log.OrNop(logger).With(zap.String(log.LogKeyEncoding, name))

	decoder, err := GetDecoder(name)
	if err != nil {
		logger.Error("cannot decode", zap.Error(err))
		return nil, err
	}

	out, err := decoder.Decode(data)
	if err != nil {
		fields := []zap.Field{zap.Int(log.LogKeyInputSize, len(data)), zap.Error(err)}
		var byteErr *base64.InvalidByteError
		if errors.As(err, &byteErr) {
			fields = append(fields, zap.Uint8(log.LogKeyByte, byteErr.Byte), zap.Int(log.LogKeyPosition, byteErr.Offset))
		}
		logger.Error("invalid input", fields...)
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	logger.Debug("decoded", zap.Int(log.LogKeyInputSize, len(data)), zap.Int(log.LogKeyOutputSize, len(out)))
	return out, nil
}

// Encode encodes data with the encoder registered under name.
// A nil logger disables logging.
func Encode(name string, data []byte, logger *zap.Logger) ([]byte, error) {
	logger = log.OrNop(logger).With(zap.String(log.LogKeyEncoding, name))

	encoder, err := GetEncoder(name)
	if err != nil {
		logger.Error("cannot encode", zap.Error(err))
		return nil, err
	}

	out := encoder.Encode(data)
	logger.Debug("encoded", zap.Int(log.LogKeyInputSize, len(data)), zap.Int(log.LogKeyOutputSize, len(out)))
	return out, nil
}
