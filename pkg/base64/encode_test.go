package base64

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeStandard(t *testing.T) {
	tests := []struct {
		Input    string
		Expected string
	}{
		{"", ""},
		{"f", "Zg=="},
		{"fo", "Zm8="},
		{"foo", "Zm9v"},
		{"foob", "Zm9vYg=="},
		{"fooba", "Zm9vYmE="},
		{"foobar", "Zm9vYmFy"},
	}

	for _, test := range tests {
		t.Run(test.Input, func(t *testing.T) {
			require.Equal(t, test.Expected, Encode([]byte(test.Input), StandardConfig))
		})
	}
}

func TestEncodeEmpty(t *testing.T) {
	for _, cfg := range []Config{
		StandardConfig,
		URLSafeConfig,
		MIMEConfig,
		{CharSet: URLSafe, Newline: LF, Pad: true, LineLength: 1},
	} {
		require.Equal(t, "", Encode(nil, cfg))
		require.Equal(t, "", Encode([]byte{}, cfg))
		require.Equal(t, 0, EncodedLen(0, cfg))
	}
}

func TestEncodeWithoutPadding(t *testing.T) {
	cfg := Config{CharSet: Standard, Pad: false}

	require.Equal(t, "Zg", Encode([]byte("f"), cfg))
	require.Equal(t, "Zm8", Encode([]byte("fo"), cfg))
	require.Equal(t, "Zm9v", Encode([]byte("foo"), cfg))
}

func TestEncodeURLSafe(t *testing.T) {
	require.Equal(t, "-_8", Encode([]byte{251, 255}, URLSafeConfig))
	require.Equal(t, "+/8=", Encode([]byte{251, 255}, StandardConfig))
}

func TestEncodeLineBreaks(t *testing.T) {
	input := make([]byte, 1000)
	for i := range input {
		input[i] = 8
	}

	t.Run("no wrapping", func(t *testing.T) {
		require.NotContains(t, Encode(input, StandardConfig), "\n")
		require.NotContains(t, Encode(input, Config{CharSet: Standard, Newline: LF, Pad: true}), "\n")
	})

	t.Run("crlf", func(t *testing.T) {
		cfg := StandardConfig
		cfg.LineLength = 4
		require.Equal(t, "Zm9v\r\nYmFy", Encode([]byte("foobar"), cfg))
	})

	t.Run("lf", func(t *testing.T) {
		cfg := StandardConfig
		cfg.LineLength = 4
		cfg.Newline = LF
		require.Equal(t, "Zm9v\nYmFy", Encode([]byte("foobar"), cfg))
	})

	t.Run("no trailing separator", func(t *testing.T) {
		cfg := StandardConfig
		cfg.LineLength = 8
		require.Equal(t, "Zm9vYmFy", Encode([]byte("foobar"), cfg))
	})

	t.Run("length not a multiple of four", func(t *testing.T) {
		cfg := Config{CharSet: Standard, Newline: LF, Pad: true, LineLength: 5}
		require.Equal(t, "Zm9vYmFy\nZm9vYmFy", Encode([]byte("foobarfoobar"), cfg))
	})

	t.Run("mime", func(t *testing.T) {
		encoded := Encode(input[:200], MIMEConfig)
		lines := strings.Split(encoded, "\r\n")
		require.Len(t, lines, 4)
		for _, l := range lines[:3] {
			require.Len(t, l, 76)
		}
		require.Len(t, lines[3], 40)
	})
}

// The tail group is wrapped like any other group once the line is full.
func TestEncodeWrapOnPaddingBoundary(t *testing.T) {
	tests := []struct {
		Name     string
		Input    string
		Config   Config
		Expected string
	}{
		{
			Name:     "one byte tail padded",
			Input:    "foob",
			Config:   Config{CharSet: Standard, Newline: CRLF, Pad: true, LineLength: 4},
			Expected: "Zm9v\r\nYg==",
		},
		{
			Name:     "one byte tail unpadded",
			Input:    "foob",
			Config:   Config{CharSet: Standard, Newline: CRLF, Pad: false, LineLength: 4},
			Expected: "Zm9v\r\nYg",
		},
		{
			Name:     "two byte tail padded",
			Input:    "foobarfo",
			Config:   Config{CharSet: Standard, Newline: LF, Pad: true, LineLength: 8},
			Expected: "Zm9vYmFy\nZm8=",
		},
		{
			Name:     "two byte tail unpadded",
			Input:    "foobarfo",
			Config:   Config{CharSet: Standard, Newline: LF, Pad: false, LineLength: 8},
			Expected: "Zm9vYmFy\nZm8",
		},
		{
			Name:     "tail fits on line",
			Input:    "foobarf",
			Config:   Config{CharSet: Standard, Newline: LF, Pad: true, LineLength: 9},
			Expected: "Zm9vYmFyZg==",
		},
		{
			Name:     "threshold exceeded",
			Input:    "foobarf",
			Config:   Config{CharSet: Standard, Newline: LF, Pad: true, LineLength: 7},
			Expected: "Zm9vYmFy\nZg==",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			encoded := Encode([]byte(test.Input), test.Config)
			require.Equal(t, test.Expected, encoded)
			require.Equal(t, len(encoded), EncodedLen(len(test.Input), test.Config))

			decoded, err := DecodeString(encoded)
			require.NoError(t, err)
			require.Equal(t, test.Input, string(decoded))
		})
	}
}

func TestEncodedLen(t *testing.T) {
	input := make([]byte, 300)
	for i := range input {
		input[i] = byte(i)
	}

	for _, cfg := range allConfigs() {
		for n := 0; n <= len(input); n++ {
			require.Equal(t, len(Encode(input[:n], cfg)), EncodedLen(n, cfg), "n=%d config=%+v", n, cfg)
		}
	}
}

func TestEncodeOutputAlphabet(t *testing.T) {
	input := make([]byte, 256)
	for i := range input {
		input[i] = byte(i)
	}

	for _, cfg := range allConfigs() {
		allowed := cfg.CharSet.alphabet() + "=\r\n"
		encoded := Encode(input, cfg)
		for i := 0; i < len(encoded); i++ {
			require.True(t, strings.IndexByte(allowed, encoded[i]) >= 0, "unexpected %q at %d", encoded[i], i)
		}
		if !cfg.Pad {
			require.NotContains(t, encoded, "=")
		}
		if cfg.LineLength == 0 {
			require.NotContains(t, encoded, "\n")
		}
		if cfg.Newline == LF {
			require.NotContains(t, encoded, "\r")
		}
	}
}

func TestAppendEncode(t *testing.T) {
	dst := []byte("data:")
	dst = AppendEncode(dst, []byte("foobar"), StandardConfig)
	require.Equal(t, "data:Zm9vYmFy", string(dst))

	dst = AppendEncode(dst, nil, StandardConfig)
	require.Equal(t, "data:Zm9vYmFy", string(dst))
}

// allConfigs returns every combination of alphabet, newline, padding and a
// selection of line lengths.
func allConfigs() []Config {
	var cfgs []Config
	for _, cs := range []CharacterSet{Standard, URLSafe} {
		for _, nl := range []Newline{CRLF, LF} {
			for _, p := range []bool{true, false} {
				for _, ll := range []int{0, 1, 2, 3, 4, 5, 7, 8, 64, 76} {
					cfgs = append(cfgs, Config{CharSet: cs, Newline: nl, Pad: p, LineLength: ll})
				}
			}
		}
	}
	return cfgs
}
