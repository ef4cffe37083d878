package encoding

import (
	"github.com/spf13/pflag"

	"github.com/open-component-model/base64/pkg/base64"
)

// AddConfigFlags binds the fields of cfg to flags named with the given prefix.
// The current values of cfg are the flag defaults. Run cfg.Validate after
// parsing.
func AddConfigFlags(fs *pflag.FlagSet, cfg *base64.Config, prefix string) {
	fs.Var(&cfg.CharSet, prefix+"charset", "[OPTIONAL] alphabet (standard, url-safe)")
	fs.Var(&cfg.Newline, prefix+"newline", "[OPTIONAL] line separator used for wrapping (crlf, lf)")
	fs.BoolVar(&cfg.Pad, prefix+"pad", cfg.Pad, "[OPTIONAL] pad output with '='")
	fs.IntVar(&cfg.LineLength, prefix+"line-length", cfg.LineLength, "[OPTIONAL] wrap output after that many characters, 0 disables wrapping")
}
