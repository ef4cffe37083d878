package base64

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// CharacterSet selects the encoding alphabet.
type CharacterSet int

const (
	// Standard uses '+' and '/' for the values 62 and 63.
	Standard CharacterSet = iota
	// URLSafe uses '-' and '_' for the values 62 and 63.
	URLSafe
)

var charSetNames = map[CharacterSet]string{
	Standard: "standard",
	URLSafe:  "url-safe",
}

func (c CharacterSet) String() string {
	if n, ok := charSetNames[c]; ok {
		return n
	}
	return fmt.Sprintf("CharacterSet(%d)", int(c))
}

// Set parses the character set name, so a *CharacterSet can be used as a flag value.
func (c *CharacterSet) Set(s string) error {
	for k, n := range charSetNames {
		if strings.EqualFold(n, s) {
			*c = k
			return nil
		}
	}
	return fmt.Errorf("unknown character set %q (supported %s)", s, strings.Join(sortedNames(charSetNames), ","))
}

func (c *CharacterSet) Type() string {
	return "charset"
}

func (c CharacterSet) alphabet() string {
	if c == URLSafe {
		return URLSafeAlphabet
	}
	return StandardAlphabet
}

// Newline selects the line separator inserted when wrapping.
type Newline int

const (
	// CRLF separates lines with "\r\n".
	CRLF Newline = iota
	// LF separates lines with "\n".
	LF
)

var newlineNames = map[Newline]string{
	CRLF: "crlf",
	LF:   "lf",
}

func (n Newline) String() string {
	if s, ok := newlineNames[n]; ok {
		return s
	}
	return fmt.Sprintf("Newline(%d)", int(n))
}

// Set parses the newline name, so a *Newline can be used as a flag value.
func (n *Newline) Set(s string) error {
	for k, name := range newlineNames {
		if strings.EqualFold(name, s) {
			*n = k
			return nil
		}
	}
	return fmt.Errorf("unknown newline %q (supported %s)", s, strings.Join(sortedNames(newlineNames), ","))
}

func (n *Newline) Type() string {
	return "newline"
}

func (n Newline) sequence() string {
	if n == LF {
		return "\n"
	}
	return "\r\n"
}

// Config holds the formatting parameters for Encode.
type Config struct {
	// CharSet is the alphabet to encode with.
	CharSet CharacterSet
	// Newline is only used when LineLength is set.
	Newline Newline
	// Pad enables trailing '=' characters.
	Pad bool
	// LineLength wraps the output after that many characters. 0 disables wrapping.
	LineLength int
}

var (
	// StandardConfig is RFC 4648 base64.
	StandardConfig = Config{CharSet: Standard, Newline: CRLF, Pad: true}
	// URLSafeConfig is RFC 4648 base64url without padding.
	URLSafeConfig = Config{CharSet: URLSafe, Newline: CRLF, Pad: false}
	// MIMEConfig is RFC 2045 base64 with lines of 76 characters.
	MIMEConfig = Config{CharSet: Standard, Newline: CRLF, Pad: true, LineLength: 76}
)

var presets = map[string]Config{
	"standard": StandardConfig,
	"url-safe": URLSafeConfig,
	"mime":     MIMEConfig,
}

// ConfigByName returns the preset registered under the given name.
func ConfigByName(name string) (Config, error) {
	cfg, ok := presets[strings.ToLower(name)]
	if !ok {
		return Config{}, fmt.Errorf("unknown base64 preset %q (supported %s)", name, strings.Join(Presets(), ","))
	}
	return cfg, nil
}

// Presets lists the names accepted by ConfigByName.
func Presets() []string {
	s := []string{}
	for k := range presets {
		s = append(s, k)
	}
	sort.Strings(s)
	return s
}

func (c Config) Validate() error {
	if _, ok := charSetNames[c.CharSet]; !ok {
		return fmt.Errorf("invalid character set %s", c.CharSet)
	}
	if _, ok := newlineNames[c.Newline]; !ok {
		return fmt.Errorf("invalid newline %s", c.Newline)
	}
	if c.LineLength < 0 {
		return errors.New("line length must be >= 0")
	}
	return nil
}

func sortedNames[K comparable](m map[K]string) []string {
	s := []string{}
	for _, n := range m {
		s = append(s, n)
	}
	sort.Strings(s)
	return s
}
