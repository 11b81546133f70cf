package printer

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/anonymouzz/escpos-go/command"
)

// codepageEncodings maps the selectable code tables to host-side
// encoders. Tables with no single-byte charmap (katakana) fall through
// to raw bytes.
var codepageEncodings = map[string]encoding.Encoding{
	"cp437":  charmap.CodePage437,
	"cp850":  charmap.CodePage850,
	"cp852":  charmap.CodePage852,
	"cp858":  charmap.CodePage858,
	"cp860":  charmap.CodePage860,
	"cp863":  charmap.CodePage863,
	"cp865":  charmap.CodePage865,
	"cp866":  charmap.CodePage866,
	"cp1252": charmap.Windows1252,
}

// Text prints text line by line, encoding each line with the codepage
// selected by Set. Runes the codepage cannot represent are substituted
// rather than failing the print.
func (s *Session) Text(text string) error {
	for _, line := range strings.Split(text, "\n") {
		out := []byte(line)
		if enc, ok := codepageEncodings[s.style.Codepage]; ok {
			if b, err := encoding.ReplaceUnsupported(enc.NewEncoder()).Bytes(out); err == nil {
				out = b
			}
		}
		if err := s.raw(append(out, command.LF)); err != nil {
			return err
		}
	}
	return nil
}
