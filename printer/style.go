package printer

// Style is the session's recorded text state. Fields hold the
// normalized vocabulary strings from the command tables; empty means
// the attribute was not set in the last Set call.
type Style struct {
	Bold      string
	Underline string
	Size      string
	Font      string
	Align     string
	Inverted  string
	Color     string
	Codepage  string
}

func (s *Style) set(key, value string) {
	switch key {
	case "bold":
		s.Bold = value
	case "underline":
		s.Underline = value
	case "size":
		s.Size = value
	case "font":
		s.Font = value
	case "align":
		s.Align = value
	case "inverted":
		s.Inverted = value
	case "color":
		s.Color = value
	}
}
