package widgets

import "strings"

type Option struct {
	Value    string
	Label    string
	Disabled bool
}

// Select ist ein Auswahlfeld mit optionaler Suche.
// highlight ist ein Index in Filtered(), -1 = nichts markiert.
type Select struct {
	options   []Option
	value     string
	open      bool
	filter    string
	highlight int
	disabled  bool

	// OnChange läuft nur, wenn sich der Wert wirklich ändert.
	OnChange func(value string)
}

func NewSelect(options []Option, value string) *Select {
	return &Select{
		options:   append([]Option(nil), options...),
		value:     value,
		highlight: -1,
	}
}

func (s *Select) Value() string { return s.value }
func (s *Select) IsOpen() bool  { return s.open }
func (s *Select) Filter() string {
	return s.filter
}

// Selected liefert die gewählte Option, false wenn der Wert keiner Option entspricht.
func (s *Select) Selected() (Option, bool) {
	for _, o := range s.options {
		if o.Value == s.value {
			return o, true
		}
	}
	return Option{}, false
}

// SetDisabled schließt das Feld, ein deaktiviertes Select ignoriert jede Eingabe.
func (s *Select) SetDisabled(disabled bool) {
	s.disabled = disabled
	if disabled {
		s.Close()
	}
}

func (s *Select) SetOptions(options []Option) {
	s.options = append([]Option(nil), options...)
	s.resetHighlight()
}

func (s *Select) Open() {
	if s.disabled || s.open {
		return
	}
	s.open = true
	s.resetHighlight()
}

// Close schließt das Feld und leert die Suche.
func (s *Select) Close() {
	s.open = false
	s.filter = ""
	s.highlight = -1
}

func (s *Select) Toggle() {
	if s.open {
		s.Close()
		return
	}
	s.Open()
}

// ClickOutside verhält sich wie Close.
func (s *Select) ClickOutside() {
	s.Close()
}

// SetFilter setzt den Suchtext. Vergleich ohne Groß-/Kleinschreibung und ohne Akzente.
func (s *Select) SetFilter(text string) {
	if s.disabled {
		return
	}
	s.filter = text
	if !s.open {
		s.open = true
	}
	s.resetHighlight()
}

// Filtered sind die Optionen, deren Label den Suchtext enthält.
func (s *Select) Filtered() []Option {
	needle := strings.TrimSpace(fold(s.filter))
	if needle == "" {
		return append([]Option(nil), s.options...)
	}
	out := make([]Option, 0, len(s.options))
	for _, o := range s.options {
		if strings.Contains(fold(o.Label), needle) {
			out = append(out, o)
		}
	}
	return out
}

// Highlighted liefert die markierte Option der gefilterten Liste.
func (s *Select) Highlighted() (Option, bool) {
	filtered := s.Filtered()
	if s.highlight < 0 || s.highlight >= len(filtered) {
		return Option{}, false
	}
	return filtered[s.highlight], true
}

// Choose setzt den Wert und schließt das Feld. Deaktivierte Optionen werden ignoriert.
func (s *Select) Choose(value string) bool {
	if s.disabled {
		return false
	}
	for _, o := range s.options {
		if o.Value != value {
			continue
		}
		if o.Disabled {
			return false
		}
		changed := s.value != value
		s.value = value
		s.Close()
		if changed && s.OnChange != nil {
			s.OnChange(value)
		}
		return true
	}
	return false
}

// HandleKey verarbeitet eine Taste und meldet, ob sie verbraucht wurde.
func (s *Select) HandleKey(key string) bool {
	if s.disabled {
		return false
	}

	if !s.open {
		switch key {
		case KeyEnter, KeySpace, KeyArrowDown, KeyArrowUp:
			s.Open()
			return true
		}
		return false
	}

	switch key {
	case KeyEscape, KeyTab:
		s.Close()
		return key == KeyEscape
	case KeyArrowDown:
		s.move(1)
		return true
	case KeyArrowUp:
		s.move(-1)
		return true
	case KeyEnter:
		if o, ok := s.Highlighted(); ok {
			s.Choose(o.Value)
		}
		return true
	}
	return false
}

// move springt über deaktivierte Optionen und bleibt an den Enden stehen.
func (s *Select) move(delta int) {
	filtered := s.Filtered()
	for i := s.highlight + delta; i >= 0 && i < len(filtered); i += delta {
		if !filtered[i].Disabled {
			s.highlight = i
			return
		}
	}
}

// resetHighlight markiert den aktuellen Wert, sonst die erste wählbare Option.
func (s *Select) resetHighlight() {
	s.highlight = -1
	filtered := s.Filtered()
	for i, o := range filtered {
		if o.Value == s.value && !o.Disabled {
			s.highlight = i
			return
		}
	}
	for i, o := range filtered {
		if !o.Disabled {
			s.highlight = i
			return
		}
	}
}
