package widgets

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
)

const isoLayout = "2006-01-02"

var supported = language.NewMatcher([]language.Tag{language.Vietnamese, language.English})

type locale struct {
	months   [12]string
	weekdays [7]string // ab Montag
	layout   string
	title    func(month string, year int) string
}

var locales = map[language.Base]locale{
	mustBase(language.Vietnamese): {
		months:   [12]string{"Tháng 1", "Tháng 2", "Tháng 3", "Tháng 4", "Tháng 5", "Tháng 6", "Tháng 7", "Tháng 8", "Tháng 9", "Tháng 10", "Tháng 11", "Tháng 12"},
		weekdays: [7]string{"T2", "T3", "T4", "T5", "T6", "T7", "CN"},
		layout:   "02/01/2006",
		title:    func(m string, y int) string { return fmt.Sprintf("%s, %d", m, y) },
	},
	mustBase(language.English): {
		months:   [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
		weekdays: [7]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"},
		layout:   "01/02/2006",
		title:    func(m string, y int) string { return fmt.Sprintf("%s %d", m, y) },
	},
}

func mustBase(t language.Tag) language.Base {
	b, _ := t.Base()
	return b
}

// Day ist eine Zelle des Monatsrasters.
type Day struct {
	Date     time.Time
	InMonth  bool
	Selected bool
	Today    bool
	Disabled bool
}

// DatePicker wählt ein Datum ohne Uhrzeit. Alle Daten liegen in UTC um 00:00.
type DatePicker struct {
	loc      locale
	value    time.Time // Zero = nichts gewählt
	view     time.Time // erster Tag des angezeigten Monats
	open     bool
	disabled bool
	min, max time.Time // Zero = unbeschränkt

	// OnChange läuft nach jeder gültigen Auswahl mit geändertem Datum.
	OnChange func(date time.Time)
	// Now ist für Tests austauschbar.
	Now func() time.Time
}

// NewDatePicker: lang ist ein Accept-Language-Wert oder BCP-47-Tag, unbekannt => vi.
func NewDatePicker(lang string) *DatePicker {
	d := &DatePicker{loc: pickLocale(lang), Now: time.Now}
	d.view = firstOfMonth(d.today())
	return d
}

func pickLocale(lang string) locale {
	tags, _, err := language.ParseAcceptLanguage(lang)
	if err != nil || len(tags) == 0 {
		return locales[mustBase(language.Vietnamese)]
	}
	tag, _, _ := supported.Match(tags...)
	if l, ok := locales[mustBase(tag)]; ok {
		return l
	}
	return locales[mustBase(language.Vietnamese)]
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func (d *DatePicker) today() time.Time {
	now := time.Now
	if d.Now != nil {
		now = d.Now
	}
	return dateOnly(now())
}

func (d *DatePicker) Value() (time.Time, bool) {
	return d.value, !d.value.IsZero()
}

func (d *DatePicker) IsOpen() bool { return d.open }

// SetBounds setzt die erlaubten Grenzen (inklusive). Zero = offen.
func (d *DatePicker) SetBounds(lo, hi time.Time) {
	if !lo.IsZero() {
		lo = dateOnly(lo)
	}
	if !hi.IsZero() {
		hi = dateOnly(hi)
	}
	d.min, d.max = lo, hi
}

func (d *DatePicker) SetDisabled(disabled bool) {
	d.disabled = disabled
	if disabled {
		d.open = false
	}
}

// Open zeigt den Monat des gewählten Datums, sonst den aktuellen Monat.
func (d *DatePicker) Open() {
	if d.disabled {
		return
	}
	d.open = true
	if v, ok := d.Value(); ok {
		d.view = firstOfMonth(v)
	} else {
		d.view = firstOfMonth(d.today())
	}
}

func (d *DatePicker) Close()        { d.open = false }
func (d *DatePicker) ClickOutside() { d.Close() }

func (d *DatePicker) Toggle() {
	if d.open {
		d.Close()
		return
	}
	d.Open()
}

// HandleKey: Enter/Leertaste öffnen, Escape schließt.
func (d *DatePicker) HandleKey(key string) bool {
	if d.disabled {
		return false
	}
	switch key {
	case KeyEnter, KeySpace:
		if !d.open {
			d.Open()
			return true
		}
	case KeyEscape:
		if d.open {
			d.Close()
			return true
		}
	}
	return false
}

func (d *DatePicker) NextMonth() { d.view = d.view.AddDate(0, 1, 0) }
func (d *DatePicker) PrevMonth() { d.view = d.view.AddDate(0, -1, 0) }

// View ist der erste Tag des angezeigten Monats.
func (d *DatePicker) View() time.Time { return d.view }

// Title ist die Überschrift des Monats, z. B. "Tháng 3, 2024" oder "March 2024".
func (d *DatePicker) Title() string {
	return d.loc.title(d.loc.months[d.view.Month()-1], d.view.Year())
}

// Weekdays sind die Spaltenköpfe ab Montag.
func (d *DatePicker) Weekdays() [7]string { return d.loc.weekdays }

// Grid liefert 6 Wochen zu 7 Tagen, die erste Zeile beginnt am Montag vor (oder am) Monatsersten.
func (d *DatePicker) Grid() [6][7]Day {
	var grid [6][7]Day
	offset := (int(d.view.Weekday()) + 6) % 7 // Montag = 0
	start := d.view.AddDate(0, 0, -offset)
	today := d.today()

	for w := 0; w < 6; w++ {
		for wd := 0; wd < 7; wd++ {
			date := start.AddDate(0, 0, w*7+wd)
			grid[w][wd] = Day{
				Date:     date,
				InMonth:  date.Month() == d.view.Month(),
				Selected: !d.value.IsZero() && date.Equal(d.value),
				Today:    date.Equal(today),
				Disabled: !d.inBounds(date),
			}
		}
	}
	return grid
}

func (d *DatePicker) inBounds(date time.Time) bool {
	if !d.min.IsZero() && date.Before(d.min) {
		return false
	}
	if !d.max.IsZero() && date.After(d.max) {
		return false
	}
	return true
}

// Select übernimmt ein Datum innerhalb der Grenzen und schließt den Picker.
func (d *DatePicker) Select(date time.Time) bool {
	if d.disabled {
		return false
	}
	date = dateOnly(date)
	if !d.inBounds(date) {
		return false
	}
	changed := !date.Equal(d.value)
	d.value = date
	d.view = firstOfMonth(date)
	d.open = false
	if changed && d.OnChange != nil {
		d.OnChange(date)
	}
	return true
}

// Clear entfernt die Auswahl.
func (d *DatePicker) Clear() {
	if d.disabled || d.value.IsZero() {
		return
	}
	d.value = time.Time{}
	if d.OnChange != nil {
		d.OnChange(time.Time{})
	}
}

// Format zeigt das Datum lokal (vi: dd/MM/yyyy, en: MM/dd/yyyy), leer ohne Auswahl.
func (d *DatePicker) Format() string {
	if d.value.IsZero() {
		return ""
	}
	return d.value.Format(d.loc.layout)
}

// ISO liefert YYYY-MM-DD, das Format der fromDate/toDate-Parameter.
func (d *DatePicker) ISO() string {
	if d.value.IsZero() {
		return ""
	}
	return d.value.Format(isoLayout)
}

// Parse liest ein Datum im lokalen Format oder als YYYY-MM-DD.
func (d *DatePicker) Parse(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	for _, layout := range []string{d.loc.layout, isoLayout} {
		if t, err := time.Parse(layout, text); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("ungültiges Datum %q, erwartet %s", text, d.loc.layout)
}
