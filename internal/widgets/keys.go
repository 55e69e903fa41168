// Package widgets enthält die kopflosen Zustandsautomaten der Formular-Steuerelemente
// des Dashboards (Select, DatePicker). Kein I/O, kein Rendering.
package widgets

// Tastennamen wie KeyboardEvent.key im Browser.
const (
	KeyEnter     = "Enter"
	KeySpace     = " "
	KeyEscape    = "Escape"
	KeyArrowDown = "ArrowDown"
	KeyArrowUp   = "ArrowUp"
	KeyTab       = "Tab"
)
