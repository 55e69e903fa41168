package dtos

// Envelope ist die einheitliche Antwortform aller Endpunkte.
type Envelope[T any] struct {
	Success   bool          `json:"success"`
	Data      T             `json:"data"`
	Error     string        `json:"error,omitempty"`
	Message   string        `json:"message,omitempty"`
	Code      string        `json:"code,omitempty"`
	Details   []FieldDetail `json:"details,omitempty"`
	RequestID string        `json:"request_id,omitempty"`
}

// FieldDetail beschreibt einen einzelnen Validierungsfehler in der Antwort.
type FieldDetail struct {
	Field   string `json:"field"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// Page umhüllt die Daten jeder Listenantwort.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	HasNext       bool  `json:"hasNext"`
	HasPrevious   bool  `json:"hasPrevious"`
}

// NewPage berechnet die abgeleiteten Felder einer Seite. content wird nie als null serialisiert.
func NewPage[T any](content []T, page, size int, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return Page[T]{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
		HasNext:       page+1 < totalPages,
		HasPrevious:   page > 0,
	}
}

// EmptyPage ist der Platzhalter für Listenendpunkte im Fehlerfall.
func EmptyPage(page, size int) Page[any] {
	return NewPage[any](nil, page, size, 0)
}

// Pagination sind die gemeinsamen Abfrageparameter aller Listenendpunkte.
type Pagination struct {
	Page int
	Size int
	Sort []string
}

const (
	DefaultPage = 0
	DefaultSize = 20
	MaxSize     = 100
)
