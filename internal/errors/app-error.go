package app_errors

// AppError repräsentiert einen Anwendungsfehler, der vom ErrorHandler als Envelope gerendert wird.
type AppError struct {
	Code       int          // HTTP status code
	Type       string       // VALIDATION_ERROR, NOT_FOUND, usw
	MessageKey string       // i18n key
	Params     map[string]any
	Literal    string       // feste Nachricht, ersetzt die Übersetzung des MessageKey
	Detail     string       // Text für das "error"-Feld (z. B. Body vom Backend)
	Data       any          // Platzhalter für "data" im Fehlerfall
	Details    []FieldError // optional (validation)
	Err        error        // original error (internal only)
}

const (
	ErrValidation      = "VALIDATION_ERROR"
	ErrInvalidBody     = "INVALID_BODY"
	ErrInvalidParam    = "INVALID_PARAM"
	ErrInvalidQuery    = "INVALID_QUERY"
	ErrUnauthorized    = "UNAUTHORIZED"
	ErrForbidden       = "FORBIDDEN"
	ErrNotFound        = "NOT_FOUND"
	ErrNotImplemented  = "NOT_IMPLEMENTED"
	ErrUpstream        = "UPSTREAM_ERROR"
	ErrTooManyRequests = "TOO_MANY_REQUESTS"
	ErrInternal        = "INTERNAL_ERROR"
)

// Feste, nicht übersetzte Texte für das "error"-Feld.
const (
	TextAuthRequired   = "Authentication required"
	TextNotFound       = "Not found"
	TextNotImplemented = "Not implemented"
	TextInvalidRequest = "Invalid request"
	TextInternal       = "Internal server error"
	TextTooMany        = "Too many requests"
)

// DatabaseNotConnected ist die Nachricht aller Stub-Endpunkte ohne Backend-Gegenstück.
const DatabaseNotConnected = "Database not connected. Please implement database operations."

type FieldError struct {
	Field      string         `json:"field"`
	Reason     string         `json:"reason"`
	MessageKey string         `json:"message_key"`
	Params     map[string]any `json:"params,omitempty"`
}

func NewAppError(code int, errType string, messageKey string, err error) *AppError {
	return &AppError{
		Code:       code,
		Type:       errType,
		MessageKey: messageKey,
		Err:        err,
	}
}

func NewValidationError(details []FieldError) *AppError {
	return &AppError{
		Code:       400,
		Type:       ErrValidation,
		MessageKey: "invalid_request",
		Detail:     TextInvalidRequest,
		Details:    details,
	}
}

// NewNotImplemented liefert den 501-Fehler der Stub-Endpunkte.
func NewNotImplemented(message string) *AppError {
	if message == "" {
		message = DatabaseNotConnected
	}
	return &AppError{
		Code:    501,
		Type:    ErrNotImplemented,
		Literal: message,
		Detail:  TextNotImplemented,
	}
}

// InvalidTokenMessage ist die feste Nachricht bei fehlendem oder ungültigem Bearer-Token.
// Sie wird unabhängig von Accept-Language immer auf Vietnamesisch geliefert.
const InvalidTokenMessage = "Phiên đăng nhập không hợp lệ hoặc đã hết hạn. Vui lòng đăng nhập lại."

// NewInvalidBearer liefert den lokalen 401-Fehler der Bearer-Prüfung.
func NewInvalidBearer() *AppError {
	appErr := NewAuthRequired("auth.required")
	appErr.Literal = InvalidTokenMessage
	return appErr
}

// NewAuthRequired ist der 401-Fehler mit lokalisierter Nachricht, z. B. für ein 401 des Backends.
func NewAuthRequired(messageKey string) *AppError {
	return &AppError{
		Code:       401,
		Type:       ErrUnauthorized,
		MessageKey: messageKey,
		Detail:     TextAuthRequired,
	}
}

// WithData setzt den Platzhalter für "data".
func (e *AppError) WithData(data any) *AppError {
	e.Data = data
	return e
}

// WithParams setzt die Template-Parameter für die Übersetzung.
func (e *AppError) WithParams(params map[string]any) *AppError {
	e.Params = params
	return e
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Literal != "" {
		return e.Literal
	}
	return e.MessageKey
}

func (e *AppError) Unwrap() error {
	return e.Err
}
