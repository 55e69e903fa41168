package proxy_handlers

import (
	"github.com/Warzoness/foodshare-manager/internal/dtos"
	"github.com/gofiber/fiber/v2"
)

// Route parametrisiert ForwardToBackend für eine Ressource.
type Route struct {
	// Resource erscheint in Logs und im Key der not-found-Nachricht ("not_found.shop").
	Resource string
	// Method ist die ausgehende Methode, leer = eingehende Methode.
	Method string
	// UpstreamPath ist der Pfad beim Backend, ":<IDParam>" wird durch die geprüfte ID ersetzt.
	UpstreamPath string
	IDParam      string
	// Query listet die erlaubten Abfrageparameter. Unbekannte Parameter werden verworfen.
	Query     []string
	Paginated bool
	// NotFound bildet 404 des Backends auf die lokalisierte not-found-Nachricht ab.
	NotFound bool
	// Body liefert das DTO, gegen das der Body eines Schreibzugriffs validiert wird.
	Body func() any
	// OnSuccess läuft bei 2xx vor der Antwort, z. B. um die Sitzung beim Login zu setzen.
	OnSuccess func(c *fiber.Ctx, body []byte) error
}

func (r Route) placeholder(p dtos.Pagination) any {
	if r.Paginated {
		return dtos.EmptyPage(p.Page, p.Size)
	}
	return nil
}

// Check ist eine Eingabeprüfung, die ein Stub vor der 501-Antwort ausführt.
type Check func(c *fiber.Ctx) error
