// Package deeplink builds outbound message-compose URLs.
package deeplink

import (
	"fmt"
	"net/url"

	"github.com/leguidebj/agency-backend/internal/domain"
)

// whatsappTemplate is the fixed booking-summary message, in the agency's
// working language.
const whatsappTemplate = "Bonjour Le Guide BJ, je souhaite faire une demande de réservation pour le circuit \"%s\".\n\n" +
	"- Nom: %s\n- Email: %s\n- Téléphone: %s\n- Personnes: %d\n\n" +
	"Merci de confirmer la disponibilité."

// WhatsApp returns a wa.me compose URL for the given booking, with the
// summary message percent-encoded in the text parameter. The number is the
// agency's international phone number without the leading plus sign.
func WhatsApp(number string, b domain.Booking) string {
	msg := fmt.Sprintf(whatsappTemplate,
		b.TourTitle, b.CustomerName, b.CustomerEmail, b.CustomerPhone, b.NumberOfPeople)
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(msg)
}
