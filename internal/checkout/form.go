// Package checkout validates order forms and combines the business gates
// that decide whether an order may be submitted.
package checkout

import (
	"github.com/Skyedown/pohoda-skalite/internal/domain"
)

// Contact is the sub-structure shared by both delivery methods.
type Contact struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

// Request is a checkout form, tagged by delivery method. The two variants
// carry only the fields their method needs, so address requirements are
// enforced by the type rather than by runtime branching on a field bag.
type Request interface {
	Method() domain.DeliveryMethod
	ContactInfo() Contact
	Consent() bool
}

// DeliveryRequest is a checkout form for home delivery.
type DeliveryRequest struct {
	Contact
	Street      string `json:"street"`
	City        string `json:"city"`
	Notes       string `json:"notes,omitempty"`
	GDPRConsent bool   `json:"gdpr_consent"`
}

func (r DeliveryRequest) Method() domain.DeliveryMethod { return domain.DeliveryMethodDelivery }
func (r DeliveryRequest) ContactInfo() Contact          { return r.Contact }
func (r DeliveryRequest) Consent() bool                 { return r.GDPRConsent }

// PickupRequest is a checkout form for pickup at the restaurant; it carries
// no address at all.
type PickupRequest struct {
	Contact
	Notes       string `json:"notes,omitempty"`
	GDPRConsent bool   `json:"gdpr_consent"`
}

func (r PickupRequest) Method() domain.DeliveryMethod { return domain.DeliveryMethodPickup }
func (r PickupRequest) ContactInfo() Contact          { return r.Contact }
func (r PickupRequest) Consent() bool                 { return r.GDPRConsent }
