package main

import (
	"errors"
	"net/http"

	"github.com/Skyedown/pohoda-skalite/internal/checkout"
	"github.com/Skyedown/pohoda-skalite/internal/domain"
	"github.com/Skyedown/pohoda-skalite/internal/service"
	"github.com/go-chi/chi"
)

type CheckoutRequest struct {
	DeliveryMethod string `json:"delivery_method" validate:"required,oneof=delivery pickup"`
	PaymentMethod  string `json:"payment_method" validate:"required,oneof=cash card"`
	FullName       string `json:"full_name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Street         string `json:"street"`
	City           string `json:"city"`
	Notes          string `json:"notes"`
	GDPRConsent    bool   `json:"gdpr_consent"`
}

// toCheckoutForm builds the method-tagged form variant. Address fields are
// only carried by the delivery variant; for pickup they are dropped here and
// never validated.
func (req CheckoutRequest) toCheckoutForm() checkout.Request {
	contact := checkout.Contact{
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
	}

	if domain.DeliveryMethod(req.DeliveryMethod) == domain.DeliveryMethodPickup {
		return checkout.PickupRequest{
			Contact:     contact,
			Notes:       req.Notes,
			GDPRConsent: req.GDPRConsent,
		}
	}

	return checkout.DeliveryRequest{
		Contact:     contact,
		Street:      req.Street,
		City:        req.City,
		Notes:       req.Notes,
		GDPRConsent: req.GDPRConsent,
	}
}

// checkoutHandler godoc
//
//	@Summary		Place an order
//	@Description	Validates the form, applies the minimum-order and ordering-window gates, archives the order and queues the confirmation emails
//	@Tags			checkout
//	@Accept			json
//	@Produce		json
//	@Param			cart_id	path		string			true	"Cart session ID"
//	@Param			request	body		CheckoutRequest	true	"Checkout form"
//	@Success		201		{object}	domain.Order
//	@Failure		400		{object}	map[string]string
//	@Failure		409		{object}	map[string]string
//	@Failure		422		{object}	map[string]map[string]string
//	@Router			/carts/{cart_id}/checkout [post]
func (app *application) checkoutHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "cart_id")
	if sessionID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var req CheckoutRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	order, err := app.checkoutService.PlaceOrder(
		r.Context(),
		sessionID,
		req.toCheckoutForm(),
		domain.PaymentMethod(req.PaymentMethod),
	)
	if err != nil {
		var validationErr *service.ValidationError
		var gateErr *service.GateBlockedError

		switch {
		case errors.As(err, &validationErr):
			app.unprocessableEntityResponse(w, r, validationErr.Fields)
		case errors.As(err, &gateErr):
			app.conflictResponse(w, r, gateErr.Message)
		case errors.Is(err, service.ErrEmptyCart):
			app.badRequestResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, order); err != nil {
		app.internalServerError(w, r, err)
	}
}
