package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Skyedown/pohoda-skalite/internal/cart"
	"github.com/Skyedown/pohoda-skalite/internal/domain"
	"github.com/go-chi/chi"
)

var ErrInvalidID = errors.New("invalid ID format")

type cartResponse struct {
	SessionID string            `json:"session_id"`
	Items     []domain.LineItem `json:"items"`
	Subtotal  string            `json:"subtotal"`
	ItemCount int               `json:"item_count"`
}

func newCartResponse(c *domain.Cart) cartResponse {
	items := c.Items
	if items == nil {
		items = []domain.LineItem{}
	}

	return cartResponse{
		SessionID: c.SessionID,
		Items:     items,
		Subtotal:  c.Subtotal().StringFixed(2),
		ItemCount: c.ItemCount(),
	}
}

// createCartHandler godoc
//
//	@Summary		Create a cart session
//	@Tags			carts
//	@Produce		json
//	@Success		201	{object}	cartResponse
//	@Router			/carts [post]
func (app *application) createCartHandler(w http.ResponseWriter, r *http.Request) {
	c := app.cartService.Create(r.Context())

	if err := app.jsonRespone(w, http.StatusCreated, newCartResponse(c)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getCartHandler godoc
//
//	@Summary		Get a cart
//	@Tags			carts
//	@Produce		json
//	@Param			cart_id	path		string	true	"Cart session ID"
//	@Success		200		{object}	cartResponse
//	@Router			/carts/{cart_id} [get]
func (app *application) getCartHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "cart_id")
	if sessionID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	c := app.cartService.Get(r.Context(), sessionID)

	if err := app.jsonRespone(w, http.StatusOK, newCartResponse(c)); err != nil {
		app.internalServerError(w, r, err)
	}
}

type AddCartItemRequest struct {
	ItemID           string   `json:"item_id" validate:"required"`
	Quantity         int      `json:"quantity" validate:"required,min=1"`
	ExtraIDs         []string `json:"extra_ids"`
	RequiredOptionID string   `json:"required_option_id"`
}

// addCartItemHandler godoc
//
//	@Summary		Add a line item
//	@Description	Appends a new line; identical item+extras never merge with an existing line
//	@Tags			carts
//	@Accept			json
//	@Produce		json
//	@Param			cart_id	path		string				true	"Cart session ID"
//	@Param			request	body		AddCartItemRequest	true	"Line item"
//	@Success		201		{object}	cartResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/carts/{cart_id}/items [post]
func (app *application) addCartItemHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "cart_id")
	if sessionID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var req AddCartItemRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	c, err := app.cartService.AddItem(r.Context(), sessionID, req.ItemID, req.Quantity, req.ExtraIDs, req.RequiredOptionID)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, newCartResponse(c)); err != nil {
		app.internalServerError(w, r, err)
	}
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// updateCartItemHandler godoc
//
//	@Summary		Update a line item's quantity
//	@Description	A quantity of zero or less removes the line
//	@Tags			carts
//	@Accept			json
//	@Produce		json
//	@Param			cart_id	path		string					true	"Cart session ID"
//	@Param			index	path		int						true	"Line item index"
//	@Param			request	body		UpdateCartItemRequest	true	"New quantity"
//	@Success		200		{object}	cartResponse
//	@Failure		400		{object}	map[string]string
//	@Router			/carts/{cart_id}/items/{index} [patch]
func (app *application) updateCartItemHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "cart_id")
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if sessionID == "" || err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var req UpdateCartItemRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	c, err := app.cartService.UpdateQuantity(r.Context(), sessionID, index, req.Quantity)
	if err != nil {
		if errors.Is(err, cart.ErrIndexOutOfRange) {
			app.badRequestResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, newCartResponse(c)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// removeCartItemHandler godoc
//
//	@Summary		Remove a line item by position
//	@Tags			carts
//	@Produce		json
//	@Param			cart_id	path		string	true	"Cart session ID"
//	@Param			index	path		int		true	"Line item index"
//	@Success		200		{object}	cartResponse
//	@Failure		400		{object}	map[string]string
//	@Router			/carts/{cart_id}/items/{index} [delete]
func (app *application) removeCartItemHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "cart_id")
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if sessionID == "" || err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	c, err := app.cartService.RemoveItem(r.Context(), sessionID, index)
	if err != nil {
		if errors.Is(err, cart.ErrIndexOutOfRange) {
			app.badRequestResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, newCartResponse(c)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// clearCartHandler godoc
//
//	@Summary		Clear a cart
//	@Tags			carts
//	@Produce		json
//	@Param			cart_id	path		string	true	"Cart session ID"
//	@Success		200		{object}	cartResponse
//	@Router			/carts/{cart_id} [delete]
func (app *application) clearCartHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "cart_id")
	if sessionID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	c := app.cartService.Clear(r.Context(), sessionID)

	if err := app.jsonRespone(w, http.StatusOK, newCartResponse(c)); err != nil {
		app.internalServerError(w, r, err)
	}
}
