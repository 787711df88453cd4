package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"freshcart/internal/domain"
	"freshcart/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Carts      service.CartServiceInterface
	Wishlist   service.WishlistServiceInterface
	Coupons    service.CouponServiceInterface
	Checkout   service.CheckoutServiceInterface
	Reconciler service.ReconcilerInterface
}

func NewHandler(carts service.CartServiceInterface, wishlist service.WishlistServiceInterface, coupons service.CouponServiceInterface, checkout service.CheckoutServiceInterface, reconciler service.ReconcilerInterface) *Handler {
	return &Handler{
		Carts:      carts,
		Wishlist:   wishlist,
		Coupons:    coupons,
		Checkout:   checkout,
		Reconciler: reconciler,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/cart/{userId}", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart/{userId}", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/{userId}/items", h.addToCart).Methods("POST")
	r.HandleFunc("/api/cart/{userId}/items/{productId}", h.updateQuantity).Methods("PATCH")
	r.HandleFunc("/api/cart/{userId}/refresh", h.refreshPrices).Methods("POST")
	r.HandleFunc("/api/cart/{userId}/coupons", h.listCoupons).Methods("GET")
	r.HandleFunc("/api/cart/{userId}/coupon", h.applyCoupon).Methods("POST")
	r.HandleFunc("/api/cart/{userId}/coupon", h.removeCoupon).Methods("DELETE")
	r.HandleFunc("/api/cart/{userId}/checkout/quote", h.checkoutQuote).Methods("POST")
	r.HandleFunc("/api/cart/{userId}/checkout/place", h.placeOrder).Methods("POST")
	r.HandleFunc("/api/wishlist/{userId}", h.listWishlist).Methods("GET")
	r.HandleFunc("/api/wishlist/{userId}/{productId}", h.checkWishlist).Methods("GET")
	r.HandleFunc("/api/wishlist/{userId}/{productId}", h.addToWishlist).Methods("PUT")
	r.HandleFunc("/api/wishlist/{userId}/{productId}", h.removeFromWishlist).Methods("DELETE")
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.Carts.GetCart(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Carts.ClearCart(r.Context(), mux.Vars(r)["userId"]); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var product domain.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if product.ID == 0 || product.VendorID == 0 {
		http.Error(w, "product id and vendor_id are required", http.StatusBadRequest)
		return
	}

	cart, err := h.Carts.AddToCart(r.Context(), mux.Vars(r)["userId"], product)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(mux.Vars(r)["productId"], 10, 64)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var payload struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cart, err := h.Carts.UpdateQuantity(r.Context(), mux.Vars(r)["userId"], productID, payload.Delta)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) refreshPrices(w http.ResponseWriter, r *http.Request) {
	cart, err := h.Reconciler.Refresh(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) listCoupons(w http.ResponseWriter, r *http.Request) {
	ranked, err := h.Coupons.ListForCart(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, ranked)
}

func (h *Handler) applyCoupon(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Code == "" {
		http.Error(w, "coupon code is required", http.StatusBadRequest)
		return
	}

	discount, err := h.Coupons.Apply(r.Context(), mux.Vars(r)["userId"], payload.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCouponNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, service.ErrCouponNotEligible), errors.Is(err, service.ErrEmptyCart):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, discount)
}

func (h *Handler) removeCoupon(w http.ResponseWriter, r *http.Request) {
	if err := h.Coupons.Remove(r.Context(), mux.Vars(r)["userId"]); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) checkoutQuote(w http.ResponseWriter, r *http.Request) {
	h.runCheckout(w, r, h.Checkout.Quote)
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	h.runCheckout(w, r, h.Checkout.PlaceOrder)
}

func (h *Handler) runCheckout(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, userID string, address domain.LatLng) (*domain.OrderGroupDraft, error)) {
	var address domain.LatLng
	if err := json.NewDecoder(r.Body).Decode(&address); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	draft, err := fn(r.Context(), mux.Vars(r)["userId"], address)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		case errors.Is(err, service.ErrPriceRefreshFailed):
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
		case errors.Is(err, service.ErrQuoteSuperseded):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

func (h *Handler) listWishlist(w http.ResponseWriter, r *http.Request) {
	ids, err := h.Wishlist.List(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if ids == nil {
		ids = []int64{}
	}
	writeJSON(w, http.StatusOK, ids)
}

func (h *Handler) checkWishlist(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(mux.Vars(r)["productId"], 10, 64)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	contains, err := h.Wishlist.Contains(r.Context(), mux.Vars(r)["userId"], productID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"contains": contains})
}

func (h *Handler) addToWishlist(w http.ResponseWriter, r *http.Request) {
	h.mutateWishlist(w, r, h.Wishlist.Add)
}

func (h *Handler) removeFromWishlist(w http.ResponseWriter, r *http.Request) {
	h.mutateWishlist(w, r, h.Wishlist.Remove)
}

func (h *Handler) mutateWishlist(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, userID string, productID int64) error) {
	productID, err := strconv.ParseInt(mux.Vars(r)["productId"], 10, 64)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	if err := fn(r.Context(), mux.Vars(r)["userId"], productID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
