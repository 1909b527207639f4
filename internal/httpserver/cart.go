package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"podshop/internal/domain"
	cartsvc "podshop/internal/service/cart"
	couponsvc "podshop/internal/service/coupon"
	zonesvc "podshop/internal/service/zone"
)

type cartResponse struct {
	Items                 []domain.CartLine `json:"items"`
	TotalItems            int               `json:"totalItems"`
	Subtotal              decimal.Decimal   `json:"subtotal"`
	Coupon                *domain.Coupon    `json:"coupon,omitempty"`
	CouponDiscount        decimal.Decimal   `json:"couponDiscount"`
	Total                 decimal.Decimal   `json:"total"`
	ZoneID                string            `json:"zoneId,omitempty"`
	HasSelectedZone       bool              `json:"hasSelectedZone"`
	ZoneSelectionRequired bool              `json:"zoneSelectionRequired,omitempty"`
}

func buildCartResponse(store *cartsvc.Store, reselect bool) cartResponse {
	subtotal := store.Subtotal()
	coupon := store.Coupon()
	discount := decimal.Zero
	if coupon != nil {
		discount = couponsvc.Discount(*coupon, subtotal)
	}
	return cartResponse{
		Items:                 store.Lines(),
		TotalItems:            store.TotalItems(),
		Subtotal:              subtotal,
		Coupon:                coupon,
		CouponDiscount:        discount,
		Total:                 couponsvc.FinalTotal(coupon, subtotal),
		ZoneID:                store.ZoneID(),
		HasSelectedZone:       store.ZoneID() != "",
		ZoneSelectionRequired: reselect,
	}
}

func (h *handlers) respondCart(c *gin.Context, store *cartsvc.Store) {
	reselect := false
	if store.ZoneID() != "" {
		zones, err := h.deps.Zones.List(c.Request.Context())
		if err == nil && zonesvc.ValidateSelection(store.ZoneID(), zones) == nil {
			store.SelectZone("")
			reselect = true
		}
	}
	c.JSON(http.StatusOK, buildCartResponse(store, reselect))
}

func (h *handlers) getCart(c *gin.Context) {
	h.respondCart(c, h.cartStore(c))
}

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

func (h *handlers) addCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "productId required")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 0 {
		respondError(c, http.StatusBadRequest, "quantity must be positive")
		return
	}

	p, err := h.deps.Catalog.GetProductByID(c.Request.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(c, http.StatusNotFound, "product not found")
			return
		}
		h.respondServiceError(c, err)
		return
	}
	if !p.Active {
		respondError(c, http.StatusUnprocessableEntity, "product is not for sale")
		return
	}

	store := h.cartStore(c)
	store.AddItem(*p, req.Quantity)
	h.respondCart(c, store)
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *handlers) updateCartItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "quantity required")
		return
	}
	store := h.cartStore(c)
	store.UpdateQuantity(c.Param("productID"), req.Quantity)
	h.respondCart(c, store)
}

func (h *handlers) removeCartItem(c *gin.Context) {
	store := h.cartStore(c)
	store.RemoveItem(c.Param("productID"))
	h.respondCart(c, store)
}

func (h *handlers) clearCart(c *gin.Context) {
	store := h.cartStore(c)
	store.Clear()
	h.respondCart(c, store)
}

type applyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

func (h *handlers) applyCoupon(c *gin.Context) {
	var req applyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "code required")
		return
	}

	store := h.cartStore(c)
	coupon, err := h.deps.Coupons.Apply(c.Request.Context(), req.Code, store.Subtotal(), store.Lines(), store.ZoneID())
	if err != nil {
		if ce, ok := domain.AsCouponError(err); ok {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": ce.Message, "reason": string(ce.Reason)})
			return
		}
		h.respondServiceError(c, err)
		return
	}

	store.ApplyCoupon(*coupon)
	h.respondCart(c, store)
}

func (h *handlers) removeCoupon(c *gin.Context) {
	store := h.cartStore(c)
	store.RemoveCoupon()
	h.respondCart(c, store)
}

type selectZoneRequest struct {
	ZoneID string `json:"zoneId"`
}

func (h *handlers) selectZone(c *gin.Context) {
	var req selectZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "zoneId required")
		return
	}

	store := h.cartStore(c)
	if req.ZoneID == "" {
		store.SelectZone("")
		h.respondCart(c, store)
		return
	}

	z, err := h.deps.Zones.Get(c.Request.Context(), req.ZoneID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	if !z.Active {
		respondError(c, http.StatusUnprocessableEntity, "zone is not active")
		return
	}
	store.SelectZone(z.ID)
	h.respondCart(c, store)
}
