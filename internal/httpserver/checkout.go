package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"podshop/internal/domain"
	checkoutsvc "podshop/internal/service/checkout"
)

func (h *handlers) checkoutReport(c *gin.Context) {
	store := h.cartStore(c)

	f, reselect, err := h.sessionFilter(c)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	lines := store.Lines()
	c.JSON(http.StatusOK, gin.H{
		"report":                checkoutsvc.BuildAvailabilityReport(lines, f),
		"canSubmit":             !reselect && checkoutsvc.CanSubmit(lines, f),
		"zoneSelectionRequired": reselect || !f.HasZone(),
	})
}

type checkoutRequest struct {
	Address domain.Address `json:"address" binding:"required"`
}

func (h *handlers) submitCheckout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "address required")
		return
	}

	store := h.cartStore(c)

	f, reselect, err := h.sessionFilter(c)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	if reselect || !f.HasZone() {
		c.JSON(http.StatusConflict, gin.H{
			"error":                 "delivery zone must be selected",
			"zoneSelectionRequired": true,
		})
		return
	}

	order, link, err := h.deps.Checkout.Submit(c.Request.Context(), store, req.Address, f, h.deps.StoreName)
	if err != nil {
		switch {
		case errors.Is(err, checkoutsvc.ErrNotSubmittable):
			c.JSON(http.StatusConflict, gin.H{
				"error":  "cart is not submittable",
				"report": checkoutsvc.BuildAvailabilityReport(store.Lines(), f),
			})
		default:
			if ce, ok := domain.AsCouponError(err); ok {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": ce.Message, "reason": string(ce.Reason)})
				return
			}
			h.respondServiceError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"order":        order,
		"whatsappLink": link,
	})
}
