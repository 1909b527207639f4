package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"podshop/internal/domain"
	zonesvc "podshop/internal/service/zone"
)

// productView is a catalog product annotated with availability for the
// session's zone.
type productView struct {
	domain.Product
	AvailableStock int  `json:"availableStock"`
	Available      bool `json:"available"`
}

func toProductView(p domain.Product, f *zonesvc.Filter) productView {
	return productView{
		Product:        p,
		AvailableStock: f.ProductStock(p),
		Available:      f.ProductAvailable(p),
	}
}

// sessionFilter resolves the availability filter for the session's
// persisted zone, discarding a stale selection.
func (h *handlers) sessionFilter(c *gin.Context) (*zonesvc.Filter, bool, error) {
	store := h.cartStore(c)
	f, err := h.deps.Zones.FilterFor(c.Request.Context(), store.ZoneID())
	if err == nil {
		return f, false, nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		// The previously selected zone is gone; force re-selection.
		store.SelectZone("")
		return zonesvc.Unfiltered(), true, nil
	}
	return nil, false, err
}

func (h *handlers) listProducts(c *gin.Context) {
	products, err := h.deps.Catalog.ListProducts(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	f, reselect, err := h.sessionFilter(c)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, toProductView(p, f))
	}
	c.JSON(http.StatusOK, gin.H{
		"products":              views,
		"zoneSelectionRequired": reselect,
	})
}

func (h *handlers) getProduct(c *gin.Context) {
	p, err := h.deps.Catalog.GetProduct(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	f, _, err := h.sessionFilter(c)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductView(*p, f))
}

func (h *handlers) listCategories(c *gin.Context) {
	categories, err := h.deps.Catalog.ListCategories(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *handlers) listZones(c *gin.Context) {
	zones, err := h.deps.Zones.List(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"zones": zones})
}
