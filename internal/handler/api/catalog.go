package api

import (
	"net/http"

	resdto "furnistore/internal/handler/dto/response"
	"furnistore/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries: catalogQueries,
	}
}

// @Summary List catalog
// @Description List every item currently in the inventory
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.ItemResponse
// @Router /catalog [get]
func (h *CatalogHandler) List(c *gin.Context) {
	items := h.catalogQueries.List(c.Request.Context())
	c.JSON(http.StatusOK, resdto.FromItemList(items))
}

// @Summary Search catalog
// @Description Search items by exact attribute match; all filters are optional and combined with AND
// @Tags catalog
// @Produce json
// @Param name query string false "Item name"
// @Param kind query string false "Furniture kind"
// @Param material query string false "Material"
// @Param color query string false "Color"
// @Success 200 {array} resdto.ItemResponse
// @Failure 400 {object} map[string]string
// @Router /catalog/search [get]
func (h *CatalogHandler) Search(c *gin.Context) {
	params := queries.SearchParams{
		Name:     queryParam(c, "name"),
		Kind:     queryParam(c, "kind"),
		Material: queryParam(c, "material"),
		Color:    queryParam(c, "color"),
	}

	items, err := h.catalogQueries.Search(c.Request.Context(), params)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid search filter",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemList(items))
}

func queryParam(c *gin.Context, key string) *string {
	if v, ok := c.GetQuery(key); ok {
		return &v
	}
	return nil
}
