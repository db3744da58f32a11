package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-backend/internal/domains/catalog/service"
	"library-backend/internal/shared/response"
	"library-backend/internal/shared/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// CatalogHandler serves the REST side endpoints next to GraphQL.
type CatalogHandler struct {
	service service.ServiceInterface
	appName string
}

func NewCatalogHandler(svc service.ServiceInterface, appName string) *CatalogHandler {
	return &CatalogHandler{
		service: svc,
		appName: appName,
	}
}

type healthResponse struct {
	Status      string `json:"status"`
	BookCount   int    `json:"book_count"`
	AuthorCount int    `json:"author_count"`
}

// ════════════════════════════════════════════════════════════════
// GET /api/v1/health
// ════════════════════════════════════════════════════════════════

func (h *CatalogHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()
	response.Success(c, http.StatusOK, healthResponse{
		Status:      "ok",
		BookCount:   h.service.BookCount(ctx),
		AuthorCount: h.service.AuthorCount(ctx),
	})
}

// ════════════════════════════════════════════════════════════════
// GET /api/v1/export/books.xlsx
// ════════════════════════════════════════════════════════════════

func (h *CatalogHandler) ExportExcel(c *gin.Context) {
	ctx := c.Request.Context()

	f, err := service.BuildCatalogWorkbook(h.service.Snapshot(ctx))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to build catalog workbook")
		response.InternalServerError(c, "Failed to export catalog")
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to write catalog workbook")
		response.InternalServerError(c, "Failed to export catalog")
		return
	}

	filename := fmt.Sprintf("%s-catalog.xlsx", utils.GenerateSlug(h.appName))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
