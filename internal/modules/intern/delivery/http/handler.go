package http

import (
	internService "anoa.com/internfundraiser/internal/modules/intern/service"
	"anoa.com/internfundraiser/pkg/response"
	"github.com/gin-gonic/gin"
)

type InternHandler struct {
	service internService.InternService
}

func NewInternHandler(service internService.InternService) *InternHandler {
	return &InternHandler{service: service}
}

func (h *InternHandler) GetIntern(c *gin.Context) {
	intern, err := h.service.GetIntern(c.Request.Context())
	if err != nil {
		response.Failure(c, err, "Error fetching intern data")
		return
	}

	response.Success(c, intern)
}

func (h *InternHandler) GetProgress(c *gin.Context) {
	progress, err := h.service.GetProgress(c.Request.Context())
	if err != nil {
		response.Failure(c, err, "Error computing reward progress")
		return
	}

	response.Success(c, progress)
}
