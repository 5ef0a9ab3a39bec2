package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"handoff-backend/internal/upload/usecase"
)

type UploadHandler struct {
	uploadUsecase usecase.UploadUsecase
	maxBytes      int64
}

func NewUploadHandler(uploadUsecase usecase.UploadUsecase, maxBytes int64) *UploadHandler {
	return &UploadHandler{
		uploadUsecase: uploadUsecase,
		maxBytes:      maxBytes,
	}
}

type uploadRequest struct {
	File string `json:"file" binding:"required"`
}

// Upload accepts {"file": "<data URI>"} and answers {"url": "..."}. Any
// failure is terminal for the request; the caller decides whether to retry.
func (h *UploadHandler) Upload(c *gin.Context) {
	// Advisory body ceiling; base64 inflates the payload by roughly a third
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes*4/3+1024)

	var req uploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	url, err := h.uploadUsecase.Upload(c.Request.Context(), req.File)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBadDataURI):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
