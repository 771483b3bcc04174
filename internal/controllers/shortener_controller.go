package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"snipr-be/internal/apperrors"
	"snipr-be/internal/models"
	"snipr-be/internal/service"
)

type ShortenerController struct {
	urlService service.URLService
}

func NewShortenerController(urlService service.URLService) *ShortenerController {
	return &ShortenerController{
		urlService: urlService,
	}
}

// Encode handles POST /encode - shortens a URL
func (sc *ShortenerController) Encode(c *gin.Context) {
	var req models.EncodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	response, err := sc.urlService.Encode(c.Request.Context(), req.URL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, response)
}

// Decode handles POST /decode - resolves a short URL to the original
func (sc *ShortenerController) Decode(c *gin.Context) {
	var req models.DecodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	response, err := sc.urlService.Decode(c.Request.Context(), req.URL)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidURL) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid URL",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// Redirect handles GET /:counter - redirects to the original URL
func (sc *ShortenerController) Redirect(c *gin.Context) {
	counter, err := strconv.ParseInt(c.Param("counter"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Short URL not found",
		})
		return
	}

	originalURL, err := sc.urlService.Resolve(c.Request.Context(), counter)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Short URL not found",
		})
		return
	}

	c.Redirect(http.StatusMovedPermanently, originalURL)
}
