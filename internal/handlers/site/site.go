package site

import (
	"net/http"

	"github.com/1mdc/discourse-follow/internal/hostext"

	"github.com/gin-gonic/gin"
)

type SiteHandler struct {
	Extensions *hostext.Registry
}

func NewSiteHandler(ext *hostext.Registry) *SiteHandler {
	return &SiteHandler{Extensions: ext}
}

// Menu handles GET /site/menu and exposes the registered navigation
// entries and topic list filters to the client shell.
func (h *SiteHandler) Menu(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"top_menu_items":           h.Extensions.TopMenuItems(),
		"anonymous_top_menu_items": h.Extensions.AnonymousTopMenuItems(),
		"filters":                  h.Extensions.Filters(),
		"anonymous_filters":        h.Extensions.AnonymousFilters(),
	})
}
