package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"shoply_back_end/internal/models"
	"shoply_back_end/internal/store"
)

const (
	itemsCacheKey = "items:all"
	itemsCacheTTL = time.Hour
)

type ItemHandler struct {
	Items store.ItemStore
	Redis *redis.Client // optionnel, cache du listing sans filtre
}

// List renvoie le catalogue, filtré par catégorie, bornes de prix et
// recherche plein-texte sur le nom. category=all équivaut à pas de
// filtre. Le listing sans aucun filtre passe par le cache Redis.
func (h *ItemHandler) List(c *gin.Context) {
	filter := store.ItemFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}

	minStr := c.Query("minPrice")
	maxStr := c.Query("maxPrice")
	if v, err := strconv.ParseFloat(minStr, 64); err == nil {
		filter.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(maxStr, 64); err == nil {
		filter.MaxPrice = &v
	}

	filtered := (filter.Category != "" && filter.Category != "all") ||
		filter.MinPrice != nil || filter.MaxPrice != nil || filter.Search != ""

	ctx := c.Request.Context()

	if !filtered && h.Redis != nil {
		if val, err := h.Redis.Get(ctx, itemsCacheKey).Result(); err == nil && val != "" {
			var cached []models.Item
			if json.Unmarshal([]byte(val), &cached) == nil {
				c.JSON(http.StatusOK, cached)
				return
			}
		}
	}

	items, err := h.Items.List(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	if !filtered && h.Redis != nil {
		if data, err := json.Marshal(items); err == nil {
			h.Redis.Set(context.Background(), itemsCacheKey, data, itemsCacheTTL)
		}
	}

	c.JSON(http.StatusOK, items)
}
