package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	serviceRepo "wellnest/database/repository/service"
	"wellnest/models"
	"wellnest/utils"
)

// ServicesHandler serves the studio's service catalogue, cached per
// language for a short window since the catalogue changes rarely.
type ServicesHandler struct {
	Repo   serviceRepo.ServiceRepository
	Cache  *redis.Client
	Logger *zap.Logger
}

func NewServicesHandler(repo serviceRepo.ServiceRepository, cache *redis.Client, logger *zap.Logger) *ServicesHandler {
	return &ServicesHandler{Repo: repo, Cache: cache, Logger: logger}
}

const servicesCacheTTL = 5 * time.Minute

// ListServices handles GET /api/booking/services.
func (h *ServicesHandler) ListServices(c *gin.Context) {
	language := c.Query("lang")
	if language != models.LanguageEnglish && language != models.LanguageMongolian {
		language = models.LanguageEnglish
	}

	ctx := c.Request.Context()
	cacheKey := "services:" + language

	if h.Cache != nil {
		if cached, err := h.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var services []models.Service
			if err := json.Unmarshal([]byte(cached), &services); err == nil {
				c.JSON(http.StatusOK, services)
				return
			}
		}
	}

	services, err := h.Repo.ListByLanguage(ctx, language)
	if err != nil {
		h.Logger.Error("failed to list services", zap.String("language", language), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list services", "please try again later")
		return
	}
	if services == nil {
		services = []models.Service{}
	}

	if h.Cache != nil {
		if data, err := json.Marshal(services); err == nil {
			if err := h.Cache.Set(ctx, cacheKey, data, servicesCacheTTL).Err(); err != nil {
				h.Logger.Warn("failed to cache services list", zap.Error(err))
			}
		}
	}

	c.JSON(http.StatusOK, services)
}

// Health handles GET /healthz.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"deps":   utils.GetHealthStatus(),
	})
}
