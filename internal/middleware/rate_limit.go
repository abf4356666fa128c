package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/payrollhq/bureau-api/internal/config"
	"github.com/payrollhq/bureau-api/internal/utils"
	"github.com/payrollhq/bureau-api/pkg/logger"
)

type RateLimitMiddleware struct {
	redis  *redis.Client
	config *config.Config
	logger *logger.Logger
}

func NewRateLimitMiddleware(redis *redis.Client, config *config.Config, logger *logger.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		redis:  redis,
		config: config,
		logger: logger,
	}
}

// TenantRateLimit implements per-tenant rate limiting
func (m *RateLimitMiddleware) TenantRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(string(utils.TenantIDKey))
		tenantID, _ := value.(string)
		if !exists || tenantID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Tenant ID required for rate limiting"})
			c.Abort()
			return
		}

		limit := m.config.DefaultRateLimit
		key := fmt.Sprintf("rate_limit:tenant:%s", tenantID)

		current, err := m.redis.Get(c.Request.Context(), key).Int()
		if err != nil && err != redis.Nil {
			m.logger.Error("Redis error in rate limiting", err)
			// Fail open on Redis errors
			c.Next()
			return
		}

		if current >= limit {
			m.setRateLimitHeaders(c, limit, 0)
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded",
				"limit": limit,
				"reset": time.Now().Add(time.Minute).Unix(),
			})
			c.Abort()
			return
		}

		pipe := m.redis.Pipeline()
		pipe.Incr(c.Request.Context(), key)
		pipe.Expire(c.Request.Context(), key, time.Minute)
		if _, err := pipe.Exec(c.Request.Context()); err != nil {
			m.logger.Error("Redis pipeline error in rate limiting", err)
		}

		m.setRateLimitHeaders(c, limit, limit-current-1)
		c.Next()
	}
}

// GlobalRateLimit implements per-IP rate limiting across all endpoints
func (m *RateLimitMiddleware) GlobalRateLimit(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("rate_limit:ip:%s", c.ClientIP())

		current, err := m.redis.Get(c.Request.Context(), key).Int()
		if err != nil && err != redis.Nil {
			m.logger.Error("Redis error in global rate limiting", err)
			c.Next()
			return
		}

		if current >= limit {
			m.setRateLimitHeaders(c, limit, 0)
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			c.Abort()
			return
		}

		pipe := m.redis.Pipeline()
		pipe.Incr(c.Request.Context(), key)
		pipe.Expire(c.Request.Context(), key, time.Minute)
		if _, err := pipe.Exec(c.Request.Context()); err != nil {
			m.logger.Error("Redis pipeline error in global rate limiting", err)
		}

		c.Next()
	}
}

func (m *RateLimitMiddleware) setRateLimitHeaders(c *gin.Context, limit, remaining int) {
	c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(time.Minute).Unix(), 10))
}
