package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

// RateLimitAlgorithm 限流算法类型
type RateLimitAlgorithm string

const (
	// TokenBucket 令牌桶算法
	TokenBucket RateLimitAlgorithm = "token_bucket"
	// FixedWindow 固定窗口算法
	FixedWindow RateLimitAlgorithm = "fixed_window"
)

// RateLimitType 限流类型
type RateLimitType string

const (
	// RateLimitByIP 基于IP限流
	RateLimitByIP RateLimitType = "ip"
	// RateLimitByUser 基于用户限流，未登录时退回IP
	RateLimitByUser RateLimitType = "user"
)

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	// 请求限制数
	Limit int
	// 窗口大小（秒）
	Window int
	// 限流算法
	Algorithm RateLimitAlgorithm
	// 限流类型
	Type RateLimitType
}

// RateLimitResult 限流结果
type RateLimitResult struct {
	// 是否允许通过
	Allowed bool
	// 剩余请求数
	Remaining int
	// 重置时间（Unix时间戳）
	ResetAt int64
	// 总限制数
	Limit int
}

// RateLimiter 限流器接口
type RateLimiter interface {
	Allow(ctx context.Context, key string, config *RateLimitConfig) (*RateLimitResult, error)
}

// RedisRateLimiter 基于Redis的限流器
type RedisRateLimiter struct {
	redis *redis.Client
}

// NewRedisRateLimiter 创建Redis限流器
func NewRedisRateLimiter(redis *redis.Client) *RedisRateLimiter {
	return &RedisRateLimiter{redis: redis}
}

// Allow 检查是否允许请求通过
func (r *RedisRateLimiter) Allow(ctx context.Context, key string, config *RateLimitConfig) (*RateLimitResult, error) {
	switch config.Algorithm {
	case FixedWindow:
		return r.fixedWindow(ctx, key, config)
	default:
		return r.tokenBucket(ctx, key, config)
	}
}

// tokenBucket 令牌桶算法实现
func (r *RedisRateLimiter) tokenBucket(ctx context.Context, key string, config *RateLimitConfig) (*RateLimitResult, error) {
	now := time.Now().Unix()
	bucketKey := fmt.Sprintf("autokeep:ratelimit:token:%s", key)

	// Lua脚本实现令牌桶
	script := `
		local bucket = redis.call('HMGET', KEYS[1], 'tokens', 'last_update')
		local capacity = tonumber(ARGV[1])
		local rate = tonumber(ARGV[2])
		local now = tonumber(ARGV[3])

		local tokens = tonumber(bucket[1]) or capacity
		local last_update = tonumber(bucket[2]) or now

		-- 计算新增令牌
		local elapsed = now - last_update
		local new_tokens = math.min(capacity, tokens + elapsed * rate)

		local allowed = new_tokens >= 1
		local remaining = 0

		if allowed then
			new_tokens = new_tokens - 1
			remaining = math.floor(new_tokens)
		end

		redis.call('HMSET', KEYS[1], 'tokens', new_tokens, 'last_update', now)
		redis.call('EXPIRE', KEYS[1], math.ceil(capacity / rate) + 1)

		return {allowed and 1 or 0, remaining, capacity}
	`

	// 每秒产生令牌数
	ratePerSecond := float64(config.Limit) / float64(config.Window)

	result, err := r.redis.Eval(ctx, script, []string{bucketKey},
		config.Limit,
		ratePerSecond,
		now,
	).Result()
	if err != nil {
		return nil, err
	}

	values := result.([]interface{})
	return &RateLimitResult{
		Allowed:   values[0].(int64) == 1,
		Remaining: int(values[1].(int64)),
		ResetAt:   now + int64(config.Window),
		Limit:     int(values[2].(int64)),
	}, nil
}

// fixedWindow 固定窗口算法实现
func (r *RedisRateLimiter) fixedWindow(ctx context.Context, key string, config *RateLimitConfig) (*RateLimitResult, error) {
	now := time.Now().Unix()
	window := now / int64(config.Window)
	windowKey := fmt.Sprintf("autokeep:ratelimit:fixed:%s:%d", key, window)

	script := `
		local current = tonumber(redis.call('GET', KEYS[1]) or 0)
		local limit = tonumber(ARGV[1])
		local ttl = tonumber(ARGV[2])

		local allowed = current < limit
		local remaining = limit - current - 1

		if allowed then
			redis.call('INCR', KEYS[1])
			if current == 0 then
				redis.call('EXPIRE', KEYS[1], ttl)
			end
		else
			remaining = -1
		end

		return {allowed and 1 or 0, remaining, limit}
	`

	result, err := r.redis.Eval(ctx, script, []string{windowKey},
		config.Limit,
		config.Window+1,
	).Result()
	if err != nil {
		return nil, err
	}

	values := result.([]interface{})
	return &RateLimitResult{
		Allowed:   values[0].(int64) == 1,
		Remaining: int(values[1].(int64)),
		ResetAt:   (window + 1) * int64(config.Window),
		Limit:     int(values[2].(int64)),
	}, nil
}

// RateLimitGroup 按路径前缀选择限流配置
type RateLimitGroup struct {
	limiter         RateLimiter
	defaultConfig   *RateLimitConfig
	specificConfigs map[string]*RateLimitConfig
}

// NewRateLimitGroup 创建限流组
func NewRateLimitGroup(limiter RateLimiter, defaultConfig *RateLimitConfig) *RateLimitGroup {
	return &RateLimitGroup{
		limiter:         limiter,
		defaultConfig:   defaultConfig,
		specificConfigs: make(map[string]*RateLimitConfig),
	}
}

// AddSpecificConfig 添加特定路径前缀的配置
func (g *RateLimitGroup) AddSpecificConfig(pathPrefix string, config *RateLimitConfig) {
	g.specificConfigs[pathPrefix] = config
}

// configForPath 查找路径对应的配置，前缀匹配
func (g *RateLimitGroup) configForPath(path string) *RateLimitConfig {
	for prefix, config := range g.specificConfigs {
		if strings.HasPrefix(path, prefix) {
			return config
		}
	}
	return g.defaultConfig
}

// Middleware 返回Gin中间件函数
func (g *RateLimitGroup) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		config := g.configForPath(c.Request.URL.Path)

		result, err := g.limiter.Allow(c.Request.Context(), g.generateKey(c, config), config)
		if err != nil {
			// Redis错误时，允许请求通过（降级策略）
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": result.ResetAt - time.Now().Unix(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// generateKey 生成限流Key
func (g *RateLimitGroup) generateKey(c *gin.Context, config *RateLimitConfig) string {
	if config.Type == RateLimitByUser {
		if claims, exists := c.Get("claims"); exists {
			if jwtClaims, ok := claims.(jwt.MapClaims); ok {
				if userID, ok := jwtClaims["user_id"].(float64); ok {
					return fmt.Sprintf("user:%d", uint(userID))
				}
			}
		}
		// 未登录用户使用IP
	}
	return "ip:" + g.getClientIP(c)
}

// getClientIP 获取客户端IP
func (g *RateLimitGroup) getClientIP(c *gin.Context) string {
	// 优先从X-Forwarded-For获取
	xff := c.GetHeader("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}
