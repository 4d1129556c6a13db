// Package web provides the HTTP server and routing demo for go-arcade
package web

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"github.com/go-while/go-arcade/internal/config"
	"github.com/go-while/go-arcade/internal/database"
)

// WebServer represents the web server
type WebServer struct {
	DB        *database.Database
	Router    *gin.Engine
	Config    *config.WebConfig
	StartTime time.Time // Track server start time for uptime calculations
}

// NewServer creates a new web server instance
func NewServer(db *database.Database, webconfig *config.WebConfig) *WebServer {
	// Set Gin to release mode for production
	if !webconfig.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Configure Gin to trust reverse proxy headers
	// Set trusted proxies for common reverse proxy setups (nginx, etc.)
	router.SetTrustedProxies([]string{"127.0.0.1", "::1", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"})

	// Configure security headers based on SSL setup
	secureConfig := secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}

	// Only add SSL-specific headers if SSL is enabled on the application itself
	// (not when running behind a reverse proxy like nginx with SSL)
	if webconfig.SSL {
		secureConfig.SSLRedirect = true
		secureConfig.STSSeconds = 31536000
		secureConfig.STSIncludeSubdomains = true
	}

	// Apply security middleware
	router.Use(secure.New(secureConfig))

	server := &WebServer{
		DB:     db,
		Router: router,
		Config: webconfig,
	}

	// Request logging in Apache combined format
	router.Use(server.ApacheLogFormat())
	router.Use(gin.Recovery())

	// Add reverse proxy middleware for handling X-Forwarded headers
	router.Use(server.ReverseProxyMiddleware())

	server.setupRoutes()
	return server
}

// setupRoutes configures all HTTP routes.
// The route table is built once here and never mutated afterwards.
func (s *WebServer) setupRoutes() {
	s.Router.GET("/ping", func(c *gin.Context) {
		c.String(200, "pong")
	})

	// Lesson pages (HTML)
	s.Router.GET("/", s.homePage)
	s.Router.GET("/hello", s.helloPage)
	s.Router.GET("/potato", s.potatoPage)

	// Demo routes (JSON)
	s.Router.GET("/dice", s.rollDice)
	s.Router.GET("/add/:num1/:num2", s.addNumbers)
	s.Router.GET("/games/:id", s.getGame)

	// API routes
	s.Router.GET("/api/v1/stats", s.getStats)
	s.Router.GET("/api/v1/stats/", s.getStats)
	s.Router.GET("/api/v1/games", s.listGames)
	s.Router.GET("/api/v1/games/", s.listGames)
	s.Router.GET("/api/v1/games/:id", s.getGame)

	// Anything else falls through to gin's default 404
}

// Start starts the web server with SSL support if configured
func (s *WebServer) Start() error {
	addr := ":" + strconv.Itoa(s.Config.ListenPort)
	s.StartTime = time.Now() // Set the start time for uptime calculations
	if s.Config.SSL {
		if s.Config.CertFile == "" || s.Config.KeyFile == "" {
			return errors.New("SSL enabled but cert_file or key_file not specified in config")
		}
		log.Printf("Starting HTTPS server on %s", addr)
		return s.Router.RunTLS(addr, s.Config.CertFile, s.Config.KeyFile)
	} else {
		log.Printf("Starting HTTP server on %s", addr)
		return s.Router.Run(addr)
	}
}

// ReverseProxyMiddleware handles X-Forwarded headers when running behind a reverse proxy
func (s *WebServer) ReverseProxyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Handle X-Forwarded-Proto to detect if the original request was HTTPS
		if proto := c.GetHeader("X-Forwarded-Proto"); proto == "https" {
			c.Request.URL.Scheme = "https"
		}

		// Handle X-Forwarded-For to get the real client IP
		if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
			// Take the first IP from the list (original client)
			ips := strings.Split(xff, ",")
			if len(ips) > 0 {
				clientIP := strings.TrimSpace(ips[0])
				c.Request.RemoteAddr = clientIP + ":0"
			}
		}

		// Handle X-Real-IP as an alternative
		if realIP := c.GetHeader("X-Real-IP"); realIP != "" {
			c.Request.RemoteAddr = realIP + ":0"
		}

		// Handle X-Forwarded-Host to get the original host
		if host := c.GetHeader("X-Forwarded-Host"); host != "" {
			c.Request.Host = host
		}

		c.Next()
	}
}

func (s *WebServer) ApacheLogFormat() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf(`%s - - [%s] "%s %s %s" %d %d "%s" "%s"`+"\n",
			param.ClientIP,
			param.TimeStamp.Format("02/Jan/2006:15:04:05 -0700"),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.BodySize,
			param.Request.Referer(),
			param.Request.UserAgent(),
		)
	})
}
