// Package web provides the HTTP server and routing demo for go-arcade
package web

import (
	"errors"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-while/go-arcade/internal/config"
	"github.com/go-while/go-arcade/internal/database"
	"github.com/go-while/go-arcade/internal/models"
)

var LIMIT_listGames = 25

// rollDice returns a uniform random roll in [1,6]
func (s *WebServer) rollDice(c *gin.Context) {
	roll := rand.Intn(config.DiceSides) + 1
	c.JSON(http.StatusOK, gin.H{"roll": roll})
}

// addNumbers sums the two numeric path segments.
// Non-numeric segments answer 400 instead of the silent
// truncate-to-zero some frameworks do.
func (s *WebServer) addNumbers(c *gin.Context) {
	num1, err := strconv.Atoi(c.Param("num1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid number"})
		return
	}
	num2, err := strconv.Atoi(c.Param("num2"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid number"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": num1 + num2})
}

// getGame looks up a game by id and returns its JSON serialization
func (s *WebServer) getGame(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game id"})
		return
	}

	game, err := s.DB.GetGameByID(id)
	if err != nil {
		if errors.Is(err, database.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, game)
}

// listGames returns one page of the game catalog
func (s *WebServer) listGames(c *gin.Context) {
	page := 1
	if p := c.Query("page"); p != "" && p != "1" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed > 0 {
			page = parsed
		}
	}

	games, totalCount, err := s.DB.GetGamesPaginated(page, LIMIT_listGames)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	totalPages := (totalCount + LIMIT_listGames - 1) / LIMIT_listGames
	if totalPages == 0 {
		totalPages = 1
	}

	response := models.PaginatedResponse{
		Data:       games,
		Page:       page,
		PageSize:   LIMIT_listGames,
		TotalCount: totalCount,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}

	c.JSON(http.StatusOK, response)
}

// getStats returns JSON statistics data for the API
func (s *WebServer) getStats(c *gin.Context) {
	gameCount, err := s.DB.CountGames()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get statistics"})
		return
	}

	uptime := "Running"
	if !s.StartTime.IsZero() {
		uptime = time.Since(s.StartTime).Round(time.Second).String()
	}

	c.JSON(http.StatusOK, gin.H{
		"total_games":     gameCount,
		"last_update":     time.Now().Format(time.RFC3339),
		"backend_version": config.AppVersion, // Use the server's version
		"uptime":          uptime,
	})
}
