package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/go-while/go-arcade/internal/models"
)

// ErrGameNotFound is returned when a game id does not exist
var ErrGameNotFound = errors.New("game not found")

// DefaultGames seeds the catalog on first start so the demo routes
// answer out of the box
var DefaultGames = []models.Game{
	{Title: "Spacewar", Genre: "shooter", Rating: 4.5},
	{Title: "Pong", Genre: "sports", Rating: 4.0},
	{Title: "Asteroids", Genre: "shooter", Rating: 4.7},
	{Title: "Snake", Genre: "puzzle", Rating: 3.9},
	{Title: "Tetris", Genre: "puzzle", Rating: 4.9},
}

// GetGameByID returns a single game or ErrGameNotFound
func (db *Database) GetGameByID(id int64) (*models.Game, error) {
	var g models.Game
	err := retryableQueryRowScan(db.mainDB, `
		SELECT id, title, genre, rating, created_at
		FROM games WHERE id = ?`, []interface{}{id},
		&g.ID, &g.Title, &g.Genre, &g.Rating, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game %d: %w", id, err)
	}
	return &g, nil
}

// GetGamesPaginated returns one page of games ordered by id plus the total count
func (db *Database) GetGamesPaginated(page, pageSize int) ([]*models.Game, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 25
	}

	totalCount, err := db.CountGames()
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	rows, err := retryableQuery(db.mainDB, `
		SELECT id, title, genre, rating, created_at
		FROM games ORDER BY id LIMIT ? OFFSET ?`, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query games: %w", err)
	}
	defer rows.Close()

	var games []*models.Game
	for rows.Next() {
		var g models.Game
		if err := rows.Scan(&g.ID, &g.Title, &g.Genre, &g.Rating, &g.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan game: %w", err)
		}
		games = append(games, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return games, totalCount, nil
}

// CountGames returns the number of games in the catalog
func (db *Database) CountGames() (int, error) {
	var count int
	err := retryableQueryRowScan(db.mainDB, `SELECT COUNT(*) FROM games`, nil, &count)
	if err != nil {
		return 0, fmt.Errorf("failed to count games: %w", err)
	}
	return count, nil
}

// InsertGame stores a new game and returns its assigned id
func (db *Database) InsertGame(g *models.Game) (int64, error) {
	result, err := retryableExec(db.mainDB, `
		INSERT INTO games (title, genre, rating) VALUES (?, ?, ?)`,
		g.Title, g.Genre, g.Rating)
	if err != nil {
		return 0, fmt.Errorf("failed to insert game '%s': %w", g.Title, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	g.ID = id
	return id, nil
}

// SeedDefaultGames inserts DefaultGames if the catalog is empty
func (db *Database) SeedDefaultGames() error {
	count, err := db.CountGames()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i := range DefaultGames {
		g := DefaultGames[i]
		if _, err := db.InsertGame(&g); err != nil {
			return err
		}
	}
	log.Printf("Seeded %d default games", len(DefaultGames))
	return nil
}
