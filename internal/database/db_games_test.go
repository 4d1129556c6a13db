package database

import (
	"errors"
	"testing"

	"github.com/go-while/go-arcade/internal/models"
)

func openTestDB(t *testing.T) *Database {
	t.Helper()
	dbconfig := DefaultDBConfig()
	dbconfig.DataDir = t.TempDir()
	db, err := OpenDatabase(dbconfig)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSeedDefaultGames(t *testing.T) {
	db := openTestDB(t)

	if err := db.SeedDefaultGames(); err != nil {
		t.Fatalf("SeedDefaultGames failed: %v", err)
	}
	count, err := db.CountGames()
	if err != nil {
		t.Fatalf("CountGames failed: %v", err)
	}
	if count != len(DefaultGames) {
		t.Errorf("CountGames = %d, want %d", count, len(DefaultGames))
	}

	// Seeding again must not duplicate rows
	if err := db.SeedDefaultGames(); err != nil {
		t.Fatalf("second SeedDefaultGames failed: %v", err)
	}
	count, err = db.CountGames()
	if err != nil {
		t.Fatalf("CountGames failed: %v", err)
	}
	if count != len(DefaultGames) {
		t.Errorf("CountGames after reseed = %d, want %d", count, len(DefaultGames))
	}
}

func TestGetGameByID(t *testing.T) {
	db := openTestDB(t)

	id, err := db.InsertGame(&models.Game{Title: "Breakout", Genre: "arcade", Rating: 4.2})
	if err != nil {
		t.Fatalf("InsertGame failed: %v", err)
	}

	game, err := db.GetGameByID(id)
	if err != nil {
		t.Fatalf("GetGameByID(%d) failed: %v", id, err)
	}
	if game.Title != "Breakout" || game.Genre != "arcade" || game.Rating != 4.2 {
		t.Errorf("GetGameByID(%d) = %+v", id, game)
	}
	if game.CreatedAt.IsZero() {
		t.Errorf("GetGameByID(%d) CreatedAt is zero", id)
	}

	_, err = db.GetGameByID(id + 1000)
	if !errors.Is(err, ErrGameNotFound) {
		t.Errorf("GetGameByID(missing) err = %v, want ErrGameNotFound", err)
	}
}

func TestGetGamesPaginated(t *testing.T) {
	db := openTestDB(t)

	for i := 0; i < 7; i++ {
		if _, err := db.InsertGame(&models.Game{Title: "Game", Genre: "test"}); err != nil {
			t.Fatalf("InsertGame failed: %v", err)
		}
	}

	games, total, err := db.GetGamesPaginated(1, 5)
	if err != nil {
		t.Fatalf("GetGamesPaginated failed: %v", err)
	}
	if total != 7 {
		t.Errorf("total = %d, want 7", total)
	}
	if len(games) != 5 {
		t.Errorf("page 1 len = %d, want 5", len(games))
	}

	games, _, err = db.GetGamesPaginated(2, 5)
	if err != nil {
		t.Fatalf("GetGamesPaginated page 2 failed: %v", err)
	}
	if len(games) != 2 {
		t.Errorf("page 2 len = %d, want 2", len(games))
	}

	// Out-of-range page is empty, not an error
	games, _, err = db.GetGamesPaginated(3, 5)
	if err != nil {
		t.Fatalf("GetGamesPaginated page 3 failed: %v", err)
	}
	if len(games) != 0 {
		t.Errorf("page 3 len = %d, want 0", len(games))
	}
}
