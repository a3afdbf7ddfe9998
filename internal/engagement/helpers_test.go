package engagement

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vibe-awards/internal/config"
	"vibe-awards/internal/db"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := config.Default()
	cfg.DatabasePath = filepath.Join(t.TempDir(), "vibe_test.db")
	// SQLite serializes writers anyway; a single pooled connection keeps
	// concurrent transactions queued instead of trading busy errors.
	cfg.DBMaxOpenConns = 1
	cfg.DBMaxIdleConns = 1
	conn, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return conn
}

func createUser(t *testing.T, conn *gorm.DB, username string) db.User {
	t.Helper()
	user := db.User{
		UUID:         uuid.NewString(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		Role:         "developer",
	}
	if err := conn.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createApp(t *testing.T, conn *gorm.DB, developerID uint, name string) db.App {
	t.Helper()
	app := db.App{
		UUID:             uuid.NewString(),
		Name:             name,
		ShortDescription: "short",
		FullDescription:  "full",
		DeveloperID:      developerID,
		Category:         "Productivity",
		Platform:         "Web",
		Status:           db.AppStatusApproved,
	}
	if err := conn.Create(&app).Error; err != nil {
		t.Fatalf("create app: %v", err)
	}
	return app
}

func createBattle(t *testing.T, conn *gorm.DB, app1, app2 uint) db.Battle {
	t.Helper()
	battle := db.Battle{
		UUID:       uuid.NewString(),
		App1ID:     app1,
		App2ID:     app2,
		Category:   "Featured",
		BattleDate: time.Now().UTC(),
		Status:     db.BattleStatusActive,
	}
	if err := conn.Create(&battle).Error; err != nil {
		t.Fatalf("create battle: %v", err)
	}
	return battle
}

func createPost(t *testing.T, conn *gorm.DB, userID uint, title string) db.CollaborationPost {
	t.Helper()
	post := db.CollaborationPost{
		UUID:              uuid.NewString(),
		UserID:            userID,
		Title:             title,
		Description:       "desc",
		ProjectStage:      "idea",
		CollaborationType: "developer",
		SkillsNeeded:      "Go",
		ProjectCategory:   "Productivity",
		Status:            db.PostStatusOpen,
	}
	if err := conn.Create(&post).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}
	return post
}

func reloadApp(t *testing.T, conn *gorm.DB, id uint) db.App {
	t.Helper()
	var app db.App
	if err := conn.First(&app, id).Error; err != nil {
		t.Fatalf("reload app: %v", err)
	}
	return app
}

func reloadBattle(t *testing.T, conn *gorm.DB, id uint) db.Battle {
	t.Helper()
	var battle db.Battle
	if err := conn.First(&battle, id).Error; err != nil {
		t.Fatalf("reload battle: %v", err)
	}
	return battle
}

func countRows(t *testing.T, conn *gorm.DB, model any, query string, args ...any) int64 {
	t.Helper()
	var count int64
	if err := conn.Model(model).Where(query, args...).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return count
}
