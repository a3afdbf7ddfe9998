package query

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
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

func createApp(t *testing.T, conn *gorm.DB, developerID uint, name, status string) db.App {
	t.Helper()
	app := db.App{
		UUID:             uuid.NewString(),
		Name:             name,
		ShortDescription: "short",
		FullDescription:  "full",
		DeveloperID:      developerID,
		Category:         "Productivity",
		Platform:         "Web",
		Status:           status,
	}
	if err := conn.Create(&app).Error; err != nil {
		t.Fatalf("create app: %v", err)
	}
	return app
}

func TestListAppsApprovedOnly(t *testing.T) {
	conn := setupDB(t)
	svc := NewService(conn)
	dev := createUser(t, conn, "dev")
	approved := createApp(t, conn, dev.ID, "Approved", db.AppStatusApproved)
	createApp(t, conn, dev.ID, "Pending", db.AppStatusPending)
	createApp(t, conn, dev.ID, "Rejected", db.AppStatusRejected)

	apps, total, err := svc.ListApps(AppFilter{Limit: 50})
	if err != nil {
		t.Fatalf("list apps: %v", err)
	}
	if total != 1 || len(apps) != 1 {
		t.Fatalf("total = %d, rows = %d, want 1 and 1", total, len(apps))
	}
	if apps[0].ID != approved.ID {
		t.Fatalf("listed app %d, want %d", apps[0].ID, approved.ID)
	}
	if apps[0].DeveloperName != "dev" {
		t.Fatalf("developer_name = %q, want dev", apps[0].DeveloperName)
	}
	if apps[0].Screenshots == nil {
		t.Fatal("screenshots should be an empty slice, not nil")
	}
}

func TestListAppsFilters(t *testing.T) {
	conn := setupDB(t)
	svc := NewService(conn)
	dev := createUser(t, conn, "dev")

	games := createApp(t, conn, dev.ID, "Game", db.AppStatusApproved)
	conn.Model(&games).Updates(map[string]any{"category": "Games", "featured": true})
	createApp(t, conn, dev.ID, "Tool", db.AppStatusApproved)
	trending := createApp(t, conn, dev.ID, "Hot", db.AppStatusApproved)
	conn.Model(&trending).Update("trending", true)

	apps, total, err := svc.ListApps(AppFilter{Category: "Games", Limit: 50})
	if err != nil {
		t.Fatalf("list by category: %v", err)
	}
	if total != 1 || apps[0].ID != games.ID {
		t.Fatalf("category filter returned %d rows, first id %d", total, apps[0].ID)
	}

	apps, total, err = svc.ListApps(AppFilter{Featured: true, Limit: 50})
	if err != nil {
		t.Fatalf("list featured: %v", err)
	}
	if total != 1 || apps[0].ID != games.ID {
		t.Fatalf("featured filter returned %d rows", total)
	}

	apps, total, err = svc.ListApps(AppFilter{Trending: true, Limit: 50})
	if err != nil {
		t.Fatalf("list trending: %v", err)
	}
	if total != 1 || apps[0].ID != trending.ID {
		t.Fatalf("trending filter returned %d rows", total)
	}

	// "all" is a no-op, same as no category.
	_, total, err = svc.ListApps(AppFilter{Category: "all", Limit: 50})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if total != 3 {
		t.Fatalf("category all total = %d, want 3", total)
	}
}

func TestListAppsLiveAggregates(t *testing.T) {
	conn := setupDB(t)
	svc := NewService(conn)
	dev := createUser(t, conn, "dev")
	app := createApp(t, conn, dev.ID, "App", db.AppStatusApproved)

	for i := 0; i < 3; i++ {
		like := db.AppLike{AppID: app.ID, VoterIdentity: fmt.Sprintf("ip:10.0.0.%d", i)}
		if err := conn.Create(&like).Error; err != nil {
			t.Fatalf("create like: %v", err)
		}
	}
	nomination := db.Nomination{AppID: app.ID, VoterIdentity: "ip:10.0.0.0"}
	if err := conn.Create(&nomination).Error; err != nil {
		t.Fatalf("create nomination: %v", err)
	}
	for i, rating := range []int{4, 5} {
		review := db.Review{AppID: app.ID, UserID: dev.ID + uint(i), Rating: rating, Content: "solid"}
		if err := conn.Create(&review).Error; err != nil {
			t.Fatalf("create review: %v", err)
		}
	}

	apps, _, err := svc.ListApps(AppFilter{Limit: 50})
	if err != nil {
		t.Fatalf("list apps: %v", err)
	}
	got := apps[0]
	if got.LikeCount != 3 {
		t.Fatalf("like_count = %d, want 3", got.LikeCount)
	}
	if got.NominationCount != 1 {
		t.Fatalf("nomination_count = %d, want 1", got.NominationCount)
	}
	if got.ReviewCount != 2 {
		t.Fatalf("review_count = %d, want 2", got.ReviewCount)
	}
	if got.AvgRating != 4.5 {
		t.Fatalf("avg_rating = %v, want 4.5", got.AvgRating)
	}
}

func TestListAppsPagination(t *testing.T) {
	conn := setupDB(t)
	svc := NewService(conn)
	dev := createUser(t, conn, "dev")
	for i := 0; i < 5; i++ {
		createApp(t, conn, dev.ID, fmt.Sprintf("App %d", i), db.AppStatusApproved)
	}

	apps, total, err := svc.ListApps(AppFilter{Limit: 2, Offset: 0})
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	if total != 5 {
		t.Fatalf("total = %d, want 5", total)
	}
	if len(apps) != 2 {
		t.Fatalf("page 1 rows = %d, want 2", len(apps))
	}

	apps, total, err = svc.ListApps(AppFilter{Limit: 2, Offset: 4})
	if err != nil {
		t.Fatalf("page 3: %v", err)
	}
	if total != 5 || len(apps) != 1 {
		t.Fatalf("page 3: total %d rows %d, want 5 and 1", total, len(apps))
	}
}

func TestGetAppDetail(t *testing.T) {
	conn := setupDB(t)
	svc := NewService(conn)
	dev := createUser(t, conn, "dev")
	app := createApp(t, conn, dev.ID, "App", db.AppStatusApproved)
	shot := db.AppScreenshot{AppID: app.ID, URL: "https://example.com/s1.png", OrderIndex: 0}
	if err := conn.Create(&shot).Error; err != nil {
		t.Fatalf("create screenshot: %v", err)
	}
	for _, name := range []string{"Offline mode", "Dark theme"} {
		feature := db.AppFeature{AppID: app.ID, FeatureName: name}
		if err := conn.Create(&feature).Error; err != nil {
			t.Fatalf("create feature: %v", err)
		}
	}

	detail, err := svc.GetApp(app.UUID)
	if err != nil {
		t.Fatalf("get app: %v", err)
	}
	if detail.ViewCount != 1 {
		t.Fatalf("view_count = %d, want 1 after first view", detail.ViewCount)
	}
	if len(detail.Screenshots) != 1 || detail.Screenshots[0].URL != shot.URL {
		t.Fatalf("screenshots = %+v", detail.Screenshots)
	}
	if len(detail.Features) != 2 {
		t.Fatalf("features = %v, want 2 entries", detail.Features)
	}
	if detail.DeveloperEmail != dev.Email {
		t.Fatalf("developer_email = %q, want %q", detail.DeveloperEmail, dev.Email)
	}

	// Numeric id works too, and the view count keeps climbing.
	detail, err = svc.GetApp(strconv.Itoa(int(app.ID)))
	if err != nil {
		t.Fatalf("get app by id: %v", err)
	}
	if detail.ViewCount != 2 {
		t.Fatalf("view_count = %d, want 2 after second view", detail.ViewCount)
	}
}

func TestGetAppNotFound(t *testing.T) {
	conn := setupDB(t)
	svc := NewService(conn)

	_, err := svc.GetApp("does-not-exist")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func createBattle(t *testing.T, conn *gorm.DB, app1, app2 uint, status string, when time.Time) db.Battle {
	t.Helper()
	battle := db.Battle{
		UUID:       uuid.NewString(),
		App1ID:     app1,
		App2ID:     app2,
		Category:   "Featured",
		BattleDate: when,
		Status:     status,
	}
	if err := conn.Create(&battle).Error; err != nil {
		t.Fatalf("create battle: %v", err)
	}
	return battle
}

func TestListBattlesStatusFilter(t *testing.T) {
	conn := setupDB(t)
	svc := NewService(conn)
	dev := createUser(t, conn, "dev")
	a := createApp(t, conn, dev.ID, "A", db.AppStatusApproved)
	b := createApp(t, conn, dev.ID, "B", db.AppStatusApproved)
	now := time.Now().UTC()
	active := createBattle(t, conn, a.ID, b.ID, db.BattleStatusActive, now)
	createBattle(t, conn, a.ID, b.ID, db.BattleStatusCompleted, now.Add(-24*time.Hour))

	battles, err := svc.ListBattles(db.BattleStatusActive, 20)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(battles) != 1 || battles[0].ID != active.ID {
		t.Fatalf("active filter returned %d battles", len(battles))
	}
	if battles[0].App1Name != "A" || battles[0].App2Name != "B" {
		t.Fatalf("joined names = %q vs %q", battles[0].App1Name, battles[0].App2Name)
	}
	if battles[0].App1Developer != "dev" {
		t.Fatalf("app1_developer = %q, want dev", battles[0].App1Developer)
	}

	battles, err = svc.ListBattles("all", 20)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(battles) != 2 {
		t.Fatalf("all returned %d battles, want 2", len(battles))
	}
	// Newest battle date first.
	if battles[0].ID != active.ID {
		t.Fatalf("expected newest battle first, got id %d", battles[0].ID)
	}
}

func TestCurrentBattle(t *testing.T) {
	conn := setupDB(t)
	svc := NewService(conn)

	battle, err := svc.CurrentBattle()
	if err != nil {
		t.Fatalf("current battle: %v", err)
	}
	if battle != nil {
		t.Fatalf("expected nil with no battles, got %+v", battle)
	}

	dev := createUser(t, conn, "dev")
	a := createApp(t, conn, dev.ID, "A", db.AppStatusApproved)
	b := createApp(t, conn, dev.ID, "B", db.AppStatusApproved)
	now := time.Now().UTC()
	createBattle(t, conn, a.ID, b.ID, db.BattleStatusCompleted, now)
	createBattle(t, conn, a.ID, b.ID, db.BattleStatusActive, now.Add(-48*time.Hour))
	newest := createBattle(t, conn, a.ID, b.ID, db.BattleStatusActive, now.Add(-time.Hour))

	battle, err = svc.CurrentBattle()
	if err != nil {
		t.Fatalf("current battle: %v", err)
	}
	if battle == nil || battle.ID != newest.ID {
		t.Fatalf("current battle = %+v, want id %d", battle, newest.ID)
	}
}

func createPost(t *testing.T, conn *gorm.DB, userID uint, title, stage, collabType, status string) db.CollaborationPost {
	t.Helper()
	post := db.CollaborationPost{
		UUID:              uuid.NewString(),
		UserID:            userID,
		Title:             title,
		Description:       "desc",
		ProjectStage:      stage,
		CollaborationType: collabType,
		SkillsNeeded:      "Go",
		ProjectCategory:   "Productivity",
		Status:            status,
	}
	if err := conn.Create(&post).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}
	return post
}

func TestListPosts(t *testing.T) {
	conn := setupDB(t)
	svc := NewService(conn)
	owner := createUser(t, conn, "owner")
	open := createPost(t, conn, owner.ID, "Open idea", "idea", "developer", db.PostStatusOpen)
	createPost(t, conn, owner.ID, "Closed", "mvp", "designer", db.PostStatusClosed)
	mvp := createPost(t, conn, owner.ID, "MVP help", "mvp", "designer", db.PostStatusOpen)

	interest := db.CollaborationInterest{PostID: open.ID, UserID: owner.ID, Status: db.InterestStatusPending}
	if err := conn.Create(&interest).Error; err != nil {
		t.Fatalf("create interest: %v", err)
	}

	posts, total, err := svc.ListPosts(PostFilter{Limit: 20})
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	if total != 2 || len(posts) != 2 {
		t.Fatalf("total = %d rows = %d, want 2 and 2", total, len(posts))
	}
	for _, post := range posts {
		if post.ID == open.ID && post.InterestCount != 1 {
			t.Fatalf("interest_count = %d, want 1", post.InterestCount)
		}
		if post.CreatorName != "owner" {
			t.Fatalf("creator_name = %q, want owner", post.CreatorName)
		}
	}

	posts, total, err = svc.ListPosts(PostFilter{Stage: "mvp", Limit: 20})
	if err != nil {
		t.Fatalf("list by stage: %v", err)
	}
	if total != 1 || posts[0].ID != mvp.ID {
		t.Fatalf("stage filter returned %d rows", total)
	}

	posts, total, err = svc.ListPosts(PostFilter{Type: "designer", Limit: 20})
	if err != nil {
		t.Fatalf("list by type: %v", err)
	}
	if total != 1 || posts[0].ID != mvp.ID {
		t.Fatalf("type filter returned %d rows", total)
	}
}

func TestGetPost(t *testing.T) {
	conn := setupDB(t)
	svc := NewService(conn)
	owner := createUser(t, conn, "owner")
	post := createPost(t, conn, owner.ID, "Open idea", "idea", "developer", db.PostStatusOpen)

	got, err := svc.GetPost(post.UUID)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if got.ViewCount != 1 {
		t.Fatalf("view_count = %d, want 1", got.ViewCount)
	}
	if got.CreatorEmail != owner.Email {
		t.Fatalf("creator_email = %q, want %q", got.CreatorEmail, owner.Email)
	}

	_, err = svc.GetPost("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
