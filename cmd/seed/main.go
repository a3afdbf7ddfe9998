// Command seed loads the demo dataset into an empty database.
package main

import (
	"log"
	"time"

	"github.com/google/uuid"

	"vibe-awards/internal/auth"
	"vibe-awards/internal/config"
	"vibe-awards/internal/db"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg := config.Load()

	conn, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("database open failed: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	var count int64
	if err := conn.Model(&db.User{}).Count(&count).Error; err != nil {
		log.Fatalf("user count failed: %v", err)
	}
	if count > 0 {
		log.Println("database already seeded, nothing to do")
		return
	}

	hash, err := auth.HashPassword("password123", cfg.BcryptCost)
	if err != nil {
		log.Fatalf("password hash failed: %v", err)
	}

	users := []db.User{
		{UUID: uuid.NewString(), Username: "lukekist", Email: "luke@tinkybink.com", PasswordHash: hash, Role: "developer"},
		{UUID: uuid.NewString(), Username: "edutech_labs", Email: "hello@edutechlabs.com", PasswordHash: hash, Role: "developer"},
		{UUID: uuid.NewString(), Username: "sonic_innovations", Email: "team@sonicinnovations.com", PasswordHash: hash, Role: "developer"},
	}
	if err := conn.Create(&users).Error; err != nil {
		log.Fatalf("seed users failed: %v", err)
	}

	apps := []db.App{
		{
			UUID:             uuid.NewString(),
			Name:             "TinkyBink AAC",
			ShortDescription: "Revolutionary AI-powered Augmentative and Alternative Communication platform",
			FullDescription:  "Revolutionary AI-powered Augmentative and Alternative Communication platform that transforms speech therapy through predictive analytics and real-time family engagement.",
			DeveloperID:      users[0].ID,
			Category:         "Healthcare",
			Platform:         "Cross-Platform",
			Status:           db.AppStatusApproved,
			Featured:         true,
			Trending:         true,
			BattleReady:      true,
			ViewCount:        2456,
		},
		{
			UUID:             uuid.NewString(),
			Name:             "StudyBuddy AI",
			ShortDescription: "AI-powered study companion that adapts to your learning style",
			FullDescription:  "AI-powered study companion that adapts to your learning style and helps you master any subject faster.",
			DeveloperID:      users[1].ID,
			Category:         "Education",
			Platform:         "Cross-Platform",
			Status:           db.AppStatusApproved,
			Trending:         true,
			BattleReady:      true,
			ViewCount:        1834,
		},
		{
			UUID:             uuid.NewString(),
			Name:             "BeatMaker Studio",
			ShortDescription: "Professional music production studio in your pocket",
			FullDescription:  "Professional music production studio in your pocket with AI-assisted composition and mixing.",
			DeveloperID:      users[2].ID,
			Category:         "Entertainment",
			Platform:         "iOS",
			Status:           db.AppStatusApproved,
			StaffPick:        true,
			BattleReady:      true,
			ViewCount:        1567,
		},
	}
	if err := conn.Create(&apps).Error; err != nil {
		log.Fatalf("seed apps failed: %v", err)
	}

	battle := db.Battle{
		UUID:       uuid.NewString(),
		App1ID:     apps[0].ID,
		App2ID:     apps[1].ID,
		Category:   "Featured",
		BattleDate: time.Now().UTC(),
		Status:     db.BattleStatusActive,
	}
	if err := conn.Create(&battle).Error; err != nil {
		log.Fatalf("seed battle failed: %v", err)
	}

	posts := []db.CollaborationPost{
		{
			UUID:              uuid.NewString(),
			UserID:            users[0].ID,
			Title:             "AI Health Monitoring App - Need iOS Developer",
			Description:       "Prototype that predicts health issues from wearable data. Backend is solid; need help building the iOS app.",
			ProjectStage:      "prototype",
			CollaborationType: "developer",
			SkillsNeeded:      "Swift, iOS Development, HealthKit, Core ML",
			ProjectCategory:   "Healthcare",
			TechStack:         "Python, TensorFlow, FastAPI, PostgreSQL",
			RepoURL:           "https://github.com/lukekist/health-monitor",
			EquityOffered:     true,
			TimeCommitment:    "10-20 hours/week",
			ContactMethod:     "luke@tinkybink.com",
			Status:            db.PostStatusOpen,
		},
		{
			UUID:              uuid.NewString(),
			UserID:            users[1].ID,
			Title:             "EdTech Startup - Seeking Co-Founder",
			Description:       "Platform that personalizes learning using AI. MVP with 500+ beta users; looking for a business co-founder.",
			ProjectStage:      "mvp",
			CollaborationType: "co_founder",
			SkillsNeeded:      "Business Development, Marketing, Fundraising",
			ProjectCategory:   "Education",
			TechStack:         "React, Node.js, MongoDB, AWS",
			DemoURL:           "https://studybuddy-beta.com",
			EquityOffered:     true,
			TimeCommitment:    "Full-time",
			ContactMethod:     "hello@edutechlabs.com",
			Status:            db.PostStatusOpen,
		},
	}
	if err := conn.Create(&posts).Error; err != nil {
		log.Fatalf("seed posts failed: %v", err)
	}

	log.Println("sample data inserted")
}
