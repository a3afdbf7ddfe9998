package db

import (
	"time"

	"gorm.io/datatypes"
)

const (
	AppStatusPending  = "pending"
	AppStatusApproved = "approved"
	AppStatusRejected = "rejected"

	BattleStatusUpcoming  = "upcoming"
	BattleStatusActive    = "active"
	BattleStatusCompleted = "completed"

	PostStatusOpen       = "open"
	PostStatusInProgress = "in_progress"
	PostStatusClosed     = "closed"

	InterestStatusPending  = "pending"
	InterestStatusAccepted = "accepted"
	InterestStatusRejected = "rejected"
)

type User struct {
	ID            uint      `gorm:"primaryKey"`
	UUID          string    `gorm:"size:36;uniqueIndex;not null"`
	Username      string    `gorm:"size:64;uniqueIndex;not null"`
	Email         string    `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash  string    `gorm:"size:255;not null"`
	Role          string    `gorm:"size:32;not null;default:developer"`
	AvatarURL     string    `gorm:"size:512"`
	Bio           string    `gorm:"size:2048"`
	WebsiteURL    string    `gorm:"size:512"`
	TwitterHandle string    `gorm:"size:64"`
	LinkedinURL   string    `gorm:"size:512"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
	Apps          []App     `gorm:"foreignKey:DeveloperID"`
}

type App struct {
	ID               uint   `gorm:"primaryKey"`
	UUID             string `gorm:"size:36;uniqueIndex;not null"`
	Name             string `gorm:"size:128;not null"`
	ShortDescription string `gorm:"size:280;not null"`
	FullDescription  string `gorm:"type:text;not null"`
	DeveloperID      uint   `gorm:"index;not null"`
	Category         string `gorm:"size:64;index;not null"`
	Platform         string `gorm:"size:64;not null"`
	IconURL          string `gorm:"size:512"`
	WebsiteURL       string `gorm:"size:512"`
	AppStoreURL      string `gorm:"size:512"`
	DemoVideoURL     string `gorm:"size:512"`
	Status           string `gorm:"size:32;index;not null;default:pending"`
	Featured         bool   `gorm:"not null;default:false"`
	Trending         bool   `gorm:"not null;default:false"`
	StaffPick        bool   `gorm:"not null;default:false"`
	BattleReady      bool   `gorm:"not null;default:false"`
	ViewCount        int    `gorm:"not null;default:0"`
	LikeCount        int    `gorm:"not null;default:0"`
	NominationCount  int    `gorm:"not null;default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Screenshots      []AppScreenshot `gorm:"constraint:OnDelete:CASCADE"`
	Features         []AppFeature    `gorm:"constraint:OnDelete:CASCADE"`
	Likes            []AppLike       `gorm:"constraint:OnDelete:CASCADE"`
	Nominations      []Nomination    `gorm:"constraint:OnDelete:CASCADE"`
	Reviews          []Review        `gorm:"constraint:OnDelete:CASCADE"`
}

type AppScreenshot struct {
	ID         uint   `gorm:"primaryKey"`
	AppID      uint   `gorm:"index;not null"`
	URL        string `gorm:"size:512;not null"`
	Caption    string `gorm:"size:280"`
	OrderIndex int    `gorm:"not null;default:0"`
	CreatedAt  time.Time
}

type AppFeature struct {
	ID          uint   `gorm:"primaryKey"`
	AppID       uint   `gorm:"index;not null"`
	FeatureName string `gorm:"size:128;not null"`
	CreatedAt   time.Time
}

type Battle struct {
	ID         uint      `gorm:"primaryKey"`
	UUID       string    `gorm:"size:36;uniqueIndex;not null"`
	App1ID     uint      `gorm:"index;not null"`
	App2ID     uint      `gorm:"index;not null"`
	Category   string    `gorm:"size:64;not null"`
	BattleDate time.Time `gorm:"not null"`
	Status     string    `gorm:"size:32;index;not null;default:upcoming"`
	App1Votes  int       `gorm:"not null;default:0"`
	App2Votes  int       `gorm:"not null;default:0"`
	TotalVotes int       `gorm:"not null;default:0"`
	WinnerID   *uint     `gorm:"index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Votes      []Vote `gorm:"constraint:OnDelete:CASCADE"`
}

// Vote is battle-scoped: one row per acting identity per battle,
// regardless of which side it lands on.
type Vote struct {
	ID            uint   `gorm:"primaryKey"`
	VoterIdentity string `gorm:"size:128;not null;uniqueIndex:idx_votes_battle_identity"`
	BattleID      uint   `gorm:"index;not null;uniqueIndex:idx_votes_battle_identity"`
	AppID         uint   `gorm:"index;not null"`
	UserAgent     string `gorm:"size:512"`
	CreatedAt     time.Time
}

type AppLike struct {
	ID            uint   `gorm:"primaryKey"`
	VoterIdentity string `gorm:"size:128;not null;uniqueIndex:idx_app_likes_app_identity"`
	AppID         uint   `gorm:"index;not null;uniqueIndex:idx_app_likes_app_identity"`
	CreatedAt     time.Time
}

type Nomination struct {
	ID            uint   `gorm:"primaryKey"`
	VoterIdentity string `gorm:"size:128;not null;uniqueIndex:idx_nominations_app_identity"`
	AppID         uint   `gorm:"index;not null;uniqueIndex:idx_nominations_app_identity"`
	CreatedAt     time.Time
}

type Review struct {
	ID           uint   `gorm:"primaryKey"`
	AppID        uint   `gorm:"index;not null;uniqueIndex:idx_reviews_app_user"`
	UserID       uint   `gorm:"index;not null;uniqueIndex:idx_reviews_app_user"`
	Rating       int    `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Title        string `gorm:"size:128"`
	Content      string `gorm:"type:text;not null"`
	HelpfulCount int    `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CollaborationPost struct {
	ID                uint   `gorm:"primaryKey"`
	UUID              string `gorm:"size:36;uniqueIndex;not null"`
	UserID            uint   `gorm:"index;not null"`
	Title             string `gorm:"size:200;not null"`
	Description       string `gorm:"type:text;not null"`
	ProjectStage      string `gorm:"size:32;not null"`
	CollaborationType string `gorm:"size:32;not null"`
	SkillsNeeded      string `gorm:"size:512;not null"`
	ProjectCategory   string `gorm:"size:64;index;not null"`
	TechStack         string `gorm:"size:512"`
	RepoURL           string `gorm:"size:512"`
	DemoURL           string `gorm:"size:512"`
	ContactMethod     string `gorm:"size:255"`
	EquityOffered     bool   `gorm:"not null;default:false"`
	PaidOpportunity   bool   `gorm:"not null;default:false"`
	TimeCommitment    string `gorm:"size:64"`
	Deadline          string `gorm:"size:32"`
	Status            string `gorm:"size:32;index;not null;default:open"`
	ViewCount         int    `gorm:"not null;default:0"`
	InterestCount     int    `gorm:"not null;default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Interests         []CollaborationInterest `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

type CollaborationInterest struct {
	ID           uint   `gorm:"primaryKey"`
	PostID       uint   `gorm:"index;not null;uniqueIndex:idx_collab_interests_post_user"`
	UserID       uint   `gorm:"index;not null;uniqueIndex:idx_collab_interests_post_user"`
	Message      string `gorm:"size:2048"`
	PortfolioURL string `gorm:"size:512"`
	ContactInfo  string `gorm:"size:255"`
	Status       string `gorm:"size:32;not null;default:pending"`
	CreatedAt    time.Time
}

// EngagementEvent is an append-only audit row written in the same
// transaction as the engagement mutation it records.
type EngagementEvent struct {
	ID        uint           `gorm:"primaryKey"`
	Kind      string         `gorm:"size:32;index;not null"`
	Identity  string         `gorm:"size:128;not null"`
	AppID     *uint          `gorm:"index"`
	BattleID  *uint          `gorm:"index"`
	PostID    *uint          `gorm:"index"`
	Payload   datatypes.JSON `gorm:"not null"`
	CreatedAt time.Time      `gorm:"not null"`
}
