// Package query implements the read side: listing and detail views that
// annotate apps, battles, and collaboration posts with live engagement
// aggregates. No invariants are maintained here beyond returning what
// the store holds at read time.
package query

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"vibe-awards/internal/db"
)

var ErrNotFound = errors.New("not found")

type Service struct {
	db *gorm.DB
}

func NewService(conn *gorm.DB) *Service {
	return &Service{db: conn}
}

type AppFilter struct {
	Category string
	Featured bool
	Trending bool
	Limit    int
	Offset   int
}

// AppSummary is one row of the public app listing.
type AppSummary struct {
	ID               uint      `json:"id"`
	UUID             string    `json:"uuid"`
	Name             string    `json:"name"`
	ShortDescription string    `json:"short_description"`
	FullDescription  string    `json:"full_description"`
	DeveloperID      uint      `json:"developer_id"`
	Category         string    `json:"category"`
	Platform         string    `json:"platform"`
	IconURL          string    `json:"icon_url"`
	WebsiteURL       string    `json:"website_url"`
	AppStoreURL      string    `json:"app_store_url"`
	DemoVideoURL     string    `json:"demo_video_url"`
	Status           string    `json:"status"`
	Featured         bool      `json:"featured"`
	Trending         bool      `json:"trending"`
	StaffPick        bool      `json:"staff_pick"`
	BattleReady      bool      `json:"battle_ready"`
	ViewCount        int       `json:"view_count"`
	LikeCount        int       `json:"like_count"`
	NominationCount  int       `json:"nomination_count"`
	ReviewCount      int       `json:"review_count"`
	AvgRating        float64   `json:"avg_rating"`
	DeveloperName    string    `json:"developer_name"`
	DeveloperAvatar  string    `json:"developer_avatar"`
	CreatedAt        time.Time `json:"created_at"`

	Screenshots []db.AppScreenshot `json:"screenshots" gorm:"-"`
}

const appAggregates = `
	(SELECT COUNT(*) FROM reviews r WHERE r.app_id = apps.id) AS review_count,
	(SELECT COALESCE(AVG(r.rating), 0) FROM reviews r WHERE r.app_id = apps.id) AS avg_rating,
	(SELECT COUNT(*) FROM app_likes al WHERE al.app_id = apps.id) AS like_count,
	(SELECT COUNT(*) FROM nominations n WHERE n.app_id = apps.id) AS nomination_count`

// ListApps returns approved apps with live engagement aggregates, plus
// the total matching count for pagination.
func (s *Service) ListApps(filter AppFilter) ([]AppSummary, int64, error) {
	base := s.db.Model(&db.App{}).Where("apps.status = ?", db.AppStatusApproved)
	if filter.Category != "" && filter.Category != "all" {
		base = base.Where("apps.category = ?", filter.Category)
	}
	if filter.Featured {
		base = base.Where("apps.featured = ?", true)
	}
	if filter.Trending {
		base = base.Where("apps.trending = ?", true)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	apps := []AppSummary{}
	err := base.Session(&gorm.Session{}).
		Select("apps.*, users.username AS developer_name, users.avatar_url AS developer_avatar," + appAggregates).
		Joins("LEFT JOIN users ON apps.developer_id = users.id").
		Order("apps.created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Scan(&apps).Error
	if err != nil {
		return nil, 0, err
	}
	if err := s.attachScreenshots(apps); err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

func (s *Service) attachScreenshots(apps []AppSummary) error {
	if len(apps) == 0 {
		return nil
	}
	ids := make([]uint, len(apps))
	for i, app := range apps {
		ids[i] = app.ID
	}
	var shots []db.AppScreenshot
	if err := s.db.Where("app_id IN ?", ids).Order("order_index ASC").Find(&shots).Error; err != nil {
		return err
	}
	byApp := make(map[uint][]db.AppScreenshot, len(apps))
	for _, shot := range shots {
		byApp[shot.AppID] = append(byApp[shot.AppID], shot)
	}
	for i := range apps {
		apps[i].Screenshots = byApp[apps[i].ID]
		if apps[i].Screenshots == nil {
			apps[i].Screenshots = []db.AppScreenshot{}
		}
	}
	return nil
}

// AppDetail extends the summary with developer profile fields and the
// feature list for the detail view.
type AppDetail struct {
	AppSummary
	DeveloperEmail   string   `json:"developer_email"`
	DeveloperBio     string   `json:"developer_bio"`
	DeveloperWebsite string   `json:"developer_website"`
	Features         []string `json:"features" gorm:"-"`
}

// GetApp resolves an app by uuid or numeric id and bumps its view count,
// mirroring the listing's read-then-count-view behavior.
func (s *Service) GetApp(ref string) (*AppDetail, error) {
	var detail AppDetail
	err := s.db.Model(&db.App{}).
		Select("apps.*, users.username AS developer_name, users.avatar_url AS developer_avatar, "+
			"users.email AS developer_email, users.bio AS developer_bio, users.website_url AS developer_website,"+appAggregates).
		Joins("LEFT JOIN users ON apps.developer_id = users.id").
		Where("apps.uuid = ? OR apps.id = ?", ref, ref).
		Scan(&detail).Error
	if err != nil {
		return nil, err
	}
	if detail.ID == 0 {
		return nil, ErrNotFound
	}

	if err := s.db.Model(&db.App{}).Where("id = ?", detail.ID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error; err != nil {
		return nil, err
	}
	detail.ViewCount++

	summaries := []AppSummary{detail.AppSummary}
	if err := s.attachScreenshots(summaries); err != nil {
		return nil, err
	}
	detail.Screenshots = summaries[0].Screenshots

	var features []db.AppFeature
	if err := s.db.Where("app_id = ?", detail.ID).Find(&features).Error; err != nil {
		return nil, err
	}
	detail.Features = make([]string, 0, len(features))
	for _, feature := range features {
		detail.Features = append(detail.Features, feature.FeatureName)
	}
	return &detail, nil
}

// BattleSummary is a battle with both sides' display fields joined in.
type BattleSummary struct {
	ID            uint      `json:"id"`
	UUID          string    `json:"uuid"`
	App1ID        uint      `json:"app1_id"`
	App2ID        uint      `json:"app2_id"`
	Category      string    `json:"category"`
	BattleDate    time.Time `json:"battle_date"`
	Status        string    `json:"status"`
	App1Votes     int       `json:"app1_votes"`
	App2Votes     int       `json:"app2_votes"`
	TotalVotes    int       `json:"total_votes"`
	WinnerID      *uint     `json:"winner_id"`
	App1Name      string    `json:"app1_name"`
	App1Icon      string    `json:"app1_icon"`
	App1UUID      string    `json:"app1_uuid"`
	App2Name      string    `json:"app2_name"`
	App2Icon      string    `json:"app2_icon"`
	App2UUID      string    `json:"app2_uuid"`
	App1Developer string    `json:"app1_developer"`
	App2Developer string    `json:"app2_developer"`
	CreatedAt     time.Time `json:"created_at"`
}

const battleSelect = `battles.*,
	a1.name AS app1_name, a1.icon_url AS app1_icon, a1.uuid AS app1_uuid,
	a2.name AS app2_name, a2.icon_url AS app2_icon, a2.uuid AS app2_uuid,
	u1.username AS app1_developer, u2.username AS app2_developer`

func (s *Service) battleQuery() *gorm.DB {
	return s.db.Model(&db.Battle{}).
		Select(battleSelect).
		Joins("LEFT JOIN apps a1 ON battles.app1_id = a1.id").
		Joins("LEFT JOIN apps a2 ON battles.app2_id = a2.id").
		Joins("LEFT JOIN users u1 ON a1.developer_id = u1.id").
		Joins("LEFT JOIN users u2 ON a2.developer_id = u2.id")
}

// ListBattles returns battles newest-first, optionally filtered by
// status ("all" disables the filter).
func (s *Service) ListBattles(status string, limit int) ([]BattleSummary, error) {
	q := s.battleQuery()
	if status != "" && status != "all" {
		q = q.Where("battles.status = ?", status)
	}
	battles := []BattleSummary{}
	err := q.Order("battles.battle_date DESC").Limit(limit).Scan(&battles).Error
	return battles, err
}

// CurrentBattle returns the most recent active battle, or nil when no
// battle is live.
func (s *Service) CurrentBattle() (*BattleSummary, error) {
	var battle BattleSummary
	err := s.battleQuery().
		Where("battles.status = ?", db.BattleStatusActive).
		Order("battles.battle_date DESC").
		Limit(1).
		Scan(&battle).Error
	if err != nil {
		return nil, err
	}
	if battle.ID == 0 {
		return nil, nil
	}
	return &battle, nil
}

type PostFilter struct {
	Category string
	Stage    string
	Type     string
	Limit    int
	Offset   int
}

// PostSummary is a collaboration post with creator fields and the live
// interest count.
type PostSummary struct {
	ID                uint      `json:"id"`
	UUID              string    `json:"uuid"`
	UserID            uint      `json:"user_id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	ProjectStage      string    `json:"project_stage"`
	CollaborationType string    `json:"collaboration_type"`
	SkillsNeeded      string    `json:"skills_needed"`
	ProjectCategory   string    `json:"project_category"`
	TechStack         string    `json:"tech_stack"`
	RepoURL           string    `json:"repo_url"`
	DemoURL           string    `json:"demo_url"`
	ContactMethod     string    `json:"contact_method"`
	EquityOffered     bool      `json:"equity_offered"`
	PaidOpportunity   bool      `json:"paid_opportunity"`
	TimeCommitment    string    `json:"time_commitment"`
	Deadline          string    `json:"deadline"`
	Status            string    `json:"status"`
	ViewCount         int       `json:"view_count"`
	InterestCount     int       `json:"interest_count"`
	CreatorName       string    `json:"creator_name"`
	CreatorEmail      string    `json:"creator_email,omitempty"`
	CreatorAvatar     string    `json:"creator_avatar"`
	CreatedAt         time.Time `json:"created_at"`
}

const postAggregates = `
	(SELECT COUNT(*) FROM collaboration_interests ci WHERE ci.post_id = collaboration_posts.id) AS interest_count`

// ListPosts returns open collaboration posts with filters and
// pagination.
func (s *Service) ListPosts(filter PostFilter) ([]PostSummary, int64, error) {
	base := s.db.Model(&db.CollaborationPost{}).
		Where("collaboration_posts.status = ?", db.PostStatusOpen)
	if filter.Category != "" && filter.Category != "all" {
		base = base.Where("collaboration_posts.project_category = ?", filter.Category)
	}
	if filter.Stage != "" && filter.Stage != "all" {
		base = base.Where("collaboration_posts.project_stage = ?", filter.Stage)
	}
	if filter.Type != "" && filter.Type != "all" {
		base = base.Where("collaboration_posts.collaboration_type = ?", filter.Type)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	posts := []PostSummary{}
	err := base.Session(&gorm.Session{}).
		Select("collaboration_posts.*, users.username AS creator_name, users.avatar_url AS creator_avatar,"+postAggregates).
		Joins("LEFT JOIN users ON collaboration_posts.user_id = users.id").
		Order("collaboration_posts.created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Scan(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// GetPost resolves a post by uuid or numeric id and bumps its view
// count.
func (s *Service) GetPost(ref string) (*PostSummary, error) {
	var post PostSummary
	err := s.db.Model(&db.CollaborationPost{}).
		Select("collaboration_posts.*, users.username AS creator_name, users.email AS creator_email, "+
			"users.avatar_url AS creator_avatar,"+postAggregates).
		Joins("LEFT JOIN users ON collaboration_posts.user_id = users.id").
		Where("collaboration_posts.uuid = ? OR collaboration_posts.id = ?", ref, ref).
		Scan(&post).Error
	if err != nil {
		return nil, err
	}
	if post.ID == 0 {
		return nil, ErrNotFound
	}
	if err := s.db.Model(&db.CollaborationPost{}).Where("id = ?", post.ID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error; err != nil {
		return nil, err
	}
	post.ViewCount++
	return &post, nil
}
