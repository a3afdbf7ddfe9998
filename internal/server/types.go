package server

type registerRequest struct {
	Username string `json:"username" binding:"required,username"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=developer voter admin"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type screenshotInput struct {
	URL     string `json:"url" binding:"required,url"`
	Caption string `json:"caption"`
}

type createAppRequest struct {
	Name             string            `json:"name" binding:"required,max=128"`
	ShortDescription string            `json:"short_description" binding:"required,max=280"`
	FullDescription  string            `json:"full_description" binding:"required"`
	Category         string            `json:"category" binding:"required,category"`
	Platform         string            `json:"platform" binding:"required,max=64"`
	WebsiteURL       string            `json:"website_url" binding:"omitempty,url"`
	AppStoreURL      string            `json:"app_store_url" binding:"omitempty,url"`
	DemoVideoURL     string            `json:"demo_video_url" binding:"omitempty,url"`
	IconURL          string            `json:"icon_url" binding:"omitempty,url"`
	Features         []string          `json:"features" binding:"omitempty,dive,max=128"`
	Screenshots      []screenshotInput `json:"screenshots" binding:"omitempty,dive"`
}

type voteRequest struct {
	AppID uint `json:"app_id" binding:"required"`
}

type createPostRequest struct {
	Title             string `json:"title" binding:"required,max=200"`
	Description       string `json:"description" binding:"required"`
	ProjectStage      string `json:"project_stage" binding:"required,oneof=idea prototype mvp near_complete"`
	CollaborationType string `json:"collaboration_type" binding:"required,oneof=co_founder developer designer marketer mentor other"`
	SkillsNeeded      string `json:"skills_needed" binding:"required,max=512"`
	ProjectCategory   string `json:"project_category" binding:"required,category"`
	TechStack         string `json:"tech_stack" binding:"max=512"`
	RepoURL           string `json:"repo_url" binding:"omitempty,url"`
	DemoURL           string `json:"demo_url" binding:"omitempty,url"`
	ContactMethod     string `json:"contact_method" binding:"max=255"`
	EquityOffered     bool   `json:"equity_offered"`
	PaidOpportunity   bool   `json:"paid_opportunity"`
	TimeCommitment    string `json:"time_commitment" binding:"max=64"`
	Deadline          string `json:"deadline" binding:"max=32"`
}

type interestRequest struct {
	Message      string `json:"message" binding:"max=2048"`
	PortfolioURL string `json:"portfolio_url" binding:"omitempty,url"`
	ContactInfo  string `json:"contact_info" binding:"max=255"`
}
