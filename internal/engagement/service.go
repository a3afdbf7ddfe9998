// Package engagement implements the mutating engagement operations:
// like toggling, nominations, battle votes, and collaboration interest.
// Each operation runs as one transaction so the association row and its
// denormalized counter always move together.
package engagement

import (
	"errors"

	"gorm.io/gorm"

	"vibe-awards/internal/db"
	"vibe-awards/internal/identity"
)

type Service struct {
	db *gorm.DB
}

func NewService(conn *gorm.DB) *Service {
	return &Service{db: conn}
}

// ToggleLike flips the like state for (actor, app). Returns the state
// after the call: true when the like was recorded, false when removed.
func (s *Service) ToggleLike(actor identity.Identity, appRef string) (bool, error) {
	var liked bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		app, err := findApp(tx, appRef)
		if err != nil {
			return err
		}

		var existing db.AppLike
		err = tx.Where("app_id = ? AND voter_identity = ?", app.ID, actor.String()).
			First(&existing).Error
		if err == nil {
			removed, err := deleteCounted(tx, &existing, &db.App{}, app.ID, "like_count")
			if err != nil {
				return err
			}
			if removed {
				liked = false
				return recordEvent(tx, eventUnlike, actor, eventRefs{AppID: &app.ID}, map[string]any{"liked": false})
			}
			// Row vanished between the read and the delete; fall
			// through to the insert path.
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		row := db.AppLike{VoterIdentity: actor.String(), AppID: app.ID}
		dup, err := insertCounted(tx, &row, &db.App{}, app.ID, "like_count")
		if err != nil {
			return err
		}
		if dup {
			// Lost a race to an identical like. The row exists, so the
			// toggle semantics say remove it.
			var winner db.AppLike
			if err := tx.Where("app_id = ? AND voter_identity = ?", app.ID, actor.String()).
				First(&winner).Error; err != nil {
				return err
			}
			if _, err := deleteCounted(tx, &winner, &db.App{}, app.ID, "like_count"); err != nil {
				return err
			}
			liked = false
			return recordEvent(tx, eventUnlike, actor, eventRefs{AppID: &app.ID}, map[string]any{"liked": false})
		}
		liked = true
		return recordEvent(tx, eventLike, actor, eventRefs{AppID: &app.ID}, map[string]any{"liked": true})
	})
	return liked, err
}

// Nominate records a one-shot nomination. A second nomination by the
// same actor fails with ErrAlreadyNominated and changes nothing.
func (s *Service) Nominate(actor identity.Identity, appRef string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		app, err := findApp(tx, appRef)
		if err != nil {
			return err
		}
		row := db.Nomination{VoterIdentity: actor.String(), AppID: app.ID}
		dup, err := insertCounted(tx, &row, &db.App{}, app.ID, "nomination_count")
		if err != nil {
			return err
		}
		if dup {
			return ErrAlreadyNominated
		}
		return recordEvent(tx, eventNominate, actor, eventRefs{AppID: &app.ID}, nil)
	})
}

// CastVote records a vote for appID in a battle. The uniqueness key is
// battle-scoped, so an actor cannot vote twice nor switch sides.
func (s *Service) CastVote(actor identity.Identity, battleRef string, appID uint, userAgent string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		battle, err := findBattle(tx, battleRef)
		if err != nil {
			return err
		}

		var sideColumn string
		switch appID {
		case battle.App1ID:
			sideColumn = "app1_votes"
		case battle.App2ID:
			sideColumn = "app2_votes"
		default:
			return ErrInvalidEntrant
		}

		row := db.Vote{
			VoterIdentity: actor.String(),
			BattleID:      battle.ID,
			AppID:         appID,
			UserAgent:     userAgent,
		}
		dup, err := insertCounted(tx, &row, &db.Battle{}, battle.ID, sideColumn, "total_votes")
		if err != nil {
			return err
		}
		if dup {
			return ErrAlreadyVoted
		}
		return recordEvent(tx, eventVote, actor, eventRefs{AppID: &appID, BattleID: &battle.ID}, map[string]any{"side": sideColumn})
	})
}

// ExpressInterest records interest in a collaboration post. Requires a
// signed-in user; one-shot per (post, user).
func (s *Service) ExpressInterest(userID uint, postRef, message, portfolioURL, contactInfo string) error {
	actor := identity.Resolve(&userID, "")
	return s.db.Transaction(func(tx *gorm.DB) error {
		post, err := findPost(tx, postRef)
		if err != nil {
			return err
		}
		row := db.CollaborationInterest{
			PostID:       post.ID,
			UserID:       userID,
			Message:      message,
			PortfolioURL: portfolioURL,
			ContactInfo:  contactInfo,
			Status:       db.InterestStatusPending,
		}
		dup, err := insertCounted(tx, &row, &db.CollaborationPost{}, post.ID, "interest_count")
		if err != nil {
			return err
		}
		if dup {
			return ErrAlreadyInterested
		}
		return recordEvent(tx, eventInterest, actor, eventRefs{PostID: &post.ID}, nil)
	})
}

// CompleteBattle closes voting and records the winner from the tally.
// A tied battle completes with no winner.
func (s *Service) CompleteBattle(battleRef string) (*db.Battle, error) {
	var battle *db.Battle
	err := s.db.Transaction(func(tx *gorm.DB) error {
		found, err := findBattle(tx, battleRef)
		if err != nil {
			return err
		}
		updates := map[string]any{"status": db.BattleStatusCompleted}
		switch {
		case found.App1Votes > found.App2Votes:
			updates["winner_id"] = found.App1ID
		case found.App2Votes > found.App1Votes:
			updates["winner_id"] = found.App2ID
		}
		if err := tx.Model(&db.Battle{}).Where("id = ?", found.ID).Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ?", found.ID).First(found).Error; err != nil {
			return err
		}
		battle = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return battle, nil
}

// findApp resolves an app by public uuid or numeric id, matching the
// ":id" the API accepts in either form.
func findApp(tx *gorm.DB, ref string) (*db.App, error) {
	var app db.App
	if err := tx.Where("uuid = ? OR id = ?", ref, ref).First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

func findBattle(tx *gorm.DB, ref string) (*db.Battle, error) {
	var battle db.Battle
	if err := tx.Where("uuid = ? OR id = ?", ref, ref).First(&battle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &battle, nil
}

func findPost(tx *gorm.DB, ref string) (*db.CollaborationPost, error) {
	var post db.CollaborationPost
	if err := tx.Where("uuid = ? OR id = ?", ref, ref).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}
