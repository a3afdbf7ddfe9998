package engagement

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"vibe-awards/internal/db"
	"vibe-awards/internal/identity"
)

const (
	eventLike     = "like"
	eventUnlike   = "unlike"
	eventNominate = "nominate"
	eventVote     = "vote"
	eventInterest = "interest"
)

type eventRefs struct {
	AppID    *uint
	BattleID *uint
	PostID   *uint
}

// recordEvent appends an audit row inside the caller's transaction, so
// the event log and the engagement state commit or roll back together.
func recordEvent(tx *gorm.DB, kind string, actor identity.Identity, refs eventRefs, payload map[string]any) error {
	if payload == nil {
		payload = map[string]any{}
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	event := db.EngagementEvent{
		Kind:      kind,
		Identity:  actor.String(),
		AppID:     refs.AppID,
		BattleID:  refs.BattleID,
		PostID:    refs.PostID,
		Payload:   datatypes.JSON(raw),
		CreatedAt: time.Now().UTC(),
	}
	return tx.Create(&event).Error
}
