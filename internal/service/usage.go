package service

import (
	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// usageRecorder appends write-once usage-log facts. The actor arrives as an
// explicit parameter from the request context; an actor that is not a valid
// user id (e.g. "system") is stored as a null user.
type usageRecorder struct {
	usageLog repository.UsageLogRepository
	log      *zap.Logger
}

func (r *usageRecorder) recordUsage(actorID string, kind model.RefKind, targetID uuid.UUID, action string) {
	var userID *uuid.UUID
	if parsed, err := uuid.Parse(actorID); err == nil {
		userID = &parsed
	}
	entry := &model.EntityUsageLog{
		UserID: userID,
		Target: model.Ref{Kind: kind, ID: targetID},
		Action: action,
	}
	if err := r.usageLog.Create(entry); err != nil {
		r.log.Warn("failed to record usage log", zap.Error(err))
	}
}
