package service

import (
	"context"
	"encoding/json"
	"fmt"

	"interview-scheduler/internal/domain/entity"
	"interview-scheduler/internal/domain/repository"
	"interview-scheduler/internal/pkg/logger"
)

// auditor writes audit entries best-effort; failures are only logged.
type auditor struct {
	repo repository.AuditRepository
	log  logger.Logger
}

func newAuditor(repo repository.AuditRepository, log logger.Logger) *auditor {
	return &auditor{repo: repo, log: log}
}

func (a *auditor) record(ctx context.Context, actor, action, entityName, entityID string, details any) {
	if a == nil || a.repo == nil {
		return
	}
	raw, err := json.Marshal(details)
	if err != nil {
		raw = []byte("null")
	}
	e := &entity.AuditEntry{
		ActorEmail: entity.NormalizeEmail(actor),
		Action:     action,
		Entity:     entityName,
		EntityID:   entityID,
		Details:    string(raw),
	}
	if err := a.repo.Create(ctx, e); err != nil {
		a.log.Error(fmt.Sprintf("Failed to write audit entry %s %s/%s", action, entityName, entityID), err)
	}
}
