package outboxrepo

import (
	"context"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db   *gorm.DB
	inTx bool
}

// NewGormOutboxRepository binds the repository to db. Inside a transaction FetchPending
// locks the rows it returns and skips rows locked by another relay.
func NewGormOutboxRepository(db *gorm.DB, inTx bool) *GormOutboxRepository {
	return &GormOutboxRepository{db: db, inTx: inTx}
}

// Append stores messages as unsent. The unit of work calls it on commit.
func (r *GormOutboxRepository) Append(ctx context.Context, messages []ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	dtos := make([]OutboxMessageDTO, 0, len(messages))
	for _, msg := range messages {
		dtos = append(dtos, fromDomain(msg))
	}
	return r.db.WithContext(ctx).Create(&dtos).Error
}

// FetchPending returns up to limit unsent messages, oldest first. A limit of zero or
// less returns all of them.
func (r *GormOutboxRepository) FetchPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	db := r.db.WithContext(ctx).Where("sent_at IS NULL").Order("occurred_at").Order("seq")
	if limit > 0 {
		db = db.Limit(limit)
	}
	if r.inTx {
		db = db.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"})
	}

	var dtos []OutboxMessageDTO
	if err := db.Find(&dtos).Error; err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		msg, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func (r *GormOutboxRepository) MarkSent(ctx context.Context, id kernel.UUID, sentAt time.Time) error {
	sentAt = sentAt.UTC()
	result := r.db.WithContext(ctx).Model(&OutboxMessageDTO{}).
		Where("id = ?", id.Google()).
		Update("sent_at", &sentAt)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outboxMessage", id.String())
	}
	return nil
}
