// Package outboxrepo stores parcel domain events in the outbox_messages table until the
// relay job has published them.
package outboxrepo

import (
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/ports"

	"github.com/google/uuid"
)

type OutboxMessageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Seq         int64      `gorm:"type:bigserial;<-:false;index"`
	EventName   string     `gorm:"type:varchar(64);not null"`
	AggregateID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Payload     []byte     `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time  `gorm:"not null"`
	SentAt      *time.Time `gorm:"index"`
}

func (OutboxMessageDTO) TableName() string {
	return "outbox_messages"
}

func fromDomain(msg ports.OutboxMessage) OutboxMessageDTO {
	return OutboxMessageDTO{
		ID:          msg.ID.Google(),
		EventName:   msg.EventName,
		AggregateID: msg.AggregateID.Google(),
		Payload:     msg.Payload,
		OccurredAt:  msg.OccurredAt,
	}
}

func toDomain(dto OutboxMessageDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	aggregateID, err := kernel.UUIDFromGoogle(dto.AggregateID)
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:          id,
		EventName:   dto.EventName,
		AggregateID: aggregateID,
		Payload:     dto.Payload,
		OccurredAt:  dto.OccurredAt,
	}, nil
}
