package logger

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type ContractStatusEvent struct {
	ID         uint `gorm:"primaryKey"`
	ContractID string
	BrandID    string
	FromStatus string
	ToStatus   string
	Timestamp  time.Time
}

type EscrowStatusEvent struct {
	ID         uint `gorm:"primaryKey"`
	EscrowID   string
	ContractID string
	FromStatus string
	ToStatus   string
	Reason     string
	Timestamp  time.Time
}

// StatusEventLogger is the audit trail of lifecycle transitions.
type StatusEventLogger interface {
	LogContractStatus(ctx context.Context, event ContractStatusEvent) error
	LogEscrowStatus(ctx context.Context, event EscrowStatusEvent) error
}

type PGStatusEventLogger struct {
	db *gorm.DB
}

func NewPGStatusEventLogger(db *gorm.DB) *PGStatusEventLogger {
	db.AutoMigrate(&ContractStatusEvent{}, &EscrowStatusEvent{})
	return &PGStatusEventLogger{db: db}
}

func (l *PGStatusEventLogger) LogContractStatus(ctx context.Context, event ContractStatusEvent) error {
	return l.db.WithContext(ctx).Create(&event).Error
}

func (l *PGStatusEventLogger) LogEscrowStatus(ctx context.Context, event EscrowStatusEvent) error {
	return l.db.WithContext(ctx).Create(&event).Error
}
