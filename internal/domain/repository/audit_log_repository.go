package repository

import (
	"hospital-management-service/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, auditLog *entity.AuditLog) error
	FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error)
	FindPage(db *gorm.DB, limit, offset int) ([]entity.AuditLog, int64, error)
}
