package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"hospital-management-service/internal/converter"
	"hospital-management-service/internal/delivery/dto"
	"hospital-management-service/internal/domain/entity"
	"hospital-management-service/internal/domain/repository"
	"hospital-management-service/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrInvalidWorkingHours = errors.New("invalid working hours")
	ErrInvalidWorkingDays  = errors.New("invalid working days")
)

type DoctorUsecase interface {
	GetDoctors(ctx context.Context) ([]dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	UpdateDoctor(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, doctorID uuid.UUID) error
}

type doctorUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   repository.DoctorProfileRepository
	userRepo     repository.UserRepository
	auditService service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorProfileRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		userRepo:     userRepo,
		auditService: auditService,
	}
}

// GetDoctors returns the active doctor roster
func (u *doctorUsecase) GetDoctors(ctx context.Context) ([]dto.DoctorResponse, error) {
	profiles, err := u.doctorRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}
	return converter.DoctorProfilesToResponses(profiles), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	profile, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorProfileToResponse(profile), nil
}

// UpdateDoctor applies partial updates to a doctor's profile and working
// hours. Changing the schedule only affects slot listings from now on;
// existing appointments keep their original times.
func (u *doctorUsecase) UpdateDoctor(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	profile, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	old := entity.JSON{
		"department":        profile.Department,
		"work_start":        profile.WorkStart,
		"work_end":          profile.WorkEnd,
		"slot_duration_min": profile.SlotDurationMin,
		"working_days":      profile.WorkingDays,
	}

	if req.Department != "" {
		profile.Department = req.Department
	}
	if !req.ConsultationFee.IsZero() {
		profile.ConsultationFee = req.ConsultationFee
	}
	if req.WorkStart != "" {
		profile.WorkStart = req.WorkStart
	}
	if req.WorkEnd != "" {
		profile.WorkEnd = req.WorkEnd
	}
	if req.SlotDurationMin != 0 {
		profile.SlotDurationMin = req.SlotDurationMin
	}
	if req.WorkingDays != "" {
		if err := validateWorkingDays(req.WorkingDays); err != nil {
			return nil, err
		}
		profile.WorkingDays = req.WorkingDays
	}
	if err := validateWorkingHours(profile.WorkStart, profile.WorkEnd); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.doctorRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update doctor %s: %+v", doctorID, err)
		return nil, err
	}

	if req.FullName != "" {
		user, err := u.userRepo.FindByID(tx, doctorID)
		if err != nil {
			return nil, err
		}
		if user != nil {
			user.FullName = req.FullName
			if err := u.userRepo.Update(tx, user); err != nil {
				u.log.Warnf("Failed to update doctor user %s: %+v", doctorID, err)
				return nil, err
			}
			profile.User = *user
		}
	}

	actorID := actorFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, actorID, entity.AuditActionDoctorUpdate, "doctor", doctorID.String(), old, entity.JSON{
		"department":        profile.Department,
		"work_start":        profile.WorkStart,
		"work_end":          profile.WorkEnd,
		"slot_duration_min": profile.SlotDurationMin,
		"working_days":      profile.WorkingDays,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorProfileToResponse(profile), nil
}

// DeleteDoctor deactivates the doctor's login account. The profile and past
// appointments stay for history; an inactive doctor drops out of the roster
// and takes no new bookings.
func (u *doctorUsecase) DeleteDoctor(ctx context.Context, doctorID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor user %s: %+v", doctorID, err)
		return err
	}
	if user == nil || user.RoleID != entity.RoleIDDoctor {
		return ErrDoctorNotFound
	}

	user.IsActive = false
	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to deactivate doctor %s: %+v", doctorID, err)
		return err
	}

	actorID := actorFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, tx, actorID, entity.AuditActionDoctorDelete, "doctor", doctorID.String(), entity.JSON{
		"email":     user.Email,
		"full_name": user.FullName,
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// validateWorkingHours checks both clock values parse and the window is
// non-empty
func validateWorkingHours(workStart, workEnd string) error {
	start, err := time.Parse("15:04", workStart)
	if err != nil {
		return ErrInvalidWorkingHours
	}
	end, err := time.Parse("15:04", workEnd)
	if err != nil {
		return ErrInvalidWorkingHours
	}
	if !end.After(start) {
		return ErrInvalidWorkingHours
	}
	return nil
}

// validateWorkingDays checks a comma-separated list of ISO weekday numbers
func validateWorkingDays(workingDays string) error {
	parts := strings.Split(workingDays, ",")
	if len(parts) == 0 {
		return ErrInvalidWorkingDays
	}
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 1 || n > 7 {
			return ErrInvalidWorkingDays
		}
	}
	return nil
}
