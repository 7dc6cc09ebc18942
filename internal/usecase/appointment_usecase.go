package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"hospital-management-service/config"
	"hospital-management-service/internal/converter"
	"hospital-management-service/internal/delivery/dto"
	"hospital-management-service/internal/delivery/http/middleware"
	"hospital-management-service/internal/domain/entity"
	"hospital-management-service/internal/domain/repository"
	"hospital-management-service/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrSlotUnavailable     = errors.New("slot is not available")
	ErrInvalidTransition   = errors.New("status transition not allowed")
	ErrInvalidStatus       = errors.New("invalid appointment status")
	ErrInvalidType         = errors.New("invalid appointment type")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	GetAllAppointments(ctx context.Context, page, limit int, filter *entity.AppointmentFilter) ([]dto.AppointmentResponse, int64, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	scheduling      config.SchedulingConfig
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorProfileRepository
	patientRepo     repository.PatientRepository
	locker          *service.KeyedLocker
	queueBoard      *service.QueueBoardService
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	scheduling config.SchedulingConfig,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorProfileRepository,
	patientRepo repository.PatientRepository,
	locker *service.KeyedLocker,
	queueBoard *service.QueueBoardService,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		scheduling:      scheduling,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		locker:          locker,
		queueBoard:      queueBoard,
		auditService:    auditService,
	}
}

// CreateAppointment books a slot for a patient.
//
// Flow:
// 1. Validate date, time and type inputs
// 2. Validate patient and doctor exist
// 3. Acquire the (doctor, date) booking lock
// 4. In one transaction: re-check the slot is still free, assign
//    token = max(token)+1, insert, write the audit row
// 5. Post-commit: publish the token to the queue board (non-fatal)
//
// The re-check at step 4 closes the race between slot listing and booking:
// a slot taken concurrently fails with ErrSlotUnavailable instead of
// double-booking. The partial unique index on (doctor_id, date, start_time)
// is the database-level backstop.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	startTime, err := parseStartTime(req.StartTime)
	if err != nil {
		return nil, err
	}

	appointmentType := entity.AppointmentType(req.Type)
	if !typeAllowed(appointmentType, u.scheduling.TypeSet) {
		return nil, ErrInvalidType
	}

	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil || !doctor.AcceptsAppointments() {
		return nil, ErrDoctorNotFound
	}

	// Serialize bookings per (doctor, date): slot re-check, token assignment
	// and insert must be one unit for a given doctor's day.
	unlock := u.locker.Lock(service.BookingKey(req.DoctorID, date))
	defer unlock()

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.bookSlot(tx, doctor, req, date, startTime, appointmentType)
	if err != nil {
		return nil, err
	}

	actorID := actorFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, actorID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), entity.JSON{
		"appointment_no": appointment.AppointmentNo,
		"doctor_id":      appointment.DoctorID.String(),
		"patient_id":     appointment.PatientID.String(),
		"date":           req.Date,
		"start_time":     startTime,
		"token_no":       appointment.TokenNo,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit booking transaction: %+v", err)
		return nil, err
	}

	// Queue board update is display-only; failures are logged, not returned
	boardCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := u.queueBoard.PublishToken(boardCtx, appointment.DoctorID.String(), date, appointment.TokenNo); err != nil {
		u.log.Warnf("Failed to publish token to queue board (non-fatal): %+v", err)
	}

	u.log.Infof("Appointment created: id=%s, no=%s, doctor=%s, date=%s, slot=%s, token=%d",
		appointment.ID, appointment.AppointmentNo, appointment.DoctorID, req.Date, startTime, appointment.TokenNo)

	full, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}
	return converter.AppointmentToResponse(full), nil
}

// UpdateStatus drives an appointment along the workflow state machine.
// The conditional UPDATE guarded by the current status makes concurrent
// transitions on the same appointment mutually exclusive: only one wins,
// the loser gets ErrInvalidTransition.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	target := entity.AppointmentStatus(req.Status)
	if !target.IsValid() {
		return nil, ErrInvalidStatus
	}

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if !appointment.Status.CanTransitionTo(target) {
		return nil, ErrInvalidTransition
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.appointmentRepo.UpdateStatusFrom(tx, appointmentID, appointment.Status, target)
	if err != nil {
		u.log.Warnf("Failed to update appointment %s status: %+v", appointmentID, err)
		return nil, err
	}
	if affected == 0 {
		// Lost a concurrent transition; the starting state no longer holds
		return nil, ErrInvalidTransition
	}

	action := entity.AuditActionAppointmentStatus
	if target == entity.AppointmentStatusCancelled {
		action = entity.AuditActionAppointmentCancel
	}
	actorID := actorFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, actorID, action, "appointment", appointmentID.String(),
		string(appointment.Status), string(target)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit status transition: %+v", err)
		return nil, err
	}

	if target == entity.AppointmentStatusInProgress {
		boardCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := u.queueBoard.SetNowServing(boardCtx, appointment.DoctorID.String(), appointment.Date, appointment.TokenNo); err != nil {
			u.log.Warnf("Failed to update now-serving on queue board (non-fatal): %+v", err)
		}
	}

	u.log.Infof("Appointment %s: %s -> %s", appointmentID, appointment.Status, target)

	appointment.Status = target
	return converter.AppointmentToResponse(appointment), nil
}

// CancelAppointment is sugar for a transition to CANCELLED, valid only from
// SCHEDULED or CHECKED_IN. The released slot reappears in slot listings.
func (u *appointmentUsecase) CancelAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	return u.UpdateStatus(ctx, appointmentID, &dto.UpdateAppointmentStatusRequest{
		Status: string(entity.AppointmentStatusCancelled),
	})
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context, page, limit int, filter *entity.AppointmentFilter) ([]dto.AppointmentResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	if filter != nil {
		if filter.Status != "" && !filter.Status.IsValid() {
			return nil, 0, ErrInvalidStatus
		}
		if filter.Date != "" {
			if _, err := time.Parse("2006-01-02", filter.Date); err != nil {
				return nil, 0, ErrInvalidDate
			}
		}
	}

	offset := (page - 1) * limit
	appointments, total, err := u.appointmentRepo.FindPage(u.db.WithContext(ctx), filter, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, 0, err
	}

	return converter.AppointmentsToResponses(appointments), total, nil
}

// bookSlot runs the critical section of a booking: re-check the slot is
// still free, assign token = max(token)+1 and insert. Callers hold the
// booking lock for the (doctor, date) pair and pass the open transaction.
// Tokens count cancelled rows too, so a number is never handed out twice
// for the same doctor's day.
func (u *appointmentUsecase) bookSlot(tx *gorm.DB, doctor *entity.DoctorProfile, req *dto.CreateAppointmentRequest, date time.Time, startTime string, appointmentType entity.AppointmentType) (*entity.Appointment, error) {
	blocking, err := u.appointmentRepo.FindBlockingByDoctorAndDate(tx, req.DoctorID, date)
	if err != nil {
		u.log.Warnf("Failed to list blocking appointments: %+v", err)
		return nil, err
	}

	if !slotIsFree(doctor, date, blocking, startTime) {
		return nil, ErrSlotUnavailable
	}

	maxToken, err := u.appointmentRepo.MaxTokenNo(tx, req.DoctorID, date)
	if err != nil {
		u.log.Warnf("Failed to read max token number: %+v", err)
		return nil, err
	}

	appointment := &entity.Appointment{
		AppointmentNo: generateAppointmentNo(date),
		PatientID:     req.PatientID,
		DoctorID:      req.DoctorID,
		Date:          date,
		StartTime:     startTime,
		DurationMin:   doctor.SlotDurationMin,
		TokenNo:       maxToken + 1,
		Type:          appointmentType,
		Status:        entity.AppointmentStatusScheduled,
		Reason:        req.Reason,
		Notes:         req.Notes,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "appointments_slot") {
			return nil, ErrSlotUnavailable
		}
		u.log.Warnf("Failed to insert appointment: %+v", err)
		return nil, err
	}

	return appointment, nil
}

// parseStartTime validates a clock value and normalizes it to zero-padded
// HH:MM so it can match generated slot times
func parseStartTime(value string) (string, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return "", ErrInvalidTime
	}
	return t.Format("15:04"), nil
}

// slotIsFree reports whether startTime is currently in the doctor's
// available-slot listing for the date
func slotIsFree(doctor *entity.DoctorProfile, date time.Time, blocking []entity.Appointment, startTime string) bool {
	for _, slot := range availableSlots(doctor, date, blocking) {
		if slot == startTime {
			return true
		}
	}
	return false
}

// typeAllowed checks the requested type against the configured vocabulary
func typeAllowed(t entity.AppointmentType, typeSet string) bool {
	for _, allowed := range entity.AppointmentTypeSet(typeSet) {
		if t == allowed {
			return true
		}
	}
	return false
}

// generateAppointmentNo generates a unique appointment number: APT-YYYYMMDD-XXXXXX
func generateAppointmentNo(date time.Time) string {
	dateStr := date.Format("20060102")
	randomBytes := make([]byte, 3)
	rand.Read(randomBytes)
	return fmt.Sprintf("APT-%s-%06X", dateStr, randomBytes)
}

// actorFromContext returns the authenticated user for audit attribution,
// nil for unauthenticated callers
func actorFromContext(ctx context.Context) *uuid.UUID {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil
	}
	return &userID
}
