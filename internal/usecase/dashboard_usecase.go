package usecase

import (
	"context"
	"time"

	"hospital-management-service/internal/delivery/dto"
	"hospital-management-service/internal/domain/entity"
	"hospital-management-service/internal/domain/repository"
	"hospital-management-service/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DashboardUsecase interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
	GetQueueBoard(ctx context.Context, doctorID uuid.UUID, dateStr string) (*dto.QueueBoardResponse, error)
}

type dashboardUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorProfileRepository
	queueBoard      *service.QueueBoardService
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorProfileRepository,
	queueBoard *service.QueueBoardService,
) DashboardUsecase {
	return &dashboardUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		queueBoard:      queueBoard,
	}
}

// GetStats returns today's headline numbers for the dashboard
func (u *dashboardUsecase) GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	db := u.db.WithContext(ctx)
	today := time.Now()

	totalPatients, err := u.patientRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}

	todayAppointments, err := u.appointmentRepo.CountByDate(db, today)
	if err != nil {
		u.log.Warnf("Failed to count today's appointments: %+v", err)
		return nil, err
	}

	todayCompleted, err := u.appointmentRepo.CountByDateAndStatus(db, today, entity.AppointmentStatusCompleted)
	if err != nil {
		u.log.Warnf("Failed to count completed appointments: %+v", err)
		return nil, err
	}

	todayCancelled, err := u.appointmentRepo.CountByDateAndStatus(db, today, entity.AppointmentStatusCancelled)
	if err != nil {
		u.log.Warnf("Failed to count cancelled appointments: %+v", err)
		return nil, err
	}

	return &dto.DashboardStatsResponse{
		TotalPatients:     totalPatients,
		TodayAppointments: todayAppointments,
		TodayCompleted:    todayCompleted,
		TodayCancelled:    todayCancelled,
	}, nil
}

// GetQueueBoard returns the waiting-room display for a doctor's day: the
// highest token issued and the token currently being served. The numbers
// come from Redis; a missing key reads as zero, not an error.
func (u *dashboardUsecase) GetQueueBoard(ctx context.Context, doctorID uuid.UUID, dateStr string) (*dto.QueueBoardResponse, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, ErrInvalidDate
	}

	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	issued, serving, err := u.queueBoard.Snapshot(ctx, doctorID.String(), date)
	if err != nil {
		u.log.Warnf("Failed to read queue board for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.QueueBoardResponse{
		DoctorID:     doctorID,
		DoctorName:   doctor.User.FullName,
		Date:         date.Format("2006-01-02"),
		TokensIssued: issued,
		NowServing:   serving,
	}, nil
}
