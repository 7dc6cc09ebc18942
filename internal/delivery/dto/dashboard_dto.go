package dto

import "github.com/google/uuid"

// Response DTOs

type DashboardStatsResponse struct {
	TotalPatients     int64 `json:"total_patients"`
	TodayAppointments int64 `json:"today_appointments"`
	TodayCompleted    int64 `json:"today_completed"`
	TodayCancelled    int64 `json:"today_cancelled"`
}

type QueueBoardResponse struct {
	DoctorID     uuid.UUID `json:"doctor_id"`
	DoctorName   string    `json:"doctor_name"`
	Date         string    `json:"date"`
	TokensIssued int       `json:"tokens_issued"`
	NowServing   int       `json:"now_serving"`
}
