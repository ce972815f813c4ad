package create_appointment

import (
	"github.com/m04kA/SMC-GarageService/internal/domain"
	createAppointment "github.com/m04kA/SMC-GarageService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
// ID клиента берется из контекста аутентификации, а не из тела
type CreateAppointmentRequest struct {
	MechanicID int64 `json:"mechanicId"`
	ServiceID  int64 `json:"serviceId"`
	TimeSlotID int64 `json:"timeSlotId"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	AppointmentID int64  `json:"appointmentId"`
	Status        string `json:"status"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(clientID int64) *createAppointment.Request {
	return &createAppointment.Request{
		ClientID:   clientID,
		MechanicID: r.MechanicID,
		ServiceID:  r.ServiceID,
		TimeSlotID: r.TimeSlotID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		AppointmentID: resp.AppointmentID,
		Status:        resp.Status,
		Date:          resp.StartTime.Format(domain.DateFormat),
		StartTime:     resp.StartTime.Format(domain.TimeFormat),
		EndTime:       resp.EndTime.Format(domain.TimeFormat),
	}
}
