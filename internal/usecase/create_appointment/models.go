package create_appointment

import "time"

// Request модель запроса на бронирование
type Request struct {
	ClientID   int64 // ID клиента
	MechanicID int64 // ID механика
	ServiceID  int64 // ID услуги
	TimeSlotID int64 // Якорный слот: бронирование начинается с его времени
}

// Response модель ответа с созданной записью
type Response struct {
	AppointmentID int64
	Status        string    // "confirmed"
	StartTime     time.Time // Начало записи
	EndTime       time.Time // StartTime + длительность услуги
}
