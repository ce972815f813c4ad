package get_available_windows

import (
	"github.com/m04kA/SMC-GarageService/internal/domain"
	getAvailableWindows "github.com/m04kA/SMC-GarageService/internal/usecase/get_available_windows"
)

// WindowResponse доступное окно для записи
type WindowResponse struct {
	SlotIDs   []int64 `json:"slotIds"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
}

// AvailableWindowsResponse HTTP response model
type AvailableWindowsResponse struct {
	MechanicID int64            `json:"mechanicId"`
	ServiceID  int64            `json:"serviceId"`
	Windows    []WindowResponse `json:"windows"`
	Total      int              `json:"total"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableWindows.Response) *AvailableWindowsResponse {
	windows := make([]WindowResponse, 0, len(resp.Windows))
	for _, window := range resp.Windows {
		windows = append(windows, WindowResponse{
			SlotIDs:   window.SlotIDs,
			Date:      window.Date.Format(domain.DateFormat),
			StartTime: window.StartTime.Format(domain.TimeFormat),
			EndTime:   window.EndTime.Format(domain.TimeFormat),
		})
	}

	return &AvailableWindowsResponse{
		MechanicID: resp.MechanicID,
		ServiceID:  resp.ServiceID,
		Windows:    windows,
		Total:      len(windows),
	}
}
