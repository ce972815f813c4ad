package generate_slots

import (
	"time"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	generateSlots "github.com/m04kA/SMC-GarageService/internal/usecase/generate_slots"
	"github.com/m04kA/SMC-GarageService/pkg/types"
)

// GenerateSlotsRequest HTTP request model
type GenerateSlotsRequest struct {
	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "13:00"
}

// SlotResponse краткое описание созданного слота
type SlotResponse struct {
	ID        int64  `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// GenerateSlotsResponse HTTP response model
type GenerateSlotsResponse struct {
	Status string         `json:"status"`
	Date   string         `json:"date"`
	Slots  []SlotResponse `json:"slots"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case,
// совмещая дату и время суток в абсолютные моменты
func (r *GenerateSlotsRequest) ToUseCaseRequest(mechanicID int64) (*generateSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	start, err := combine(date, r.StartTime)
	if err != nil {
		return nil, err
	}

	end, err := combine(date, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &generateSlots.Request{
		MechanicID: mechanicID,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(date string, resp *generateSlots.Response) *GenerateSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			ID:        slot.ID,
			StartTime: slot.StartTime.Format(domain.TimeFormat),
			EndTime:   slot.EndTime.Format(domain.TimeFormat),
		})
	}

	return &GenerateSlotsResponse{
		Status: resp.Status,
		Date:   date,
		Slots:  slots,
	}
}

func combine(date time.Time, timeOfDay string) (time.Time, error) {
	ts, err := types.NewTimeStringFromString(timeOfDay)
	if err != nil {
		return time.Time{}, err
	}

	offset, err := ts.Duration()
	if err != nil {
		return time.Time{}, err
	}

	return date.Add(offset), nil
}
