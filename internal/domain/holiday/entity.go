package holiday

import "time"

// Holiday is a company-wide non-working day.
type Holiday struct {
	ID        string
	Name      string
	Date      time.Time
	CreatedAt time.Time
}

type HolidayResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
}

func ToResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:   h.ID,
		Name: h.Name,
		Date: h.Date.Format("2006-01-02"),
	}
}
