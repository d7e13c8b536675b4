package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type WeeklyScheduleMailData struct {
	LocationName string  `json:"locationName"`
	WeekStart    string  `json:"weekStart"`
	WeekEnd      string  `json:"weekEnd"`
	Assignments  int     `json:"assignments"`
	TotalHours   float64 `json:"totalHours"`
	CSV          string  `json:"csv"`
}
