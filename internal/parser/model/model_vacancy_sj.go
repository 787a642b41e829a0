package model

// Структуры для SuperJob API
type SuperJobResponse struct {
	Items []SJVacancy `json:"objects"`
	Total int         `json:"total"`
	More  bool        `json:"more"`
}

// зарплата у SuperJob плоская: payment_from / payment_to / currency, 0 - не указано
type SJVacancy struct {
	ID          int    `json:"id"`
	Profession  string `json:"profession"`
	FirmName    string `json:"firm_name"`
	PaymentFrom int    `json:"payment_from"`
	PaymentTo   int    `json:"payment_to"`
	Currency    string `json:"currency"`
	Town        Town   `json:"town"`
	Link        string `json:"link"`
}

type Town struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}
