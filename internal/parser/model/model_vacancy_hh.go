package model

// HHVacancy представляет структуру вакансии с HH.ru
type HHVacancy struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Salary   *Salary  `json:"salary"` // null, если зарплата не указана
	Employer Employer `json:"employer"`
	Area     Area     `json:"area"`
	URL      string   `json:"alternate_url"`
}

// Salary представляет информацию о зарплате. Любая граница может быть null
type Salary struct {
	From     *int   `json:"from"`
	To       *int   `json:"to"`
	Currency string `json:"currency"`
	Gross    *bool  `json:"gross"`
}

// Employer представляет информацию о работодателе
type Employer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Area представляет информацию о местоположении
type Area struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SearchResponse представляет ответ от API HH.ru
type SearchResponse struct {
	Items   []HHVacancy `json:"items"`
	Found   int         `json:"found"`
	Pages   int         `json:"pages"`
	Page    int         `json:"page"`
	PerPage int         `json:"per_page"`
}
