package models

// общая структура поиска: один язык, одна страница
type SearchParams struct {
	Language string
	Page     int
}

// Стуктура общей вакансии для всех ответов
type Vacancy struct {
	ID       string
	Job      string
	Company  string
	Salary   *Salary // nil - сервис не прислал блок зарплаты
	Location string
	URL      string
	Source   string // "HH.ru", "SuperJob.ru", ...
}

// Salary представляет вилку зарплаты. 0 - граница не указана
type Salary struct {
	From     int
	To       int
	Currency string
}

// SalaryEstimate - оценка зарплаты в рублях. Valid == false - данных для оценки нет
type SalaryEstimate struct {
	Rub   int
	Valid bool
}

// строка итоговой таблицы по одному языку.
// AverageSalary == 0, если Processed == 0
type LanguageStatistics struct {
	Language      string
	Found         int
	Processed     int
	AverageSalary int
}
