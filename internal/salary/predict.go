// оценка зарплаты по вилке
package salary

import "language_salary/internal/domain/models"

const (
	fromOnlyFactor = 1.2 // указана только нижняя граница
	toOnlyFactor   = 0.8 // указана только верхняя граница
)

// Predict считает ожидаемую зарплату по вилке. Граница, равная 0, считается не указанной
func Predict(from, to int) models.SalaryEstimate {
	hasFrom, hasTo := from != 0, to != 0

	switch {
	case hasFrom && hasTo:
		return models.SalaryEstimate{Rub: (from + to) / 2, Valid: true}
	case hasFrom:
		return models.SalaryEstimate{Rub: int(float64(from) * fromOnlyFactor), Valid: true}
	case hasTo:
		return models.SalaryEstimate{Rub: int(float64(to) * toOnlyFactor), Valid: true}
	default:
		return models.SalaryEstimate{}
	}
}

// PredictRub оценивает зарплату только для вакансий в рублях.
// rubCode - код рубля так, как его пишет конкретный сервис
func PredictRub(vacancy models.Vacancy, rubCode string) models.SalaryEstimate {
	if vacancy.Salary == nil || vacancy.Salary.Currency != rubCode {
		return models.SalaryEstimate{}
	}
	return Predict(vacancy.Salary.From, vacancy.Salary.To)
}
