package statistics

import "language_salary/internal/domain/models"

// Collect сводит вакансии по языку в строку таблицы.
// estimates идут в том же порядке, что и vacancies; невалидные оценки не участвуют в среднем.
// Если оценок нет совсем, средняя зарплата - 0
func Collect(language string, vacancies []models.Vacancy, estimates []models.SalaryEstimate) models.LanguageStatistics {
	stats := models.LanguageStatistics{
		Language: language,
		Found:    len(vacancies),
	}

	total := 0
	for _, estimate := range estimates {
		if !estimate.Valid {
			continue
		}
		total += estimate.Rub
		stats.Processed++
	}

	if stats.Processed > 0 {
		stats.AverageSalary = total / stats.Processed
	}

	return stats
}
