package interfaces

import (
	"context"

	"language_salary/internal/domain/models"
)

// Parser - сервис вакансий: умеет выкачать все вакансии по языку и оценить зарплату по своей вакансии
type Parser interface {
	FetchVacancies(ctx context.Context, language string) ([]models.Vacancy, error)
	PredictRubSalary(vacancy models.Vacancy) models.SalaryEstimate
	GetName() string
	GetTitle() string
}
