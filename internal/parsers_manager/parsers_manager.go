// описание структуры мэнеджера парсеров и его конструктора
package parsers_manager

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"language_salary/internal/domain/models"
	"language_salary/internal/interfaces"
	"language_salary/internal/logger"
	"language_salary/internal/report"
	"language_salary/internal/statistics"
)

// структура менеджера парсеров: по очереди гоняет языки через каждый парсер и печатает таблицы
type ParsersManager struct {
	parsers   []interfaces.Parser // парсеры в порядке вывода таблиц
	languages []string            // языки в порядке строк таблицы
	logger    *slog.Logger
}

// Конструктор для мэнеджера парсинга из разных источников
func NewParserManager(languages []string, log *slog.Logger, parsers ...interfaces.Parser) (*ParsersManager, error) {
	if len(parsers) == 0 {
		return nil, errors.New("нужен хотя бы один парсер")
	}
	if len(languages) == 0 {
		return nil, errors.New("нужен хотя бы один язык")
	}
	if log == nil {
		log = logger.Discard()
	}

	return &ParsersManager{
		parsers:   parsers,
		languages: languages,
		logger:    log,
	}, nil
}

// GetParserNames возвращает список доступных парсеров
func (pm *ParsersManager) GetParserNames() []string {
	names := make([]string, len(pm.parsers))
	for i, parser := range pm.parsers {
		names[i] = parser.GetName()
	}
	return names
}

// CollectStatistics собирает по одной строке на язык: выкачка -> оценка зарплат -> сводка.
// Строки идут в порядке списка языков
func (pm *ParsersManager) CollectStatistics(ctx context.Context, parser interfaces.Parser) ([]models.LanguageStatistics, error) {
	rows := make([]models.LanguageStatistics, 0, len(pm.languages))

	for _, language := range pm.languages {
		vacancies, err := parser.FetchVacancies(ctx, language)
		if err != nil {
			return rows, fmt.Errorf("[%s] fetch %s vacancies: %w", parser.GetName(), language, err)
		}

		estimates := make([]models.SalaryEstimate, len(vacancies))
		for i, vacancy := range vacancies {
			estimates[i] = parser.PredictRubSalary(vacancy)
		}

		row := statistics.Collect(language, vacancies, estimates)
		pm.logger.Info("язык обработан",
			"parser", parser.GetName(), "language", language,
			"found", row.Found, "processed", row.Processed, "average_salary", row.AverageSalary)

		rows = append(rows, row)
	}

	return rows, nil
}

// Run собирает статистику по каждому парсеру и печатает по таблице на парсер
func (pm *ParsersManager) Run(ctx context.Context, w io.Writer) error {
	for _, parser := range pm.parsers {
		rows, err := pm.CollectStatistics(ctx, parser)
		if err != nil {
			return err
		}

		if err := report.Render(w, parser.GetTitle(), rows); err != nil {
			return err
		}
	}
	return nil
}
