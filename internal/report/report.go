// вывод итоговой таблицы со статистикой по языкам
package report

import (
	"fmt"
	"io"

	"language_salary/internal/domain/models"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// шапка таблицы, одинаковая для всех сервисов
var header = table.Row{"Язык", "Вакансий найдено", "Вакансий обработано", "Средняя зарплата"}

// Table собирает ASCII таблицу: заголовок, шапка, строки в порядке rows
func Table(title string, rows []models.LanguageStatistics) string {
	tw := table.NewWriter()

	// рамка из ASCII символов и шапка без перевода в верхний регистр
	style := table.StyleDefault
	style.Format.Header = text.FormatDefault
	tw.SetStyle(style)

	tw.SetTitle(title)
	tw.AppendHeader(header)
	for _, row := range rows {
		tw.AppendRow(table.Row{row.Language, row.Found, row.Processed, row.AverageSalary})
	}

	return tw.Render()
}

// Render печатает таблицу и пустую строку после неё
func Render(w io.Writer, title string, rows []models.LanguageStatistics) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", Table(title, rows)); err != nil {
		return fmt.Errorf("render %q table: %w", title, err)
	}
	return nil
}
