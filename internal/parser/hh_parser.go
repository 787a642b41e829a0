package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"language_salary/configs"
	"language_salary/internal/domain/models"
	"language_salary/internal/interfaces"
	"language_salary/internal/parser/model"
)

// создаём стркутуру парсера для HH.ru на базе общего парсера
type HHParser struct {
	*BaseParser
	searchText string
	filters    configs.SearchFilters
	perPage    int
	headers    http.Header
}

// конструктор для парсера HH.ru
func NewHHParser(cfg *configs.ParserInstanceConfig, opts Options) (interfaces.Parser, error) {
	if cfg == nil {
		cfg = configs.DefaultParsersConfig().HH
	}

	baseParser, err := NewBaseParser(baseConfig("HH.ru", cfg, opts))
	if err != nil {
		return nil, fmt.Errorf("create HH.ru parser: %w", err)
	}

	headers := http.Header{}
	if cfg.UserAgent != "" {
		headers.Set("User-Agent", cfg.UserAgent)
	}

	return &HHParser{
		BaseParser: baseParser,
		searchText: opts.SearchText,
		filters:    cfg.Search,
		perPage:    cfg.PerPage,
		headers:    headers,
	}, nil
}

// метод парсера для выкачки всех вакансий по языку
func (p *HHParser) FetchVacancies(ctx context.Context, language string) ([]models.Vacancy, error) {
	return p.BaseParser.FetchVacancies(ctx, language, ParserFuncs{
		BuildURL:    p.buildURL,
		Headers:     p.headers,
		Parse:       p.parseResponseSearchVacancies,
		HasNextPage: p.hasNextPage,
		Query:       p.query,
	})
}

// текст запроса: профессия и, если задан, язык
func (p *HHParser) query(language string) string {
	return strings.TrimSpace(p.searchText + " " + language)
}

// HH.ru отдаёт общее число страниц
func (p *HHParser) hasNextPage(page int, last PageResult) bool {
	return page < last.Pages
}

// buildURL строит URL для API запроса для поиска списка вакансий
func (p *HHParser) buildURL(params models.SearchParams) (string, error) {
	u, err := url.Parse(p.baseURL)
	if err != nil {
		return "", err
	}

	query := u.Query()

	if p.filters.Area > 0 {
		query.Set("area", strconv.Itoa(p.filters.Area))
	}
	if p.filters.Period > 0 {
		query.Set("period", strconv.Itoa(p.filters.Period))
	}
	if p.filters.SearchField != "" {
		query.Set("search_field", p.filters.SearchField)
	}
	if text := p.query(params.Language); text != "" {
		query.Set("text", text)
	}
	if p.perPage > 0 {
		query.Set("per_page", strconv.Itoa(p.perPage))
	}
	// HH.ru использует 0-based страницы
	query.Set("page", strconv.Itoa(params.Page))

	u.RawQuery = query.Encode()
	return u.String(), nil
}

// метод парсера обработки тела ответа
func (p *HHParser) parseResponseSearchVacancies(body []byte) (PageResult, error) {
	var searchResponse model.SearchResponse
	if err := json.Unmarshal(body, &searchResponse); err != nil {
		return PageResult{}, fmt.Errorf("[Parser name: %s] parse response body - failed: %w", p.name, err)
	}

	return PageResult{
		Vacancies: p.convertToUniversal(searchResponse.Items),
		Pages:     searchResponse.Pages,
	}, nil
}

// метод приведения результатов поиска к унифицированной структуре
func (p *HHParser) convertToUniversal(items []model.HHVacancy) []models.Vacancy {
	universalVacancies := make([]models.Vacancy, len(items))

	for i, hhvacancy := range items {
		universalVacancies[i] = models.Vacancy{
			ID:       hhvacancy.ID,
			Job:      hhvacancy.Name,
			Company:  hhvacancy.Employer.Name,
			Salary:   convertHHSalary(hhvacancy.Salary),
			Location: hhvacancy.Area.Name,
			URL:      hhvacancy.URL,
			Source:   p.GetName(),
		}
	}

	return universalVacancies
}

// null-границы превращаются в 0
func convertHHSalary(salary *model.Salary) *models.Salary {
	if salary == nil {
		return nil
	}

	converted := &models.Salary{Currency: salary.Currency}
	if salary.From != nil {
		converted.From = *salary.From
	}
	if salary.To != nil {
		converted.To = *salary.To
	}
	return converted
}
