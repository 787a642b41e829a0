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

// создаём стркутуру парсера для SuperJob.ru на базе общего парсера
type SJParser struct {
	*BaseParser
	searchText string
	filters    configs.SearchFilters
	perPage    int
	headers    http.Header
}

// конструктор для парсера SuperJob.ru. Без API ключа сервис не отвечает, поэтому ключ обязателен
func NewSJParser(cfg *configs.ParserInstanceConfig, opts Options) (interfaces.Parser, error) {
	if cfg == nil {
		cfg = configs.DefaultParsersConfig().SuperJob
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("create SuperJob.ru parser: %w", configs.ErrMissingSecretKey)
	}

	baseParser, err := NewBaseParser(baseConfig("SuperJob.ru", cfg, opts))
	if err != nil {
		return nil, fmt.Errorf("create SuperJob.ru parser: %w", err)
	}

	headers := http.Header{}
	headers.Set("X-Api-App-Id", cfg.APIKey)
	if cfg.UserAgent != "" {
		headers.Set("User-Agent", cfg.UserAgent)
	}

	return &SJParser{
		BaseParser: baseParser,
		searchText: opts.SearchText,
		filters:    cfg.Search,
		perPage:    cfg.PerPage,
		headers:    headers,
	}, nil
}

// метод парсера для выкачки всех вакансий по языку
func (p *SJParser) FetchVacancies(ctx context.Context, language string) ([]models.Vacancy, error) {
	return p.BaseParser.FetchVacancies(ctx, language, ParserFuncs{
		BuildURL:    p.buildURL,
		Headers:     p.headers,
		Parse:       p.parseResponseSearchVacancies,
		HasNextPage: p.hasNextPage,
		Query:       p.query,
	})
}

// в SuperJob ищем по ключевому слову языка, профессию задаёт каталог. В лог пишем полный запрос
func (p *SJParser) query(language string) string {
	return strings.TrimSpace(p.searchText + " " + language)
}

// SuperJob отдаёт флаг наличия следующей страницы
func (p *SJParser) hasNextPage(_ int, last PageResult) bool {
	return last.More
}

// buildURL строит URL для API запроса для поиска списка вакансий
func (p *SJParser) buildURL(params models.SearchParams) (string, error) {
	u, err := url.Parse(p.baseURL)
	if err != nil {
		return "", err
	}

	query := u.Query()

	if p.filters.Catalogues > 0 {
		query.Set("catalogues", strconv.Itoa(p.filters.Catalogues))
	}
	if p.filters.NoAgreement {
		query.Set("no_agreement", "1")
	}
	if p.filters.Town > 0 {
		query.Set("town", strconv.Itoa(p.filters.Town))
	}
	if params.Language != "" {
		query.Set("keyword", params.Language)
	}
	if p.perPage > 0 {
		query.Set("count", strconv.Itoa(p.perPage))
	}
	// SuperJob использует 0-based страницы
	query.Set("page", strconv.Itoa(params.Page))

	u.RawQuery = query.Encode()
	return u.String(), nil
}

// метод парсера обработки тела ответа
func (p *SJParser) parseResponseSearchVacancies(body []byte) (PageResult, error) {
	var searchResponse model.SuperJobResponse
	if err := json.Unmarshal(body, &searchResponse); err != nil {
		return PageResult{}, fmt.Errorf("[Parser name: %s] parse response body - failed: %w", p.name, err)
	}

	return PageResult{
		Vacancies: p.convertToUniversal(searchResponse.Items),
		More:      searchResponse.More,
	}, nil
}

// метод приведения результатов поиска к унифицированной структуре
func (p *SJParser) convertToUniversal(items []model.SJVacancy) []models.Vacancy {
	universalVacancies := make([]models.Vacancy, len(items))

	for i, sjv := range items {
		universalVacancies[i] = models.Vacancy{
			ID:       strconv.Itoa(sjv.ID),
			Job:      sjv.Profession,
			Company:  sjv.FirmName,
			Salary:   convertSJSalary(sjv),
			Location: sjv.Town.Title,
			URL:      sjv.Link,
			Source:   p.GetName(),
		}
	}
	return universalVacancies
}

// вакансия без валюты и без вилки считается вакансией без блока зарплаты
func convertSJSalary(sjv model.SJVacancy) *models.Salary {
	if sjv.Currency == "" && sjv.PaymentFrom == 0 && sjv.PaymentTo == 0 {
		return nil
	}
	return &models.Salary{
		From:     sjv.PaymentFrom,
		To:       sjv.PaymentTo,
		Currency: sjv.Currency,
	}
}
