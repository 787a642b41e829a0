package parser

import (
	"context"
	"net/http"
	"testing"

	"language_salary/configs"
	"language_salary/internal/domain/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSJParser(t *testing.T, baseURL string, tune func(cfg *configs.ParserInstanceConfig)) *SJParser {
	t.Helper()
	cfg := testParserConfig(configs.DefaultParsersConfig().SuperJob, baseURL)
	cfg.APIKey = "v3.r.test"
	if tune != nil {
		tune(cfg)
	}

	p, err := NewSJParser(cfg, Options{SearchText: "Программист"})
	require.NoError(t, err)
	return p.(*SJParser)
}

// страница page содержит одну вакансию с id = page, more == true до lastPage
func sjPages(lastPage int) pageHandler {
	return func(c *gin.Context, page int) {
		c.JSON(http.StatusOK, gin.H{
			"objects": []gin.H{sjItem(page, 100000, 0, "rub")},
			"total":   lastPage + 1,
			"more":    page < lastPage,
		})
	}
}

func TestSJParser_FetchVacancies(t *testing.T) {
	t.Run("выкачивает страницы, пока more == true", func(t *testing.T) {
		api := newFakeAPI(t, sjPages(2))
		p := newTestSJParser(t, api.URL(), nil)

		vacancies, err := p.FetchVacancies(context.Background(), "Go")

		require.NoError(t, err)
		assert.Equal(t, []string{"0", "1", "2"}, api.Pages())
		assert.Equal(t, []string{"0", "1", "2"}, ids(vacancies))
		assert.Equal(t, "SuperJob.ru", vacancies[0].Source)
		assert.Equal(t, &models.Salary{From: 100000, Currency: "rub"}, vacancies[0].Salary)
	})

	t.Run("параметры запроса и ключ API", func(t *testing.T) {
		api := newFakeAPI(t, sjPages(0))
		p := newTestSJParser(t, api.URL(), nil)

		_, err := p.FetchVacancies(context.Background(), "Go")
		require.NoError(t, err)

		requests := api.Requests()
		require.Len(t, requests, 1)
		assert.Equal(t, map[string]string{
			"catalogues":   "33",
			"no_agreement": "1",
			"town":         "4",
			"keyword":      "Go",
			"page":         "0",
		}, requests[0].Query)
		assert.Equal(t, "v3.r.test", requests[0].Header.Get("X-Api-App-Id"))
	})

	t.Run("пустой язык - без keyword", func(t *testing.T) {
		api := newFakeAPI(t, sjPages(0))
		p := newTestSJParser(t, api.URL(), func(cfg *configs.ParserInstanceConfig) { cfg.PerPage = 40 })

		_, err := p.FetchVacancies(context.Background(), "")
		require.NoError(t, err)

		query := api.Requests()[0].Query
		assert.NotContains(t, query, "keyword")
		assert.Equal(t, "40", query["count"])
	})

	t.Run("пустые страницы не мешают остановке", func(t *testing.T) {
		api := newFakeAPI(t, func(c *gin.Context, page int) {
			c.JSON(http.StatusOK, gin.H{"objects": []gin.H{}, "more": page < 1})
		})
		p := newTestSJParser(t, api.URL(), nil)

		vacancies, err := p.FetchVacancies(context.Background(), "Go")

		require.NoError(t, err)
		assert.Empty(t, vacancies)
		assert.Equal(t, []string{"0", "1"}, api.Pages())
	})

	t.Run("ошибка HTTP - страница пропускается, пагинация продолжается", func(t *testing.T) {
		api := newFakeAPI(t, func(c *gin.Context, page int) {
			if page == 1 {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "oops"})
				return
			}
			sjPages(2)(c, page)
		})
		p := newTestSJParser(t, api.URL(), nil)

		vacancies, err := p.FetchVacancies(context.Background(), "Go")

		require.NoError(t, err)
		assert.Equal(t, []string{"0", "1", "2"}, api.Pages())
		assert.Equal(t, []string{"0", "2"}, ids(vacancies))
	})

	t.Run("постоянная ошибка HTTP останавливается лимитом страниц", func(t *testing.T) {
		api := newFakeAPI(t, func(c *gin.Context, page int) {
			c.JSON(http.StatusForbidden, gin.H{"error": gin.H{"code": 403, "message": "invalid app id"}})
		})
		p := newTestSJParser(t, api.URL(), func(cfg *configs.ParserInstanceConfig) { cfg.MaxPages = 5 })

		vacancies, err := p.FetchVacancies(context.Background(), "Go")

		require.NoError(t, err)
		assert.Empty(t, vacancies)
		assert.Len(t, api.Requests(), 5)
	})

	t.Run("повтор страницы после ошибок соединения", func(t *testing.T) {
		api := newFakeAPI(t, sjPages(1))
		p := newTestSJParser(t, api.URL(), nil)
		transport := newFlakyTransport(map[string]int{"0": 2})
		p.httpClient.Transport = transport

		vacancies, err := p.FetchVacancies(context.Background(), "Go")

		require.NoError(t, err)
		assert.Equal(t, 3, transport.Attempts("0"))
		assert.Equal(t, 1, transport.Attempts("1"))
		assert.Equal(t, []string{"0", "1"}, ids(vacancies))
	})
}

func TestSJParser_PredictRubSalary(t *testing.T) {
	p := newTestSJParser(t, "https://api.superjob.ru/2.0/vacancies/", nil)

	t.Run("рубли", func(t *testing.T) {
		v := models.Vacancy{Salary: &models.Salary{From: 100, To: 200, Currency: "rub"}}
		assert.Equal(t, models.SalaryEstimate{Rub: 150, Valid: true}, p.PredictRubSalary(v))
	})

	t.Run("код рубля HH.ru у SuperJob не рубль", func(t *testing.T) {
		v := models.Vacancy{Salary: &models.Salary{From: 100, To: 200, Currency: "RUR"}}
		assert.False(t, p.PredictRubSalary(v).Valid)
	})

	t.Run("вакансия без зарплаты", func(t *testing.T) {
		result, err := p.parseResponseSearchVacancies([]byte(`{"objects": [{"id": 7, "payment_from": 0, "payment_to": 0, "currency": ""}], "more": false}`))
		require.NoError(t, err)
		require.Len(t, result.Vacancies, 1)
		assert.Nil(t, result.Vacancies[0].Salary)
		assert.False(t, p.PredictRubSalary(result.Vacancies[0]).Valid)
	})
}

func TestNewSJParser_RequiresAPIKey(t *testing.T) {
	cfg := testParserConfig(configs.DefaultParsersConfig().SuperJob, "https://api.superjob.ru/2.0/vacancies/")

	p, err := NewSJParser(cfg, Options{})

	assert.ErrorIs(t, err, configs.ErrMissingSecretKey)
	assert.Nil(t, p)
}
