package parser

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"language_salary/configs"
	"language_salary/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// запрос, который получил фейковый API
type recordedRequest struct {
	Query  map[string]string
	Header http.Header
}

// фейковый API сервиса вакансий на gin
type fakeAPI struct {
	server   *httptest.Server
	mu       sync.Mutex
	requests []recordedRequest
}

// pageHandler отвечает на запрос конкретной страницы
type pageHandler func(c *gin.Context, page int)

func newFakeAPI(t *testing.T, handler pageHandler) *fakeAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	api := &fakeAPI{}
	router := gin.New()
	router.GET("/vacancies/", func(c *gin.Context) {
		query := make(map[string]string)
		for key, values := range c.Request.URL.Query() {
			query[key] = values[0]
		}

		api.mu.Lock()
		api.requests = append(api.requests, recordedRequest{Query: query, Header: c.Request.Header.Clone()})
		api.mu.Unlock()

		page, err := strconv.Atoi(c.Query("page"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad page"})
			return
		}
		handler(c, page)
	})

	api.server = httptest.NewServer(router)
	t.Cleanup(api.server.Close)
	return api
}

func (a *fakeAPI) URL() string {
	return a.server.URL + "/vacancies/"
}

func (a *fakeAPI) Requests() []recordedRequest {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]recordedRequest(nil), a.requests...)
}

// номера запрошенных страниц в порядке запросов
func (a *fakeAPI) Pages() []string {
	var pages []string
	for _, req := range a.Requests() {
		pages = append(pages, req.Query["page"])
	}
	return pages
}

// конфиг парсера для тестов: без пауз и без ограничения частоты
func testParserConfig(base *configs.ParserInstanceConfig, baseURL string) *configs.ParserInstanceConfig {
	cfg := *base
	cfg.BaseURL = baseURL
	cfg.RateLimit = 0
	cfg.RetryBackoff = 0
	cfg.Timeout = 0
	return &cfg
}

// транспорт, который роняет соединение заданное число раз для указанных страниц
type flakyTransport struct {
	mu       sync.Mutex
	failures map[string]int
	attempts map[string]int
	next     http.RoundTripper
}

func newFlakyTransport(failures map[string]int) *flakyTransport {
	return &flakyTransport{
		failures: failures,
		attempts: make(map[string]int),
		next:     http.DefaultTransport,
	}
}

func (f *flakyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	page := req.URL.Query().Get("page")

	f.mu.Lock()
	f.attempts[page]++
	fail := f.failures[page] > 0
	if fail {
		f.failures[page]--
	}
	f.mu.Unlock()

	if fail {
		return nil, errors.New("dial tcp: connection refused")
	}
	return f.next.RoundTrip(req)
}

func (f *flakyTransport) Attempts(page string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.attempts[page]
}

// hh вакансия в формате API
func hhItem(id string, salary gin.H) gin.H {
	item := gin.H{
		"id":            id,
		"name":          "Программист " + id,
		"employer":      gin.H{"id": "1", "name": "Рога и копыта"},
		"area":          gin.H{"id": "1", "name": "Москва"},
		"alternate_url": "https://hh.ru/vacancy/" + id,
	}
	if salary != nil {
		item["salary"] = salary
	} else {
		item["salary"] = nil
	}
	return item
}

// sj вакансия в формате API
func sjItem(id int, from, to int, currency string) gin.H {
	return gin.H{
		"id":           id,
		"profession":   "Программист",
		"firm_name":    "Рога и копыта",
		"payment_from": from,
		"payment_to":   to,
		"currency":     currency,
		"town":         gin.H{"id": 4, "title": "Москва"},
		"link":         "https://superjob.ru/vakansii/" + strconv.Itoa(id),
	}
}

func modelsParams(language string, page int) models.SearchParams {
	return models.SearchParams{Language: language, Page: page}
}
