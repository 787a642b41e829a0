package parser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"language_salary/internal/domain/models"
	"language_salary/internal/interfaces"
	"language_salary/internal/logger"
	"language_salary/internal/salary"

	"golang.org/x/time/rate"
)

// RetryPolicy - политика повторов страницы при ошибке соединения
type RetryPolicy struct {
	Backoff     time.Duration // фиксированная пауза между попытками
	MaxAttempts int           // 0 - повторяем, пока не получится
}

// лимит попыток исчерпан после attempt-ой попытки
func (r RetryPolicy) exhausted(attempt int) bool {
	return r.MaxAttempts > 0 && attempt >= r.MaxAttempts
}

// BaseConfig конфигурация базового парсера
type BaseConfig struct {
	Name                  string        // имя парсера (к какому источнику будет привязан)
	Title                 string        // заголовок таблицы с результатами
	BaseURL               string        // эндпоинт поиска вакансий
	RubCurrency           string        // код рубля у этого сервиса
	Timeout               time.Duration // таймаут для http клиента
	RateLimit             time.Duration // минимальный интервал между запросами
	Retry                 RetryPolicy   // повторы при ошибке соединения
	MaxPages              int           // предохранитель от бесконечной пагинации, 0 - выключен
	MaxIdleConns          int           // максимальное количество keep-alive соединений
	IdleConnTimeout       time.Duration // через сколько закрывать неиспользуемое соединение
	TLSHandshakeTimeout   time.Duration // максимальное время ожидания TLS handshake
	ResponseHeaderTimeout time.Duration // сколько ждать заголовков ответа после отправки запроса
	ExpectContinueTimeout time.Duration
	Logger                *slog.Logger
}

// BaseParser базовая реализация парсера: постраничная выкачка с повторами
type BaseParser struct {
	name        string
	title       string
	baseURL     string
	rubCurrency string
	httpClient  *http.Client
	rateLimiter interfaces.RateLimiter
	retry       RetryPolicy
	maxPages    int
	logger      *slog.Logger
	sleep       func(ctx context.Context, d time.Duration) error
}

// Конструктор, который создает базовый парсер
func NewBaseParser(config BaseConfig) (*BaseParser, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("[%s] base URL is empty", config.Name)
	}
	if config.Retry.Backoff < 0 || config.Retry.MaxAttempts < 0 {
		return nil, fmt.Errorf("[%s] invalid retry policy: %+v", config.Name, config.Retry)
	}

	log := config.Logger
	if log == nil {
		log = logger.Discard()
	}

	return &BaseParser{
		name:        config.Name,
		title:       config.Title,
		baseURL:     config.BaseURL,
		rubCurrency: config.RubCurrency,
		httpClient:  createHTTPClient(config),
		rateLimiter: newRateLimiter(config.RateLimit),
		retry:       config.Retry,
		maxPages:    config.MaxPages,
		logger:      log.With("parser", config.Name),
		sleep:       sleepContext,
	}, nil
}

// функция, которая создаёт новый клиент с параметрами
func createHTTPClient(config BaseConfig) *http.Client {
	return &http.Client{
		Timeout: config.Timeout,
		Transport: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			MaxIdleConnsPerHost:   config.MaxIdleConns,
			IdleConnTimeout:       config.IdleConnTimeout,
			TLSHandshakeTimeout:   config.TLSHandshakeTimeout,
			ResponseHeaderTimeout: config.ResponseHeaderTimeout,
			ExpectContinueTimeout: config.ExpectContinueTimeout,
		},
	}
}

// интервал <= 0 - запросы не ограничиваем
func newRateLimiter(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}

// PageResult - разобранная страница ответа
type PageResult struct {
	Vacancies []models.Vacancy
	Pages     int  // сколько всего страниц (HH.ru)
	More      bool // есть ли следующая страница (SuperJob)
}

// состояние пагинации до первого ответа: одна страница точно есть
var firstPage = PageResult{Pages: 1, More: true}

// ParserFuncs определяет специфичные функции парсера
type ParserFuncs struct {
	BuildURL    func(models.SearchParams) (string, error)
	Headers     http.Header
	Parse       func([]byte) (PageResult, error)
	HasNextPage func(page int, last PageResult) bool // last - последняя успешно разобранная страница
	Query       func(language string) string         // текст запроса для лога
}

// FetchVacancies выкачивает все страницы поиска по языку.
// Страница с ошибкой протокола пропускается, при ошибке соединения страница повторяется.
// Ошибку возвращает только отмена контекста, вместе с тем, что успели собрать
func (p *BaseParser) FetchVacancies(ctx context.Context, language string, funcs ParserFuncs) ([]models.Vacancy, error) {
	var vacancies []models.Vacancy
	last := firstPage

	for page := 0; funcs.HasNextPage(page, last); page++ {
		if p.maxPages > 0 && page >= p.maxPages {
			p.logger.Warn("достигнут лимит страниц, останавливаем выкачку",
				"query", funcs.Query(language), "max_pages", p.maxPages)
			break
		}

		result, err := p.fetchPage(ctx, models.SearchParams{Language: language, Page: page}, funcs)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return vacancies, ctxErr
			}
			p.logger.Warn("страница пропущена",
				"query", funcs.Query(language), "url", p.baseURL, "page", page, "error", err)
			continue
		}

		vacancies = append(vacancies, result.Vacancies...)
		last = result
	}

	return vacancies, nil
}

// fetchPage запрашивает одну страницу, повторяя её при ошибках соединения
func (p *BaseParser) fetchPage(ctx context.Context, params models.SearchParams, funcs ParserFuncs) (PageResult, error) {
	apiURL, err := funcs.BuildURL(params)
	if err != nil {
		return PageResult{}, fmt.Errorf("build URL failed: %w", err)
	}

	for attempt := 1; ; attempt++ {
		if err := p.rateLimiter.Wait(ctx); err != nil {
			return PageResult{}, err
		}

		p.logger.Info("Запрос",
			"query", funcs.Query(params.Language), "url", p.baseURL, "page", params.Page, "attempt", attempt)

		body, err := p.requestPage(ctx, apiURL, funcs.Headers)
		if err == nil {
			result, err := funcs.Parse(body)
			if err != nil {
				return PageResult{}, fmt.Errorf("%w: parse response failed: %w", ErrProtocol, err)
			}
			return result, nil
		}

		// повторяем только ошибки соединения, и только пока жив контекст
		if !errors.Is(err, ErrTransport) || ctx.Err() != nil {
			return PageResult{}, err
		}

		p.logger.Warn("ошибка соединения с сайтом",
			"query", funcs.Query(params.Language), "url", p.baseURL, "page", params.Page,
			"attempt", attempt, "backoff", p.retry.Backoff, "error", err)

		if p.retry.exhausted(attempt) {
			return PageResult{}, fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, attempt, err)
		}

		if err := p.sleep(ctx, p.retry.Backoff); err != nil {
			return PageResult{}, err
		}
	}
}

// requestPage делает GET запрос и возвращает тело успешного ответа
func (p *BaseParser) requestPage(ctx context.Context, apiURL string, headers http.Header) ([]byte, error) {
	resp, err := p.executeRequest(ctx, apiURL, headers)
	if err != nil {
		return nil, err
	}
	defer p.drainAndClose(resp)

	if err := p.checkResponseStatus(resp); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		// обрыв соединения посреди тела - тоже ошибка соединения
		return nil, fmt.Errorf("%w: read response failed: %w", ErrTransport, err)
	}
	return body, nil
}

// метод для выполнения HTTP запроса через клиент
func (p *BaseParser) executeRequest(ctx context.Context, apiURL string, headers http.Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: HTTP request failed: %w", ErrTransport, err)
	}
	return resp, nil
}

// вычитывает остаток тела с лимитом и закрывает его, чтобы соединение вернулось в пул
func (p *BaseParser) drainAndClose(resp *http.Response) {
	const maxBodySlurp = 1 << 20 // 1MB
	io.CopyN(io.Discard, resp.Body, maxBodySlurp)
	_ = resp.Body.Close()
}

// метод проверки статуса ответа на запрос к API
func (p *BaseParser) checkResponseStatus(resp *http.Response) error {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: API returned status %d: %s", ErrProtocol, resp.StatusCode, string(body))
	}
	return nil
}

// PredictRubSalary оценивает зарплату вакансии. Вакансии не в рублях этого сервиса не оцениваются
func (p *BaseParser) PredictRubSalary(vacancy models.Vacancy) models.SalaryEstimate {
	return salary.PredictRub(vacancy, p.rubCurrency)
}

// GetName возвращает имя парсера
func (p *BaseParser) GetName() string {
	return p.name
}

// GetTitle возвращает заголовок таблицы
func (p *BaseParser) GetTitle() string {
	return p.title
}

// пауза, которую можно прервать отменой контекста
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
