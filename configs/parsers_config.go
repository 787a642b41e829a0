package configs

import "time"

type ParsersConfig struct {
	HH       *ParserInstanceConfig `yaml:"hh" validate:"required"`
	SuperJob *ParserInstanceConfig `yaml:"superjob" validate:"required"`
}

// структура конфига для отдельного парсера
type ParserInstanceConfig struct {
	Enabled               bool          `yaml:"enabled"`
	Title                 string        `yaml:"title" validate:"required"`         // заголовок таблицы с результатами
	BaseURL               string        `yaml:"base_url" validate:"required,url"`  // эндпоинт поиска вакансий
	APIKey                string        `yaml:"api_key"`                           // API ключ, если предусмотрен сервисом (в yml не храним, берём из .env)
	UserAgent             string        `yaml:"user_agent"`                        // заголовок User-Agent, HH.ru без него отвечает 400
	RubCurrency           string        `yaml:"rub_currency" validate:"required"`  // код рубля, как его пишет сервис ("RUR" / "rub")
	Timeout               time.Duration `yaml:"timeout" validate:"min=0"`          // таймаут для http клиента, 0 - без таймаута
	RateLimit             time.Duration `yaml:"rate_limit" validate:"min=0"`       // минимальный интервал между запросами, 0 - без ограничения
	RetryBackoff          time.Duration `yaml:"retry_backoff" validate:"min=0"`    // пауза перед повтором страницы после ошибки соединения
	MaxAttempts           int           `yaml:"max_attempts" validate:"min=0"`     // попыток на одну страницу, 0 - повторяем бесконечно
	MaxPages              int           `yaml:"max_pages" validate:"min=0"`        // предохранитель от бесконечной пагинации, 0 - выключен
	PerPage               int           `yaml:"per_page" validate:"min=0,max=100"` // размер страницы, 0 - значение сервиса по умолчанию
	Search                SearchFilters `yaml:"search"`
	MaxIdleConns          int           `yaml:"max_idle_conns"`
	IdleConnTimeout       time.Duration `yaml:"idle_conn_timeout"`
	TLSHandshakeTimeout   time.Duration `yaml:"tls_handshake_timeout"`
	ResponseHeaderTimeout time.Duration `yaml:"response_header_timeout"`
	ExpectContinueTimeout time.Duration `yaml:"expect_continue_timeout"`
}

// фиксированные фильтры поиска. Каждый парсер берёт только свои поля
type SearchFilters struct {
	Area        int    `yaml:"area"`         // HH.ru: код региона
	Period      int    `yaml:"period"`       // HH.ru: за сколько дней искать
	SearchField string `yaml:"search_field"` // HH.ru: где искать текст запроса
	Town        int    `yaml:"town"`         // SuperJob: ID города
	Catalogues  int    `yaml:"catalogues"`   // SuperJob: ID отрасли
	NoAgreement bool   `yaml:"no_agreement"` // SuperJob: без вакансий "по договорённости"
}

const (
	hhMoscowArea   = 1
	periodInDays   = 30
	sjMoscowID     = 4
	sjITCatalogues = 33
)

// DefaultParsersConfig возвращает конфигурацию по умолчанию
func DefaultParsersConfig() *ParsersConfig {
	return &ParsersConfig{
		HH: &ParserInstanceConfig{
			Enabled:      true,
			Title:        "HeadHunter Moscow",
			BaseURL:      "https://api.hh.ru/vacancies/",
			UserAgent:    "HH-User-Agent",
			RubCurrency:  "RUR",
			Timeout:      30 * time.Second,
			RateLimit:    200 * time.Millisecond,
			RetryBackoff: 30 * time.Second,
			MaxPages:     100,
			Search: SearchFilters{
				Area:        hhMoscowArea,
				Period:      periodInDays,
				SearchField: "name",
			},
			MaxIdleConns:          5,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
		SuperJob: &ParserInstanceConfig{
			Enabled:      true,
			Title:        "SuperJob Moscow",
			BaseURL:      "https://api.superjob.ru/2.0/vacancies/",
			RubCurrency:  "rub",
			Timeout:      30 * time.Second,
			RateLimit:    200 * time.Millisecond,
			RetryBackoff: 30 * time.Second,
			MaxPages:     100,
			Search: SearchFilters{
				Town:        sjMoscowID,
				Catalogues:  sjITCatalogues,
				NoAgreement: true,
			},
			MaxIdleConns:          5,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}
}
