// описание структуры для создания механизма фабрики для парсеров
// на вход фабрики подаётся тип парсера, конфиг для нужного парсера и конструктор для нужного парсера
package parser

import (
	"fmt"
	"log/slog"
	"sync"

	"language_salary/configs"
	"language_salary/internal/interfaces"
)

// ParserType тип парсера
type ParserType string

const (
	ParserTypeHH ParserType = "hh"
	ParserTypeSJ ParserType = "superjob"
)

// Options - общие для всех парсеров зависимости
type Options struct {
	SearchText string // ключевое слово профессии
	Logger     *slog.Logger
}

// ParserConstructor функция-конструктор парсера
type ParserConstructor func(config *configs.ParserInstanceConfig, opts Options) (interfaces.Parser, error)

// ParserFactory фабрика парсеров
type ParserFactory struct {
	constructors map[ParserType]ParserConstructor
	configs      map[ParserType]*configs.ParserInstanceConfig
	opts         Options
	mu           sync.RWMutex
}

// NewParserFactory создает новую фабрику
func NewParserFactory(opts Options) *ParserFactory {
	return &ParserFactory{
		constructors: make(map[ParserType]ParserConstructor),
		configs:      make(map[ParserType]*configs.ParserInstanceConfig),
		opts:         opts,
	}
}

// Register регистрирует конструктор парсера и конфиг
func (f *ParserFactory) Register(parserType ParserType, config *configs.ParserInstanceConfig, constructor ParserConstructor) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.constructors[parserType] = constructor
	f.configs[parserType] = config
}

// Create - создает парсер, если вся инфа до этого была зарегестрирована в фабрике
func (f *ParserFactory) Create(parserType ParserType) (interfaces.Parser, error) {
	f.mu.RLock()
	constructor, ok := f.constructors[parserType]
	config, configOk := f.configs[parserType]
	f.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("parser type not registered: %s", parserType)
	}
	if !configOk {
		return nil, fmt.Errorf("config not found for parser: %s", parserType)
	}
	return constructor(config, f.opts)
}

// CreateEnabled создает парсеры из списка в том же порядке, пропуская те, у которых в конфиге enabled: false.
// если хоть 1 из включённых парсеров не создан - метод вернёт ошибку
func (f *ParserFactory) CreateEnabled(types []ParserType) ([]interfaces.Parser, error) {
	parsers := make([]interfaces.Parser, 0, len(types))

	for _, parserType := range types {
		f.mu.RLock()
		config, ok := f.configs[parserType]
		f.mu.RUnlock()

		if ok && config != nil && !config.Enabled {
			continue
		}

		parser, err := f.Create(parserType)
		if err != nil {
			return nil, fmt.Errorf("failed to create parser %s: %w", parserType, err)
		}
		parsers = append(parsers, parser)
	}

	if len(parsers) == 0 {
		return nil, fmt.Errorf("no enabled parsers specified")
	}

	return parsers, nil
}

// переводим конфиг из yml в конфиг базового парсера
func baseConfig(name string, cfg *configs.ParserInstanceConfig, opts Options) BaseConfig {
	return BaseConfig{
		Name:        name,
		Title:       cfg.Title,
		BaseURL:     cfg.BaseURL,
		RubCurrency: cfg.RubCurrency,
		Timeout:     cfg.Timeout,
		RateLimit:   cfg.RateLimit,
		Retry: RetryPolicy{
			Backoff:     cfg.RetryBackoff,
			MaxAttempts: cfg.MaxAttempts,
		},
		MaxPages:              cfg.MaxPages,
		MaxIdleConns:          cfg.MaxIdleConns,
		IdleConnTimeout:       cfg.IdleConnTimeout,
		TLSHandshakeTimeout:   cfg.TLSHandshakeTimeout,
		ResponseHeaderTimeout: cfg.ResponseHeaderTimeout,
		ExpectContinueTimeout: cfg.ExpectContinueTimeout,
		Logger:                opts.Logger,
	}
}
