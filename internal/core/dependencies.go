// описание и инициализация всех зависимостей приложения
package core

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"language_salary/configs"
	"language_salary/internal/logger"
	"language_salary/internal/parser"
	"language_salary/internal/parsers_manager"
)

// порядок таблиц в выводе
var enabledParsers = []parser.ParserType{parser.ParserTypeHH, parser.ParserTypeSJ}

// Dependencies содержит все зависимости приложения
type Dependencies struct {
	Config        *configs.LanguageSalaryConfig
	Logger        *slog.Logger
	ParserFactory *parser.ParserFactory
	ParserManager *parsers_manager.ParsersManager
	closers       []io.Closer
}

// InitDependencies инициализирует зависимости по загруженному конфигу
func InitDependencies(conf *configs.LanguageSalaryConfig) (*Dependencies, error) {
	log, logFile, err := logger.New(conf.App.LogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	deps, err := initWithLogger(conf, log)
	if err != nil {
		logFile.Close()
		return nil, err
	}
	deps.closers = append(deps.closers, logFile)

	return deps, nil
}

func initWithLogger(conf *configs.LanguageSalaryConfig, log *slog.Logger) (*Dependencies, error) {
	//создаём фабрику парсеров
	parserFactory := parser.NewParserFactory(parser.Options{
		SearchText: conf.App.SearchText,
		Logger:     log,
	})

	// регистрируем парсеры в фабрике
	// НЕ ВЫЗЫВАЕМ функцию, а передаем ее как значение!
	parserFactory.Register(parser.ParserTypeHH, conf.Parsers.HH, parser.NewHHParser)
	parserFactory.Register(parser.ParserTypeSJ, conf.Parsers.SuperJob, parser.NewSJParser)

	// создаём только те парсеры, у которых в конфиге указано Enabled
	parsers, err := parserFactory.CreateEnabled(enabledParsers)
	if err != nil {
		return nil, fmt.Errorf("failed to create enabled parsers: %w", err)
	}

	parserManager, err := parsers_manager.NewParserManager(conf.App.Languages, log, parsers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create parser manager: %w", err)
	}

	return &Dependencies{
		Config:        conf,
		Logger:        log,
		ParserFactory: parserFactory,
		ParserManager: parserManager,
	}, nil
}

// Close освобождает ресурсы (файл лога)
func (d *Dependencies) Close() error {
	var errs []error
	for _, closer := range d.closers {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
