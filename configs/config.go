// описание общего конфига приложения
package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"language_salary/internal/config"

	"github.com/go-playground/validator"
	"github.com/joho/godotenv"
)

var ErrMissingSecretKey = errors.New("SJ_SECRET_KEY is not set")

type LanguageSalaryConfig struct {
	App     *AppConfig     `validate:"required"`
	Parsers *ParsersConfig `validate:"required"`
}

type AppConfig struct {
	Languages  []string `yaml:"languages" validate:"required,min=1,dive,required"` // порядок языков = порядок строк в таблице
	SearchText string   `yaml:"search_text"`                                      // ключевое слово профессии для HH.ru
	LogFile    string   `yaml:"log_file" validate:"required"`                     // файл лога, перезаписывается при каждом запуске
}

func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Languages:  []string{"Python", "C++", "C#", "Go", "Java", "JavaScript", "PHP", "Ruby"},
		SearchText: "Программист",
		LogFile:    "language-salary.log",
	}
}

// загружаем конфиг-данные: секрет из окружения (.env - необязателен), остальное из yml
func LoadConfig() (*LanguageSalaryConfig, error) {
	return LoadConfigFrom(".env")
}

func LoadConfigFrom(envFile string) (*LanguageSalaryConfig, error) {
	// локальный .env не обязателен, переменные могут прийти из окружения процесса
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	secretKey := os.Getenv("SJ_SECRET_KEY")
	if secretKey == "" {
		return nil, ErrMissingSecretKey
	}

	appConfig, err := config.LoadYAMLConfig[AppConfig](os.Getenv("APP_CONFIG_PATH"), DefaultAppConfig)
	if err != nil {
		return nil, fmt.Errorf("load app config: %w", err)
	}

	parsersConfig, err := config.LoadYAMLConfig[ParsersConfig](os.Getenv("PARSERS_CONFIG_PATH"), DefaultParsersConfig)
	if err != nil {
		return nil, fmt.Errorf("load parsers config: %w", err)
	}

	// LOG_FILE перекрывает значение из yml
	if logFile := os.Getenv("LOG_FILE"); logFile != "" {
		appConfig.LogFile = logFile
	}

	if parsersConfig.SuperJob != nil {
		parsersConfig.SuperJob.APIKey = secretKey
	}

	conf := &LanguageSalaryConfig{
		App:     appConfig,
		Parsers: parsersConfig,
	}

	if err := Validate(conf); err != nil {
		return nil, err
	}

	return conf, nil
}

// Validate проверяет конфиг по тегам validate
func Validate(conf *LanguageSalaryConfig) error {
	if err := validator.New().Struct(conf); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
