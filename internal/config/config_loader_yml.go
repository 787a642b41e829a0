package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// универсальня функция загрузки конфига из .yml файла (используем дженерики)
// fn - функция конструктор конфига, которая задаёт значения по умолчанию
func LoadYAMLConfig[T any](configPath string, fn func() *T) (*T, error) {
	// сначала получаем конфиг со значениями по умолчанию.
	// если файла нет или он пустой - работаем на дефолтах
	config := fn()

	// путь не задан - сразу возвращаем дефолтные значения
	if configPath == "" {
		return config, nil
	}

	// файла по указанному пути нет - это не ошибка, возвращаем дефолтные значения
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}

	// файл есть, но прочитать его не получилось
	yamlFile, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", configPath, err)
	}

	// анмаршалим поверх дефолтов, поэтому не указанные в файле поля остаются как были
	if err := yaml.Unmarshal(yamlFile, config); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", configPath, err)
	}

	return config, nil
}
