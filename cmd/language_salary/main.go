package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"language_salary/configs"
	"language_salary/internal/core"
)

func main() {
	// без ключа SuperJob работать не можем - выходим сразу с ненулевым кодом
	conf, err := configs.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	deps, err := core.InitDependencies(conf)
	if err != nil {
		log.Fatalf("Failed to initialize dependencies: %v", err)
	}
	defer deps.Close()

	// Ctrl+C прерывает ожидание между повторами и текущий запрос
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps.Logger.Info("запуск", "languages", conf.App.Languages)

	if err := deps.ParserManager.Run(ctx, os.Stdout); err != nil {
		deps.Logger.Error("остановка", "error", err)
		if errors.Is(err, context.Canceled) {
			log.Println("Interrupted")
		} else {
			log.Printf("App runtime error: %v", err)
		}
		deps.Close()
		os.Exit(1)
	}
}
