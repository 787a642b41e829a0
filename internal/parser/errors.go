package parser

import "errors"

var (
	// ошибка соединения: страницу повторяем после паузы
	ErrTransport = errors.New("transport failure")
	// сервис ответил не 2xx или прислал мусор: страницу пропускаем
	ErrProtocol = errors.New("protocol failure")
	// исчерпан лимит попыток на одну страницу
	ErrRetriesExhausted = errors.New("retries exhausted")
)
