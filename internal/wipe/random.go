package wipe

import (
	"crypto/rand"
	"fmt"
)

// RandomSource поставляет случайные данные для проходов затирания.
// Передаётся явно, чтобы тесты могли подставить детерминированный источник.
type RandomSource interface {
	Fill(buf []byte) error
}

type cryptoSource struct{}

// NewCryptoSource возвращает источник на базе crypto/rand
func NewCryptoSource() RandomSource {
	return cryptoSource{}
}

func (cryptoSource) Fill(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	if _, err := rand.Read(buf); err != nil {
		return fmt.Errorf("ошибка генерации случайных данных: %w", err)
	}
	return nil
}
