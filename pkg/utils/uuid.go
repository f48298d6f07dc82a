package utils

import (
	"strconv"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 12
)

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}

// NewID gera um ID e, se o gerador falhar, usa o instante atual
func NewID() string {
	id, err := GenerateID()
	if err != nil {
		return strconv.FormatInt(time.Now().UnixNano(), 36)
	}
	return id
}
