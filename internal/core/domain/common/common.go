package common

import (
	"encoding/json"
	"fmt"
	"strings"
)

type Optional[T any] struct {
	Value     T
	IsPresent bool
}

func (p *Optional[T]) String() string {
	if !p.IsPresent {
		return "[-]"
	}
	return fmt.Sprintf("[%v]", p.Value)
}

func NewOptional[T any](value T, isPresent bool) Optional[T] {
	return Optional[T]{Value: value, IsPresent: isPresent}
}

// MarshalJSON renders an absent value as null.
func (p Optional[T]) MarshalJSON() ([]byte, error) {
	if !p.IsPresent {
		return []byte("null"), nil
	}
	return json.Marshal(p.Value)
}

type Email string

func NewEmail(rawEmail string) Email {
	return Email(strings.ToLower(strings.TrimSpace(rawEmail)))
}
