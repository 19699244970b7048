package middleware

import (
	"github.com/nadavsuissa/EmailManager-sub000/pkg/log"
)

type Middleware struct {
	l log.Logger
}

func New(l log.Logger) Middleware {
	return Middleware{l: l}
}
