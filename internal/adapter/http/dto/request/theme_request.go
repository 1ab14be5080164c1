package request

import (
	"errors"
	"strings"
)

var ErrInvalidTheme = errors.New("theme must be dark or light")

type ThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

func (r ThemeRequest) ResolveTheme() (string, error) {
	theme := strings.ToLower(strings.TrimSpace(r.Theme))
	if theme != "dark" && theme != "light" {
		return "", ErrInvalidTheme
	}
	return theme, nil
}
