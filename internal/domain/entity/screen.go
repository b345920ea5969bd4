package entity

import (
	"fmt"

	"github.com/marcos-nsantos/zapgo-backend/internal/domain"
)

type Screen string

const (
	ScreenHome     Screen = "home"
	ScreenMap      Screen = "map"
	ScreenZapz     Screen = "zapz"
	ScreenServices Screen = "services"
)

func ParseScreen(name string) (Screen, error) {
	switch s := Screen(name); s {
	case ScreenHome, ScreenMap, ScreenZapz, ScreenServices:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownScreen, name)
	}
}

func (s Screen) String() string {
	return string(s)
}
