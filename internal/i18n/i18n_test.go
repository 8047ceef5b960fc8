package i18n

import (
	"testing"

	"golang.org/x/text/language"

	"svw.info/minesweeper/internal/domain"
)

func TestMatch(t *testing.T) {
	cases := []struct {
		in   string
		want language.Tag
	}{
		{"", language.AmericanEnglish},
		{"es-ES,es;q=0.9", language.Spanish},
		{"pt-BR", language.BrazilianPortuguese},
		{"en-GB,en;q=0.8", language.AmericanEnglish},
		{"zz;;;", language.AmericanEnglish},
	}
	for _, c := range cases {
		if got := Match(c.in); got != c.want {
			t.Errorf("Match(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestStatusText(t *testing.T) {
	en := Printer(language.AmericanEnglish)
	if got := StatusText(en, domain.Lost); got != "Game Over" {
		t.Errorf("lost: got %q", got)
	}
	if got := StatusText(en, domain.Won); got != "You Win" {
		t.Errorf("won: got %q", got)
	}
	if got := StatusText(en, domain.Playing); got != "" {
		t.Errorf("playing: got %q", got)
	}

	es := Printer(language.Spanish)
	if got := StatusText(es, domain.Lost); got != "Fin del juego" {
		t.Errorf("es lost: got %q", got)
	}
	if got := MinesLeftText(es, 7); got != "Minas: 7" {
		t.Errorf("es mines: got %q", got)
	}
}
