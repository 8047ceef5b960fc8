// Package i18n translates the few user-facing strings of the game.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"svw.info/minesweeper/internal/domain"
)

// Message keys; the English text doubles as the key.
const (
	MsgGameOver   = "Game Over"
	MsgYouWin     = "You Win"
	MsgMinesLeft  = "Mines: %d"
	MsgModeReveal = "Mode: reveal"
	MsgModeFlag   = "Mode: flag"
)

var supported = []language.Tag{
	language.AmericanEnglish,
	language.Spanish,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(supported)

var translations = map[language.Tag]map[string]string{
	language.AmericanEnglish: {
		MsgGameOver:   "Game Over",
		MsgYouWin:     "You Win",
		MsgMinesLeft:  "Mines: %d",
		MsgModeReveal: "Mode: reveal",
		MsgModeFlag:   "Mode: flag",
	},
	language.Spanish: {
		MsgGameOver:   "Fin del juego",
		MsgYouWin:     "¡Has ganado!",
		MsgMinesLeft:  "Minas: %d",
		MsgModeReveal: "Modo: descubrir",
		MsgModeFlag:   "Modo: bandera",
	},
	language.BrazilianPortuguese: {
		MsgGameOver:   "Fim de jogo",
		MsgYouWin:     "Você venceu",
		MsgMinesLeft:  "Minas: %d",
		MsgModeReveal: "Modo: revelar",
		MsgModeFlag:   "Modo: bandeira",
	},
}

func init() {
	for tag, msgs := range translations {
		for key, msg := range msgs {
			if err := message.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
}

// Default is the fallback language.
func Default() language.Tag { return supported[0] }

// Supported lists the languages with a catalog.
func Supported() []language.Tag { return append([]language.Tag(nil), supported...) }

// Match picks the best supported language for an Accept-Language header or
// a plain tag such as "es" or "pt-BR".
func Match(accept string) language.Tag {
	accept = strings.TrimSpace(accept)
	if accept == "" {
		return Default()
	}
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return Default()
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default()
	}
	return supported[idx]
}

func Printer(tag language.Tag) *message.Printer { return message.NewPrinter(tag) }

// StatusText is empty while the game is in progress.
func StatusText(p *message.Printer, s domain.Status) string {
	switch s {
	case domain.Lost:
		return p.Sprintf(MsgGameOver)
	case domain.Won:
		return p.Sprintf(MsgYouWin)
	default:
		return ""
	}
}

func ModeText(p *message.Printer, m domain.InputMode) string {
	if m == domain.ModeFlag {
		return p.Sprintf(MsgModeFlag)
	}
	return p.Sprintf(MsgModeReveal)
}

func MinesLeftText(p *message.Printer, n int) string {
	return p.Sprintf(MsgMinesLeft, n)
}
