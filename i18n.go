package main

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	msgTicketFull    = "You can generate at most %d sets!"
	msgBusy          = "Numbers are being generated, please wait."
	msgGenerating    = "Generating..."
	msgGenerateBtn   = "Generate (%d/%d)"
	msgExportBtn     = "Save as image"
	msgClearBtn      = "Clear all"
	msgRemoveBtn     = "Remove %s"
	msgEmptyHint     = "Generate some numbers! 🎲"
	msgIssueNo       = "Issue No."
	msgDisclaimer    = "These numbers are just for fun!"
	msgGoodLuck      = "Good luck!"
	msgExportFailed  = "Failed to save the image."
	msgNothingExport = "There are no numbers to save."
	msgSetNotFound   = "Set %s was not found."
	msgSetGone       = "That set no longer exists."
	msgRemoved       = "Removed set %s."
	msgCleared       = "All sets cleared."
	msgSaved         = "Saved %s"
	msgStat          = "Generated sets: %d\nExported images: %d"
	msgUsage         = "Usage:\n/gen - generate a set\n/show - show the ticket\n/rm <A-E> - remove a set\n/clear - remove every set\n/export - save the ticket as an image\n/stat - statistics"
	msgHelpKeys      = "g generate · s save image · d remove · c clear · ↑/↓ select · q quit"
)

const copyrightLine = "© Lotto Generator - lotto645 2025.12"

var koMessages = map[string]string{
	msgTicketFull:    "최대 %d개까지만 생성할 수 있습니다!",
	msgBusy:          "번호를 생성하는 중입니다. 잠시만 기다려주세요.",
	msgGenerating:    "생성 중...",
	msgGenerateBtn:   "번호 생성 (%d/%d)",
	msgExportBtn:     "이미지로 저장",
	msgClearBtn:      "전체 삭제",
	msgRemoveBtn:     "%s 삭제",
	msgEmptyHint:     "번호를 생성해주세요! 🎲",
	msgIssueNo:       "발행 번호",
	msgDisclaimer:    "이 번호들은 재미로만 사용하세요!",
	msgGoodLuck:      "행운을 빕니다!",
	msgExportFailed:  "이미지 다운로드에 실패했습니다.",
	msgNothingExport: "저장할 번호가 없습니다.",
	msgSetNotFound:   "%s 번호를 찾을 수 없습니다.",
	msgSetGone:       "이미 삭제된 번호입니다.",
	msgRemoved:       "%s 번호를 삭제했습니다.",
	msgCleared:       "전체 삭제했습니다.",
	msgSaved:         "%s 저장 완료",
	msgStat:          "생성한 번호: %d\n저장한 이미지: %d",
	msgUsage:         "사용법:\n/gen - 번호 생성\n/show - 티켓 보기\n/rm <A-E> - 번호 삭제\n/clear - 전체 삭제\n/export - 이미지로 저장\n/stat - 통계",
	msgHelpKeys:      "g 생성 · s 이미지 저장 · d 삭제 · c 전체 삭제 · ↑/↓ 선택 · q 종료",
}

func init() {
	for key, msg := range koMessages {
		if err := message.SetString(language.Korean, key, msg); err != nil {
			panic(fmt.Sprintf("i18n: %v", err))
		}
	}
}

// Locale formats user facing text for one language.
type Locale struct {
	Tag language.Tag
	p   *message.Printer
}

func NewLocale(name string) (*Locale, error) {
	tag, err := language.Parse(name)
	if err != nil {
		return nil, fmt.Errorf("failed to parse locale %q: %w", name, err)
	}
	base, _ := tag.Base()
	switch base.String() {
	case "ko":
		tag = language.Korean
	default:
		tag = language.English
	}
	return &Locale{Tag: tag, p: message.NewPrinter(tag)}, nil
}

func (l *Locale) T(key string, args ...any) string {
	return l.p.Sprintf(key, args...)
}

// Date renders the long form date printed under the ticket title.
func (l *Locale) Date(t time.Time) string {
	if l.Tag == language.Korean {
		return fmt.Sprintf("%d년 %d월 %d일", t.Year(), int(t.Month()), t.Day())
	}
	return t.Format("January 2, 2006")
}

// Notice converts a ticket error into the message shown to the user.
func (l *Locale) Notice(err error) string {
	switch {
	case errors.Is(err, ErrTicketFull):
		return l.T(msgTicketFull, MaxSets)
	case errors.Is(err, ErrBusy):
		return l.T(msgBusy)
	case errors.Is(err, ErrEmptyTicket):
		return l.T(msgNothingExport)
	default:
		return l.T(msgExportFailed)
	}
}
