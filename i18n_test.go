package main

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestLocaleNotices(t *testing.T) {
	en, _ := NewLocale("en")
	ko, _ := NewLocale("ko-KR")

	cases := []struct {
		loc  *Locale
		err  error
		want string
	}{
		{en, ErrTicketFull, "You can generate at most 5 sets!"},
		{ko, ErrTicketFull, "최대 5개까지만 생성할 수 있습니다!"},
		{ko, fmt.Errorf("wrapped: %w", ErrEmptyTicket), "저장할 번호가 없습니다."},
		{en, errors.New("png: boom"), "Failed to save the image."},
		{ko, errors.New("png: boom"), "이미지 다운로드에 실패했습니다."},
	}
	for _, tc := range cases {
		if got := tc.loc.Notice(tc.err); got != tc.want {
			t.Fatalf("Notice(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

func TestLocaleDate(t *testing.T) {
	d := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	en, _ := NewLocale("en")
	ko, _ := NewLocale("ko")
	if got := en.Date(d); got != "December 1, 2025" {
		t.Fatalf("en date %q", got)
	}
	if got := ko.Date(d); got != "2025년 12월 1일" {
		t.Fatalf("ko date %q", got)
	}
}

func TestLocaleFallback(t *testing.T) {
	l, err := NewLocale("fr")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := l.T(msgGoodLuck); got != "Good luck!" {
		t.Fatalf("got %q", got)
	}
	if _, err := NewLocale("!!"); err == nil {
		t.Fatal("expected parse error")
	}
}
