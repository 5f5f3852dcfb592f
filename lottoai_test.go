package main

import "testing"

func TestNormalizeCmd(t *testing.T) {
	cases := map[string]string{
		"/gen":     "/gen",
		" EXPORT ": "/export",
		"rm":       "/rm",
		"/dance":   "/smallchat",
		"":         "/smallchat",
	}
	for in, want := range cases {
		if got := normalizeCmd(Cmd{Action: in}).Action; got != want {
			t.Fatalf("normalizeCmd(%q) = %q, want %q", in, got, want)
		}
	}
}
