package collector

import (
	"testing"
	"time"
)

func TestFormatRegion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "전국"},
		{"서울", "서울"},
		{"서울,경기", "서울,경기"},
		{"서울,경기,인천", "서울 외 2"},
		{"서울, 경기, 인천, 강원", "서울 외 3"},
	}

	for _, tt := range tests {
		if got := formatRegion(tt.in); got != tt.want {
			t.Errorf("formatRegion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStatusFromPeriod(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		period string
		want   string
	}{
		{"20260801~20261231", "접수중"},
		{"20260101~20260430", "마감"},
		{"20260101~20260831", "접수중"}, // closes end of day
		{"", "접수중"},
		{"not-a-period", "접수중"},
	}

	for _, tt := range tests {
		if got := statusFromPeriod(tt.period, now); got != tt.want {
			t.Errorf("statusFromPeriod(%q) = %q, want %q", tt.period, got, tt.want)
		}
	}
}

func TestStripHTML(t *testing.T) {
	in := `<p>태양광 <b>설치</b> 지원</p>`
	if got := stripHTML(in); got != "태양광 설치 지원" {
		t.Errorf("stripHTML = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 4); got != "abcd..." {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("abc", 4); got != "abc" {
		t.Errorf("truncate = %q", got)
	}
}
