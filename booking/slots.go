// Package booking holds the counselor slot availability engine and the appointment
// booking, cancellation and status workflow built on top of it.
package booking

import (
	"fmt"
	"strconv"
	"strings"
)

// AvailableSlots returns one HH:00:00 candidate per whole hour in [start, end), minus
// the booked ones, in ascending order. Bounds are clamped to [0, 24] and an empty or
// inverted window yields no slots. Booked values may be HH:MM or HH:MM:SS.
func AvailableSlots(start, end int, booked []string) []string {
	start, end = clamp(start), clamp(end)
	slots := []string{}
	if start >= end {
		return slots
	}

	taken := make(map[string]struct{}, len(booked))
	for _, b := range booked {
		if t, err := NormalizeTime(b); err == nil {
			taken[t] = struct{}{}
		}
	}

	for h := start; h < end; h++ {
		slot := formatHour(h)
		if _, ok := taken[slot]; !ok {
			slots = append(slots, slot)
		}
	}
	return slots
}

func clamp(h int) int {
	switch {
	case h < 0:
		return 0
	case h > 24:
		return 24
	}
	return h
}

func formatHour(h int) string {
	return fmt.Sprintf("%02d:00:00", h)
}

// NormalizeTime turns HH:MM or HH:MM:SS into HH:MM:SS
func NormalizeTime(s string) (string, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return "", fmt.Errorf("invalid time %q", s)
	}
	limits := []int{23, 59, 59}
	vals := []int{0, 0, 0}
	for i, p := range parts {
		if len(p) != 2 {
			return "", fmt.Errorf("invalid time %q", s)
		}
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 || v > limits[i] {
			return "", fmt.Errorf("invalid time %q", s)
		}
		vals[i] = v
	}
	return fmt.Sprintf("%02d:%02d:%02d", vals[0], vals[1], vals[2]), nil
}

// hourOf returns the hour of an HH:MM[:SS] clock time. The counselor window "24:00:00"
// is accepted as the end of the day.
func hourOf(s string) (int, error) {
	if strings.HasPrefix(strings.TrimSpace(s), "24:00") {
		return 24, nil
	}
	t, err := NormalizeTime(s)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(t[:2])
}

// openingHour is the first whole hour at or after the clock time s, so a window opening at
// 09:30 offers its first slot at 10:00
func openingHour(s string) (int, error) {
	h, err := hourOf(s)
	if err != nil || h == 24 {
		return h, err
	}
	t, _ := NormalizeTime(s)
	if t[3:] != "00:00" {
		h++
	}
	return h, nil
}
