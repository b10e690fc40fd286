package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateVerificationCode generates a 6-digit SMS verification code
func GenerateVerificationCode() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	code := ""
	for i := 0; i < 6; i++ {
		code += fmt.Sprintf("%d", rng.Intn(10))
	}
	return code
}

// ParseClock parses a "HH:MM" clock string into minutes since midnight.
func ParseClock(clock string) (int, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ClockWithin reports whether slot lies in [start, end). Zero-padded "HH:MM"
// strings compare correctly as strings.
func ClockWithin(slot, start, end string) bool {
	return slot >= start && slot < end
}
