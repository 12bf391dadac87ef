package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizeTimestamp coerces "MM:SS" or "H:M:S" into zero-padded "HH:MM:SS".
func NormalizeTimestamp(s string) (string, error) {
	secs, err := parseClock(s)
	if err != nil {
		return "", err
	}
	return FormatTimestamp(secs), nil
}

// TimestampSeconds returns the offset in seconds of a timestamp accepted by NormalizeTimestamp.
func TimestampSeconds(s string) (int, error) {
	return parseClock(s)
}

func FormatTimestamp(secs int) string {
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}

func parseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		if p == "" || len(p) > 2 && i > 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
		}
		for _, r := range p {
			if r < '0' || r > '9' {
				return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
			}
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
		}
		nums[i] = n
	}

	// seconds, and minutes when hours are present, must stay below 60
	if nums[len(nums)-1] >= 60 || len(nums) == 3 && nums[1] >= 60 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
	}

	if len(nums) == 2 {
		return nums[0]*60 + nums[1], nil
	}
	return nums[0]*3600 + nums[1]*60 + nums[2], nil
}
