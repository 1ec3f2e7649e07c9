package ptr

import "time"

func StringPtr(str string) *string {
	return &str
}

func TimePtr(t time.Time) *time.Time {
	return &t
}
