package helpers

import (
	"fmt"
	"os"

	humanize "github.com/dustin/go-humanize"
)

func CoalesceString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// Count renders n with thousands separators followed by noun, pluralized
// with a trailing "s" when n != 1.
func Count(n int, noun string) string {
	if n != 1 {
		noun += "s"
	}

	return fmt.Sprintf("%s %s", humanize.Comma(int64(n)), noun)
}

func Env(name, def string) string {
	return CoalesceString(os.Getenv(name), def)
}
