// Package sizefmt renders byte counts in a human-readable form.
package sizefmt

import "fmt"

const unit = 1024

var units = [...]string{"B", "KB", "MB", "GB", "TB"}

// Format renders n with one decimal place and the largest unit that keeps
// the value below 1024, capping at TB: 500 -> "500.0 B", 2048 -> "2.0 KB".
func Format(n int) string {
	size := float64(n)
	for _, u := range units[:len(units)-1] {
		if size < unit {
			return fmt.Sprintf("%.1f %s", size, u)
		}
		size /= unit
	}
	return fmt.Sprintf("%.1f %s", size, units[len(units)-1])
}
