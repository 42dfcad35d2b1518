package fsutils

import "strconv"

var sizeUnits = [...]string{"B", "KB", "MB", "GB", "TB"}

// GetSizeShortText formats a byte count as a short human readable
// string such as "500B", "2KB" or "1GB", rounded to the nearest unit.
// TB is the largest unit, so very large sizes read e.g. "1024TB".
func GetSizeShortText(size int64) string {
	const step = 1024
	exp, div := 0, int64(1)
	for size/div >= step && exp < len(sizeUnits)-1 {
		div *= step
		exp++
	}
	if exp == 0 {
		return strconv.FormatInt(size, 10) + "B"
	}
	v := (size + div/2) / div
	if v >= step && exp < len(sizeUnits)-1 {
		v /= step
		exp++
	}
	return strconv.FormatInt(v, 10) + sizeUnits[exp]
}
