package token

// IsNumber reports whether d is entirely a number: an optional leading
// '-', one or more digits, and an optional '.' followed by one or more
// digits.
func IsNumber(d []byte) bool {
	i := 0
	if len(d) > 0 && d[0] == '-' {
		i++
	}
	digits := asciiDigits(d[i:])
	if digits == 0 {
		return false
	}
	i += digits
	return i+fract(d[i:]) == len(d)
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func fract(d []byte) int {
	if len(d) < 2 || d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		// . must be followed by 1 or more digits
		return 0
	}
	return n + 1
}
