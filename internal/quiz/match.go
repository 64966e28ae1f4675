package quiz

import (
	"math"
	"strconv"
	"strings"
)

// DefaultTolerance is the absolute difference below which two numeric
// answers are judged equal. It absorbs rounding and representation drift.
const DefaultTolerance = 0.01

// Match decides whether a free-text user answer matches the expected
// answer within the given numeric tolerance.
//
// Both sides normalize the same way: trim, lowercase, strip commas, strip
// a trailing "%", then try to parse as a float and take the absolute value
// (sign confusion is not penalized on magnitude-only questions). When both
// sides parse, they match if their absolute difference is strictly below
// tolerance. Otherwise the comparison is case-normalized string equality,
// which is how identifier answers are matched. Malformed input is never an
// error: it normalizes to some string and simply fails to match numeric
// answers.
func Match(userInput string, expected Answer, tolerance float64) bool {
	if !expected.IsAvailable() {
		return false
	}

	userStr, userNum, userIsNum := normalize(userInput)

	switch expected.Kind {
	case KindIdentifier:
		return userStr == strings.ToLower(expected.Text)
	case KindInteger, KindDecimal, KindPercent:
		if !userIsNum {
			return false
		}
		return math.Abs(userNum-math.Abs(expected.Value)) < tolerance
	}
	return false
}

// normalize canonicalizes a raw answer string. It returns the normalized
// string form and, when the string parses as a number, its absolute value.
// Whitespace between the number and a trailing "%" is tolerated ("42 %"),
// but trailing garbage is not: "12.5x" does not parse.
func normalize(s string) (string, float64, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, ",", "")

	numStr := strings.TrimSpace(strings.TrimSuffix(s, "%"))
	num, err := strconv.ParseFloat(numStr, 64)
	if err != nil {
		return s, 0, false
	}
	return s, math.Abs(num), true
}
