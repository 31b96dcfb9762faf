// Package format holds the Brazilian document and phone helpers shared by
// forms, the REST client and templates.
package format

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	nonDigit   = regexp.MustCompile(`\D`)
	cpfShape   = regexp.MustCompile(`^(\d{3})(\d{3})(\d{3})(\d{2})$`)
	phoneShape = regexp.MustCompile(`^(\d{2})(\d)(\d{4})(\d{4})$`)
)

// Digits strips everything that is not a digit.
func Digits(s string) string {
	return nonDigit.ReplaceAllString(s, "")
}

// CPF masks an 11-digit CPF as 999.999.999-99. Values of any other length
// are returned digits-only.
func CPF(s string) string {
	return cpfShape.ReplaceAllString(Digits(s), "$1.$2.$3-$4")
}

// Phone masks an 11-digit mobile number as (99) 9 9999-9999.
func Phone(s string) string {
	return phoneShape.ReplaceAllString(Digits(s), "($1) $2 $3-$4")
}

// ValidCPF checks the length and both check digits of a CPF, masked or not.
// Sequences of a single repeated digit are rejected even though their check
// digits add up.
func ValidCPF(s string) bool {
	d := Digits(s)
	if len(d) != 11 {
		return false
	}
	if strings.Count(d, d[:1]) == 11 {
		return false
	}

	n := make([]int, 11)
	for i := range d {
		n[i] = int(d[i] - '0')
	}
	return checkDigit(n[:9]) == n[9] && checkDigit(n[:10]) == n[10]
}

func checkDigit(digits []int) int {
	sum := 0
	weight := len(digits) + 1
	for _, v := range digits {
		sum += v * weight
		weight--
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

// ValidPhone accepts landlines (10 digits) and mobiles (11 digits).
func ValidPhone(s string) bool {
	n := len(Digits(s))
	return n == 10 || n == 11
}

// Blank returns nil for a blank string and a pointer to the trimmed value
// otherwise.
func Blank(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Plural returns "s" unless n is exactly one.
func Plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// BRL formats an amount as Brazilian reais, e.g. R$ 1.234,56.
func BRL(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	whole, cents, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "R$ " + b.String() + "," + cents
	if neg {
		out = "-" + out
	}
	return out
}

// FirstName returns the first word of a full name.
func FirstName(name string) string {
	if f := strings.Fields(name); len(f) > 0 {
		return f[0]
	}
	return ""
}
