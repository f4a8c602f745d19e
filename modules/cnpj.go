package modules

import "strings"

// check digit weight vectors per the Receita Federal algorithm
var (
	cnpjWeights1 = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// StripCNPJ removes every non-digit character from the input.
func StripCNPJ(cnpj string) string {
	var b strings.Builder
	for _, r := range cnpj {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateCNPJ reports whether cnpj is a valid Brazilian company registry
// number. Accepts formatted ("11.222.333/0001-81") or bare digit input.
// Never panics; anything that is not 14 digits after stripping is invalid.
func ValidateCNPJ(cnpj string) bool {
	digits := StripCNPJ(cnpj)
	if len(digits) != 14 {
		return false
	}

	// all-identical sequences (e.g. 00000000000000) pass the checksum but
	// are not assignable registrations
	allSame := true
	for i := 1; i < 14; i++ {
		if digits[i] != digits[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	d := make([]int, 14)
	for i := 0; i < 14; i++ {
		d[i] = int(digits[i] - '0')
	}

	sum1 := 0
	for i, w := range cnpjWeights1 {
		sum1 += d[i] * w
	}
	check1 := 11 - sum1%11
	if check1 >= 10 {
		check1 = 0
	}

	sum2 := 0
	for i, w := range cnpjWeights2 {
		sum2 += d[i] * w
	}
	check2 := 11 - sum2%11
	if check2 >= 10 {
		check2 = 0
	}

	return d[12] == check1 && d[13] == check2
}

// FormatCNPJ renders a CNPJ as DD.DDD.DDD/DDDD-DD. Input that does not strip
// to exactly 14 digits is returned as the bare stripped digits. Formatting
// does not imply validity; call ValidateCNPJ separately.
func FormatCNPJ(cnpj string) string {
	digits := StripCNPJ(cnpj)
	if len(digits) != 14 {
		return digits
	}
	return digits[:2] + "." + digits[2:5] + "." + digits[5:8] + "/" + digits[8:12] + "-" + digits[12:]
}
