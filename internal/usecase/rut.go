package usecase

import "regexp"

var rutPattern = regexp.MustCompile(`^\d{1,8}-[\dKk]$`)

// ComputeRutCheckDigit derives the check digit of a Chilean RUT body using
// the modulo-11 checksum with weights cycling 2..7 from the least significant
// digit. Remainder 11 maps to "0" and 10 to "K".
func ComputeRutCheckDigit(run string) string {
	sum := 0
	factor := 2
	for i := len(run) - 1; i >= 0; i-- {
		sum += int(run[i]-'0') * factor
		if factor == 7 {
			factor = 2
		} else {
			factor++
		}
	}
	switch d := 11 - sum%11; d {
	case 11:
		return "0"
	case 10:
		return "K"
	default:
		return string(rune('0' + d))
	}
}

// ValidateRut checks a full "body-digit" RUT: the format first, then the
// check digit, case-insensitively.
func ValidateRut(rut string) bool {
	if !rutPattern.MatchString(rut) {
		return false
	}
	run := rut[:len(rut)-2]
	dv := rut[len(rut)-1]
	if dv == 'k' {
		dv = 'K'
	}
	return ComputeRutCheckDigit(run) == string(dv)
}
