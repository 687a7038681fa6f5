package card

import "regexp"

var (
	visaPattern       = regexp.MustCompile(`^4[0-9]{12,15}$`)
	masterCardPattern = regexp.MustCompile(`^5[1-5][0-9]{14}$|^2(2[2-9][0-9]{12}|2[3-9][0-9]{13}|[3-6][0-9]{14}|7[01][0-9]{13}|720[0-9]{12})$`)
	amexPattern       = regexp.MustCompile(`^3[47][0-9]{13}$`)
	discoverPattern   = regexp.MustCompile(`^6(?:011|5[0-9]{2})[0-9]{12}$`)
	jcbPattern        = regexp.MustCompile(`^35(2[89]|[3-8][0-9])[0-9]{12}$`)
	mezaPattern       = regexp.MustCompile(`^(5018|5020|5038|6304|6759|6761|6763)[0-9]{8,15}$`)
)

// Detect classifies a card number by its digit pattern. Rules are evaluated
// in a fixed order and the first match wins.
func Detect(number string) Network {
	switch {
	case visaPattern.MatchString(number):
		return NetworkVisa
	case masterCardPattern.MatchString(number):
		return NetworkMasterCard
	case amexPattern.MatchString(number):
		return NetworkAmex
	case discoverPattern.MatchString(number):
		return NetworkDiscover
	case jcbPattern.MatchString(number):
		return NetworkJCB
	case mezaPattern.MatchString(number):
		return NetworkMeza
	default:
		return NetworkUnknown
	}
}

// Mask redacts all but the last four digits of a card number.
func Mask(number string) string {
	if len(number) < 4 {
		return "**** **** **** " + number
	}

	return "**** **** **** " + number[len(number)-4:]
}
