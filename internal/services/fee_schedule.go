package services

// RegistrationFee maps years of experience to the registration fee tier.
func RegistrationFee(experience int) int {
	switch {
	case experience <= 1:
		return 500
	case experience <= 3:
		return 250
	case experience <= 5:
		return 100
	case experience <= 9:
		return 50
	default:
		return 0
	}
}
