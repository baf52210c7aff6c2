package services

import (
	"strings"

	"speakerregistration/internal/domain"
)

// Primary qualification thresholds.
const (
	minExperienceExclusive     = 10
	minCertificationsExclusive = 3
)

// EligibilityEvaluator decides whether a validated speaker meets the registration requirements.
type EligibilityEvaluator struct {
	allowedEmployers    map[string]struct{}
	blockedEmailDomains map[string]struct{}
}

// NewEligibilityEvaluator copies the given lists; later changes to them have no effect.
func NewEligibilityEvaluator(allowedEmployers, blockedEmailDomains []string) *EligibilityEvaluator {
	return &EligibilityEvaluator{
		allowedEmployers:    toSet(allowedEmployers),
		blockedEmailDomains: toSet(blockedEmailDomains),
	}
}

// MeetsRequirements applies the primary qualification and, when it fails, the carve-out.
func (e *EligibilityEvaluator) MeetsRequirements(speaker *domain.Speaker) bool {
	good := e.PrimaryQualification(speaker)
	if !good {
		good = e.CarveOut(speaker)
	}
	return good
}

// PrimaryQualification is true when any of experience, blog, certifications or employer qualifies.
func (e *EligibilityEvaluator) PrimaryQualification(speaker *domain.Speaker) bool {
	if speaker.Experience > minExperienceExclusive {
		return true
	}
	if speaker.HasBlog {
		return true
	}
	if len(speaker.Certifications) > minCertificationsExclusive {
		return true
	}
	_, ok := e.allowedEmployers[speaker.Employer]
	return ok
}

// CarveOut grants eligibility when the email domain is not blocked and the browser
// is not a legacy Internet Explorer.
func (e *EligibilityEvaluator) CarveOut(speaker *domain.Speaker) bool {
	_, blocked := e.blockedEmailDomains[EmailDomain(speaker.Email)]
	if !blocked && !speaker.Browser.IsLegacyInternetExplorer() {
		return true
	}
	return false
}

// EmailDomain returns the part of email after the last "@", or email itself when there is none.
func EmailDomain(email string) string {
	if i := strings.LastIndex(email, "@"); i >= 0 {
		return email[i+1:]
	}
	return email
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
