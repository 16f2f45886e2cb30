package domain

import "strings"

// validateEmailFormat performs a minimal structural check on an email
// address. Full RFC validation happens at the API boundary via the
// request validator; this guards direct construction in services/tests.
func validateEmailFormat(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domainPart := email[at+1:]
	if !strings.Contains(domainPart, ".") {
		return false
	}
	if strings.ContainsAny(email, " \t\n") {
		return false
	}
	return true
}
