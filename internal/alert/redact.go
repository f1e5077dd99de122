package alert

import "strings"

// RedactEmail masks an address for logging, keeping the first character of
// the local part: "ops@example.com" becomes "o***@example.com".
func RedactEmail(email string) string {
	if email == "" {
		return ""
	}

	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return "***"
	}
	if local == "" {
		return "***@" + domain
	}
	return local[:1] + "***@" + domain
}
