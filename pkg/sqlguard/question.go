package sqlguard

import (
	"fmt"

	libinjection "github.com/corazawaf/libinjection-go"
)

// CheckQuestion flags free-text questions that embed SQL injection payloads
// before they are interpolated into a prompt. Questions that fail this check
// are rejected locally without consuming a model call.
func CheckQuestion(question string) error {
	isSQLi, fingerprint := libinjection.IsSQLi(question)
	if isSQLi {
		return fmt.Errorf("question contains a SQL injection pattern (fingerprint %s)", string(fingerprint))
	}
	return nil
}
