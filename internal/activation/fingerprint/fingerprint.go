package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"strings"
)

// Provider yields a stable identifier for the machine the shop runs on. The
// identifier feeds the activation code check, so it must not change across
// restarts on the same host.
type Provider interface {
	Fingerprint() (string, error)
}

type hostProvider struct{}

// NewHostProvider derives the fingerprint from the hostname.
func NewHostProvider() Provider {
	return hostProvider{}
}

func (hostProvider) Fingerprint() (string, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(hostname))))
	return strings.ToUpper(hex.EncodeToString(sum[:6])), nil
}
