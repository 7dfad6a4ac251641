package driver

import (
	"fmt"
	"net/url"
	"strings"
)

// MaxDSNLength defines the maximum connection string length accepted
const MaxDSNLength = 4096

// ValidateDSN performs basic validation of a connection string before
// scheme resolution.
func ValidateDSN(dsn string) error {
	if strings.TrimSpace(dsn) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidDSN)
	}

	if strings.Contains(dsn, "\x00") {
		return fmt.Errorf("%w: contains null byte", ErrInvalidDSN)
	}

	if len(dsn) > MaxDSNLength {
		return fmt.Errorf("%w: longer than %d bytes", ErrInvalidDSN, MaxDSNLength)
	}

	return nil
}

// RedactDSN removes the password from a connection string so it can
// appear in errors and logs.
func RedactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return dsn
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
	}
	return u.String()
}
