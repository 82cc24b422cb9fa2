package checker

import (
	"fmt"
	"strings"

	"github.com/namelens/domainideas/internal/core"
)

// Placeholder values shipped in sample env files.
const (
	PlaceholderAPIUser  = "your_user"
	PlaceholderAPIKey   = "your_key"
	PlaceholderUsername = "your_name"
	PlaceholderClientIP = "your_ip"
)

// Credentials identify a registrar API account.
type Credentials struct {
	APIUser  string
	APIKey   string
	Username string
	ClientIP string
}

// Configured reports whether the account can be used as is. The client IP
// may be empty since it is discovered per request.
func (c Credentials) Configured() bool {
	return c.Validate() == nil
}

// Validate checks the account fields. An empty client IP is allowed because
// it can be discovered per request; a placeholder client IP is not.
func (c Credentials) Validate() error {
	if missing := c.missing(); len(missing) > 0 {
		return core.ConfigurationError("validate credentials",
			fmt.Sprintf("missing registrar credentials: %s", strings.Join(missing, ", ")), nil)
	}
	if placeholders := c.placeholders(); len(placeholders) > 0 {
		return core.ConfigurationError("validate credentials",
			fmt.Sprintf("registrar credentials still hold placeholder values: %s", strings.Join(placeholders, ", ")), nil)
	}
	return nil
}

func (c Credentials) missing() []string {
	var fields []string
	if strings.TrimSpace(c.APIUser) == "" {
		fields = append(fields, "api_user")
	}
	if strings.TrimSpace(c.APIKey) == "" {
		fields = append(fields, "api_key")
	}
	if strings.TrimSpace(c.Username) == "" {
		fields = append(fields, "username")
	}
	return fields
}

func (c Credentials) placeholders() []string {
	var fields []string
	if strings.TrimSpace(c.APIUser) == PlaceholderAPIUser {
		fields = append(fields, "api_user")
	}
	if strings.TrimSpace(c.APIKey) == PlaceholderAPIKey {
		fields = append(fields, "api_key")
	}
	if strings.TrimSpace(c.Username) == PlaceholderUsername {
		fields = append(fields, "username")
	}
	if strings.TrimSpace(c.ClientIP) == PlaceholderClientIP {
		fields = append(fields, "client_ip")
	}
	return fields
}
