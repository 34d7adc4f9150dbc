package upstream

import "net/http"

// Credentials is the request-scoped auth context forwarded to the upstream
// backend: the caller's cookies plus an optional Authorization header. It is
// extracted once per inbound request and passed explicitly through every
// service call; nothing is stashed in package state.
type Credentials struct {
	Cookies       []*http.Cookie
	Authorization string
}

// CredentialsFromRequest captures the forwardable auth context of an inbound
// request.
func CredentialsFromRequest(r *http.Request) Credentials {
	return Credentials{
		Cookies:       r.Cookies(),
		Authorization: r.Header.Get("Authorization"),
	}
}

func (c Credentials) apply(req *http.Request) {
	for _, cookie := range c.Cookies {
		req.AddCookie(cookie)
	}
	if c.Authorization != "" {
		req.Header.Set("Authorization", c.Authorization)
	}
}
