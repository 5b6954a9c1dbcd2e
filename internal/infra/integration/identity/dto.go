package identity

// User is the slice of the identity provider's user object we care about.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	AppMetadata struct {
		Role string `json:"role"`
	} `json:"app_metadata"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Msg     string `json:"msg"`
	Code    int    `json:"code"`
}
