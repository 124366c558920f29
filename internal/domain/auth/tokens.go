package auth

// Keys the terminal session is persisted under.
const (
	KeyAccessToken  = "accessToken"
	KeyRefreshToken = "refreshToken"
	KeyUserID       = "userID"
)

// CredentialKeys lists every persisted session key.
var CredentialKeys = []string{KeyAccessToken, KeyRefreshToken, KeyUserID}

// TokenSet is what the credential-issuing endpoints hand back. Any field may be empty:
// a refresh only returns a new access token.
type TokenSet struct {
	Access  string
	Refresh string
	UserID  string
}

func (t TokenSet) IsEmpty() bool {
	return t.Access == "" && t.Refresh == "" && t.UserID == ""
}
