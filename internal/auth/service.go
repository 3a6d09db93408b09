package auth

// Service gates the API with the fixed credential policy and issues
// short-lived access tokens.
type Service struct {
	credentials *CredentialStore
	jwtManager  *JWTManager
}

func NewAuthService(credentials *CredentialStore, jwtManager *JWTManager) *Service {
	return &Service{
		credentials: credentials,
		jwtManager:  jwtManager,
	}
}

// Login verifies the credentials and returns a signed access token.
func (s *Service) Login(username, password string) (string, error) {
	account, err := s.credentials.Verify(username, password)
	if err != nil {
		return "", err
	}
	return s.jwtManager.GenerateAccessJWT(account.Username, account.Roles, defaultJWTDuration)
}
