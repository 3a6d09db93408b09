package application

// MockUserService satisfies UserServiceInterface in tests.
type MockUserService struct {
	ExistingUserIDs []int64
	Err             error
}

func (m *MockUserService) DoesUserExistByID(userID int64) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for _, id := range m.ExistingUserIDs {
		if id == userID {
			return true, nil
		}
	}
	return false, nil
}
