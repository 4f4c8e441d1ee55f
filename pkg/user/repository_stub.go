package user

import "context"

type RepositoryStub struct {
	login  Login
	resets int
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{}
}

func (r *RepositoryStub) GetLogin(ctx context.Context) (Login, error) {
	return r.login, nil
}

func (r *RepositoryStub) StoreLogin(ctx context.Context, login Login) error {
	r.login = login
	return nil
}

func (r *RepositoryStub) ResetSession(ctx context.Context) error {
	r.login = Login{}
	r.resets++
	return nil
}

// Resets reports how many times ResetSession was called.
func (r *RepositoryStub) Resets() int {
	return r.resets
}
