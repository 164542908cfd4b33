package buyer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeRepo struct {
	created *Buyer
}

func (f *fakeRepo) Create(_ context.Context, b *Buyer) error { f.created = b; return nil }
func (f *fakeRepo) GetByID(_ context.Context, id string) (*Buyer, error) {
	if f.created != nil && f.created.ID.String() == id {
		return f.created, nil
	}
	return nil, assert.AnError
}
func (f *fakeRepo) GetByEmail(context.Context, string) (*Buyer, error) { return nil, assert.AnError }

func (f *fakeRepo) Update(_ context.Context, b *Buyer) error { f.created = b; return nil }

func (f *fakeRepo) Delete(context.Context, string) error { return nil }

func TestRegister_HashesPassword(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	b, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Jo",
		Email:    "jo@example.com",
		Password: "hunter2",
		Pincode:  "560001",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", b.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(b.PasswordHash), []byte("hunter2")))
	assert.Equal(t, "560001", repo.created.Pincode)
}

func TestRegister_RequiresEmailAndPassword(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.Register(context.Background(), RegisterRequest{Email: "", Password: "x"})
	assert.Error(t, err)
	_, err = svc.Register(context.Background(), RegisterRequest{Email: "a@b.c", Password: " "})
	assert.Error(t, err)
}

func TestUpdate_OverwritesProfileFields(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	b, err := svc.Register(context.Background(), RegisterRequest{
		Email: "jo@example.com", Password: "pw", Name: "Jo",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), b.ID.String(), UpdateRequest{
		Name: "Jo B", Address: "12 Green Lane",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jo B", updated.Name)
	assert.Equal(t, "12 Green Lane", updated.Address)
	assert.Equal(t, b.PasswordHash, updated.PasswordHash)
}
