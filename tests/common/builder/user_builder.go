//go:build unit || e2e

package builder

import (
	"time"

	"restaurant-api/internal/domain/user"
	reqdto "restaurant-api/internal/handler/dto/request"
	sqlc "restaurant-api/internal/infra/sqlc/generated"
	"restaurant-api/internal/pkg/pgconv"
	"restaurant-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	Username string
	Email    string
	Password string
	IsActive bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Username: "littlelemon",
		Email:    "guest@littlelemon.com",
		Password: DefaultPassword,
		IsActive: true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// FakeHash stands in for bcrypt so tests can predict the stored hash.
func FakeHash(plain string) (string, error) {
	return "hashed:" + plain, nil
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	return user.NewUser(u.BuildRegistration(), FakeHash, FixedNow)
}

func (u *UserBuilder) BuildRegistration() user.Registration {
	return user.Registration{
		Username: u.Username,
		Email:    u.Email,
		Password: u.Password,
	}
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	now := time.Now().UTC()
	hash, _ := FakeHash(u.Password)
	return sqlc.Users{
		ID:           uuid.New(),
		Username:     u.Username,
		Email:        pgconv.NullableText(u.Email),
		PasswordHash: hash,
		IsActive:     u.IsActive,
		LastLogin:    pgtype.Timestamptz{},
		CreatedAt:    Timestamptz(now),
		UpdatedAt:    Timestamptz(now),
	}
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:        uuid.New(),
		Username:  u.Username,
		Email:     u.Email,
		IsActive:  u.IsActive,
		CreatedAt: FixedNow,
	}
}

func (u *UserBuilder) BuildRegisterRequestDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Username: u.Username,
		Password: u.Password,
		Email:    u.Email,
	}
}

func (u *UserBuilder) BuildTokenRequestDTO() reqdto.TokenObtainRequest {
	return reqdto.TokenObtainRequest{
		Username: u.Username,
		Password: u.Password,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithPassword(password string) *UserBuilder {
	u.Password = password
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
