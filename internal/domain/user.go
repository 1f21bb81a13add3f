package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Active        bool      `json:"active"`
	AdminOverride bool      `json:"admin_override"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Claims é o conteúdo do token JWT. O token identifica o usuário;
// o privilégio de administrador é sempre relido do banco.
type Claims struct {
	UserID    int
	UserName  string
	UserEmail string
	jwt.RegisteredClaims
}

// Principal é a identidade que executa uma consulta analítica
type Principal struct {
	UserID        int
	AdminOverride bool
}
