package identity

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	ErrIdentityExists     = errors.New("identity already exists for this email")
	ErrIdentityNotFound   = errors.New("identity not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Metadata is auxiliary profile information captured at registration and
// stored alongside the credential.
type Metadata struct {
	Name    string `json:"name,omitempty"`
	Company string `json:"company,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

func (m Metadata) Value() (driver.Value, error) {
	return json.Marshal(m)
}

func (m *Metadata) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	case nil:
		*m = Metadata{}
		return nil
	default:
		return fmt.Errorf("unsupported type for Metadata: %T", value)
	}
}

// Identity is an authentication principal. The credential is an Argon2id
// hash in PHC format; the plaintext never leaves the provider.
type Identity struct {
	ID           string    `gorm:"primaryKey;type:uuid" json:"id"`
	Email        string    `gorm:"type:text;not null;unique" json:"email"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	Metadata     Metadata  `gorm:"type:jsonb" json:"metadata"`
	CreatedAt    time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Identity) TableName() string {
	return "identities"
}

// Provider is the authentication collaborator. The local implementation
// shares the relational store, but callers must treat it as external: it
// cannot join a store transaction, which is why provisioning compensates
// instead of rolling back.
//
//go:generate mockery --name Provider --output ../mocks
type Provider interface {
	// CreateIdentity registers a credential and returns the new identity id.
	CreateIdentity(ctx context.Context, email, password string, meta Metadata) (string, error)

	// DeleteIdentity removes an identity, used as a provisioning compensation.
	DeleteIdentity(ctx context.Context, id string) error

	// VerifyPassword checks a credential and returns the identity id.
	// Wrong email or password both yield ErrInvalidCredentials.
	VerifyPassword(ctx context.Context, email, password string) (string, error)
}
