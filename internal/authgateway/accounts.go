package authgateway

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"artisan-storefront/internal/domain/users"

	"gorm.io/gorm"
)

var (
	ErrEmailTaken      = errors.New("email already registered")
	ErrAccountNotFound = errors.New("account not found")
)

// Accounts stores gateway credentials. Emails compare case-insensitively.
type Accounts interface {
	Create(ctx context.Context, acc *users.Account) error
	ByEmail(ctx context.Context, email string) (users.Account, error)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type MemoryAccounts struct {
	mu     sync.Mutex
	nextID uint
	byMail map[string]users.Account
}

func NewMemoryAccounts() *MemoryAccounts {
	return &MemoryAccounts{byMail: map[string]users.Account{}}
}

func (m *MemoryAccounts) Create(_ context.Context, acc *users.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	acc.Email = normalizeEmail(acc.Email)
	if _, ok := m.byMail[acc.Email]; ok {
		return ErrEmailTaken
	}
	m.nextID++
	now := time.Now()
	acc.ID = m.nextID
	acc.CreatedAt, acc.UpdatedAt = now, now
	m.byMail[acc.Email] = *acc
	return nil
}

func (m *MemoryAccounts) ByEmail(_ context.Context, email string) (users.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, ok := m.byMail[normalizeEmail(email)]
	if !ok {
		return users.Account{}, ErrAccountNotFound
	}
	return acc, nil
}

// GormAccounts keeps accounts in the accounts table. The DB must be opened
// with TranslateError so unique violations surface as gorm.ErrDuplicatedKey.
type GormAccounts struct {
	DB *gorm.DB
}

func (g GormAccounts) Create(ctx context.Context, acc *users.Account) error {
	acc.Email = normalizeEmail(acc.Email)
	err := g.DB.WithContext(ctx).Create(acc).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrEmailTaken
	}
	return err
}

func (g GormAccounts) ByEmail(ctx context.Context, email string) (users.Account, error) {
	var acc users.Account
	err := g.DB.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&acc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return users.Account{}, ErrAccountNotFound
	}
	return acc, err
}
