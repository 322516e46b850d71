package scores

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

const accountsKey = "accounts"

var (
	// ErrRejected means the name exists and the password does not match.
	ErrRejected = errors.New("account rejected")
	// ErrEmptyCredentials means the name or password is blank.
	ErrEmptyCredentials = errors.New("name and password are required")
)

// Accounts signs players in, registering unknown names on first use.
type Accounts struct {
	mu   sync.Mutex
	kv   KV
	cost int
}

// NewAccounts stores accounts in kv. cost is the bcrypt cost; zero uses the
// library default.
func NewAccounts(kv KV, cost int) *Accounts {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &Accounts{kv: kv, cost: cost}
}

func (a *Accounts) load() (map[string]string, error) {
	data, err := a.kv.LoadItem(accountsKey)
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}
	hashes := map[string]string{}
	if len(data) == 0 {
		return hashes, nil
	}
	if err := json.Unmarshal(data, &hashes); err != nil {
		return nil, fmt.Errorf("parse accounts: %w", err)
	}
	return hashes, nil
}

// SignIn registers name if it is new, otherwise checks the password.
// It reports whether a new account was created.
func (a *Accounts) SignIn(name, password string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" || password == "" {
		return false, ErrEmptyCredentials
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	hashes, err := a.load()
	if err != nil {
		return false, err
	}
	if hash, ok := hashes[name]; ok {
		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
			return false, fmt.Errorf("%s: %w", name, ErrRejected)
		}
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.cost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}
	hashes[name] = string(hash)
	data, err := json.Marshal(hashes)
	if err != nil {
		return false, fmt.Errorf("encode accounts: %w", err)
	}
	if err := a.kv.SaveItem(accountsKey, data); err != nil {
		return false, fmt.Errorf("save accounts: %w", err)
	}
	return true, nil
}
