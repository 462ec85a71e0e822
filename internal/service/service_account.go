// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-gym-keeper/internal/config"
	"github.com/MKhiriev/go-gym-keeper/internal/logger"
	"github.com/MKhiriev/go-gym-keeper/internal/store"
	"github.com/MKhiriev/go-gym-keeper/internal/telemetry"
	"github.com/MKhiriev/go-gym-keeper/internal/utils"
	"github.com/MKhiriev/go-gym-keeper/models"
)

// sessionKeyPrefix namespaces session entries in the shared key-value store.
const sessionKeyPrefix = "session:"

// dummyPassword is hashed once and compared against when a login names an
// unknown email, so that path costs one bcrypt comparison like a real one.
const dummyPassword = "gym-keeper-dummy-password"

// accountService is the concrete implementation of AccountService.
//
// Accounts live in an AccountRepository. Sessions are JSON documents in a
// SessionStore keyed by an HMAC of the session id; the bearer token handed
// to the client is a JWT whose "jti" names that session.
type accountService struct {
	accounts store.AccountRepository
	sessions store.SessionStore
	hasher   PasswordHasher
	ids      *utils.UUIDGenerator
	metrics  *telemetry.Metrics

	tokenSignKey   string
	tokenIssuer    string
	tokenDuration  time.Duration
	sessionHashKey string
	sessionTTL     time.Duration

	dummyHash func() (string, error)
	now       func() time.Time

	logger *logger.Logger
}

// NewAccountService builds the account directory over accounts and
// sessions. sessionTTL bounds how long a session is kept; zero falls back
// to the token duration.
func NewAccountService(
	accounts store.AccountRepository,
	sessions store.SessionStore,
	hasher PasswordHasher,
	cfg config.App,
	sessionTTL time.Duration,
	metrics *telemetry.Metrics,
	logger *logger.Logger,
) AccountService {
	if sessionTTL <= 0 {
		sessionTTL = cfg.TokenDuration
	}

	return &accountService{
		accounts:       accounts,
		sessions:       sessions,
		hasher:         hasher,
		ids:            utils.NewUUIDGenerator(),
		metrics:        metrics,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		sessionHashKey: cfg.SessionHashKey,
		sessionTTL:     sessionTTL,
		dummyHash: sync.OnceValues(func() (string, error) {
			return hasher.Hash(dummyPassword)
		}),
		now:    time.Now,
		logger: logger,
	}
}

// Register creates the account and opens its first session.
//
// The password is stored only as a bcrypt hash. The id is the largest
// existing id plus one and the registration date is today's UTC date.
// Returns ErrDuplicateEmail when the email is taken; nothing is stored then.
func (s *accountService) Register(ctx context.Context, registration models.Registration) (session models.Session, err error) {
	log := logger.FromContext(ctx)
	defer func() { s.metrics.IncRegistration(err) }()

	passwordHash, err := s.hasher.Hash(registration.Password)
	if err != nil {
		log.Err(err).Str("func", "*accountService.Register").Msg("password hashing failed")
		return models.Session{}, err
	}

	account := registration.Account()
	account.PasswordHash = passwordHash
	account.RegistrationDate = s.now().UTC().Format(models.RegistrationDateLayout)

	created, err := s.accounts.CreateAccount(ctx, account)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Info().Str("email", registration.Email).Msg("registration with taken email")
			return models.Session{}, ErrDuplicateEmail
		}
		log.Err(err).Stringer("registration", registration).Msg("account creation ended with error")
		return models.Session{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	log.Info().Int64("account_id", created.ID).Msg("account registered")

	return s.openSession(ctx, created)
}

// Login opens a session for the account with the given email and password.
// An unknown email and a wrong password both yield ErrInvalidCredentials.
func (s *accountService) Login(ctx context.Context, credentials models.Credentials) (session models.Session, err error) {
	log := logger.FromContext(ctx)
	defer func() { s.metrics.IncLogin(err) }()

	account, err := s.accounts.FindAccountByEmail(ctx, credentials.Email)
	if err != nil {
		if !errors.Is(err, store.ErrAccountNotFound) {
			log.Err(err).Stringer("credentials", credentials).Msg("account search by email failed")
			return models.Session{}, fmt.Errorf("account search by email failed: %w", err)
		}

		// equalize timing with the known-email path
		if hash, hashErr := s.dummyHash(); hashErr == nil {
			_ = s.hasher.Verify(hash, credentials.Password)
		}
		log.Info().Str("email", credentials.Email).Msg("login with unknown email")
		return models.Session{}, ErrInvalidCredentials
	}

	if err = s.hasher.Verify(account.PasswordHash, credentials.Password); err != nil {
		log.Info().Int64("account_id", account.ID).Msg("login with wrong password")
		return models.Session{}, ErrInvalidCredentials
	}

	return s.openSession(ctx, account)
}

// Logout removes the session named by token. Tokens that name no session,
// or do not parse at all, are accepted silently.
func (s *accountService) Logout(ctx context.Context, token string) error {
	parsed, err := utils.ValidateAndParseJWTToken(token, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		return nil
	}

	if err = s.sessions.Remove(ctx, s.sessionKey(parsed.SessionID)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*accountService.Logout").Msg("failed to remove session")
		return fmt.Errorf("failed to remove session: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("account_id", parsed.AccountID).Msg("logged out")
	return nil
}

// CurrentSession resolves token to its live session. Sessions that are
// expired, unreadable or do not match the token are removed and reported
// as ErrNoSession.
func (s *accountService) CurrentSession(ctx context.Context, token string) (models.Session, error) {
	log := logger.FromContext(ctx)

	parsed, err := utils.ValidateAndParseJWTToken(token, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		return models.Session{}, ErrNoSession
	}

	key := s.sessionKey(parsed.SessionID)
	data, err := s.sessions.Get(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.Session{}, ErrNoSession
		}
		log.Err(err).Str("func", "*accountService.CurrentSession").Msg("failed to read session")
		return models.Session{}, fmt.Errorf("failed to read session: %w", err)
	}

	var session models.Session
	if err = json.Unmarshal(data, &session); err != nil ||
		session.SchemaVersion != models.SessionSchemaVersion ||
		session.ID != parsed.SessionID ||
		session.Account.ID != parsed.AccountID ||
		session.Expired(s.now()) {
		if err != nil {
			log.Warn().Err(err).Msg("discarding unreadable session")
		}
		s.discardSession(ctx, key)
		return models.Session{}, ErrNoSession
	}

	session.Token = token
	return session, nil
}

// ListAccounts returns every account with its password hash cleared.
func (s *accountService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	accounts, err := s.accounts.ListAccounts(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*accountService.ListAccounts").Msg("listing accounts failed")
		return nil, fmt.Errorf("listing accounts failed: %w", err)
	}

	public := make([]models.Account, 0, len(accounts))
	for _, account := range accounts {
		public = append(public, account.Public())
	}
	return public, nil
}

// ChangePassword replaces the password of the account behind token after
// checking the current one. Open sessions stay valid.
func (s *accountService) ChangePassword(ctx context.Context, token string, change models.PasswordChange) error {
	log := logger.FromContext(ctx)

	session, err := s.CurrentSession(ctx, token)
	if err != nil {
		return err
	}

	account, err := s.accounts.FindAccountByID(ctx, session.Account.ID)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("account search by id failed: %w", err)
	}

	if err = s.hasher.Verify(account.PasswordHash, change.CurrentPassword); err != nil {
		log.Info().Int64("account_id", account.ID).Msg("password change with wrong current password")
		return ErrInvalidCredentials
	}

	newHash, err := s.hasher.Hash(change.NewPassword)
	if err != nil {
		return err
	}

	if err = s.accounts.UpdatePasswordHash(ctx, account.ID, newHash); err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		log.Err(err).Int64("account_id", account.ID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	log.Info().Int64("account_id", account.ID).Msg("password changed")
	return nil
}

// openSession stores a new session for account and returns it together
// with its bearer token.
func (s *accountService) openSession(ctx context.Context, account models.Account) (models.Session, error) {
	log := logger.FromContext(ctx)

	sessionID := s.ids.Generate()
	token, err := utils.GenerateSessionToken(s.tokenIssuer, account.ID, sessionID, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*accountService.openSession").Msg("token creation failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	now := s.now().UTC()
	session := models.Session{
		SchemaVersion: models.SessionSchemaVersion,
		ID:            sessionID,
		Account:       account.Public(),
		CreatedAt:     now,
		ExpiresAt:     now.Add(s.sessionTTL),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	if err = s.sessions.Set(ctx, s.sessionKey(sessionID), data, s.sessionTTL); err != nil {
		log.Err(err).Str("func", "*accountService.openSession").Msg("failed to store session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	session.Token = token.String()
	return session, nil
}

func (s *accountService) discardSession(ctx context.Context, key string) {
	if err := s.sessions.Remove(ctx, key); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("failed to remove stale session")
	}
}

// sessionKey maps a session id onto its store key. The id itself is never
// stored, so a dump of the store cannot be turned back into tokens.
func (s *accountService) sessionKey(sessionID string) string {
	return sessionKeyPrefix + utils.HashString(sessionID, s.sessionHashKey)
}
