package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/greenjets/bladerunner-portal/internal/config"
	"github.com/greenjets/bladerunner-portal/internal/logger"
	"github.com/greenjets/bladerunner-portal/internal/store"
	"github.com/greenjets/bladerunner-portal/internal/utils"
	"github.com/greenjets/bladerunner-portal/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification with the approval
// gate, and JWT token lifecycle, using a UserRepository for persistence and
// bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// bcryptCost controls the bcrypt work factor applied when hashing
	// passwords at registration time.
	bcryptCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// dummyHash is a bcrypt hash of a throwaway value, compared against when
	// the email lookup finds nothing so that unknown-email and wrong-password
	// rejections take comparable time.
	dummyHash []byte

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	dummyHash, err := bcrypt.GenerateFromPassword([]byte("bladerunner-dummy-credential"), cfg.BcryptCost)
	if err != nil {
		logger.Err(err).Msg("failed to precompute dummy bcrypt hash")
	}

	return &authService{
		userRepository: userRepository,
		bcryptCost:     cfg.BcryptCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		dummyHash:      dummyHash,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that username, email and password are all non-empty, hashes the
// password with bcrypt, and delegates persistence to the UserRepository. The
// role is forced to RoleUser and the approval flag to false — neither is ever
// taken from the request.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if any required field is empty.
//   - A wrapped storage error if the repository call fails (e.g. email already
//     taken — see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		Role:         models.RoleUser,
		Approved:     false,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an ordinary user.
//
// Unknown email and wrong password both collapse into ErrInvalidCredentials;
// an unknown email still pays for a bcrypt comparison so the two rejections
// are not distinguishable by timing. After the credentials check, non-admin
// accounts that have not been approved are rejected with
// ErrAccountNotApproved — they can never obtain a token.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	foundUser, err := a.verifyCredentials(ctx, req)
	if err != nil {
		return models.User{}, err
	}

	if !foundUser.CanAuthenticate() {
		logger.FromContext(ctx).Warn().
			Int64("id", foundUser.ID).
			Msg("login rejected: account awaiting approval")
		return models.User{}, ErrAccountNotApproved
	}

	return foundUser, nil
}

// AdminLogin authenticates an administrator. The credential check is the same
// as Login's, but the account must hold RoleAdmin; the approval flag is not
// consulted because admin accounts bypass the approval gate.
func (a *authService) AdminLogin(ctx context.Context, req models.LoginRequest) (models.User, error) {
	foundUser, err := a.verifyCredentials(ctx, req)
	if err != nil {
		return models.User{}, err
	}

	if !foundUser.IsAdmin() {
		logger.FromContext(ctx).Warn().
			Int64("id", foundUser.ID).
			Msg("admin login rejected: account lacks admin role")
		return models.User{}, ErrNotAdmin
	}

	return foundUser, nil
}

// verifyCredentials looks the account up by email and compares the supplied
// password against the stored bcrypt hash. All credential failures surface as
// ErrInvalidCredentials; storage outages propagate wrapped so handlers can
// map them to 503.
func (a *authService) verifyCredentials(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Error().Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			// burn a comparison so an unknown email is not faster to reject
			_ = bcrypt.CompareHashAndPassword(a.dummyHash, []byte(req.Password))
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(req.Password)); err != nil {
		log.Warn().Int64("id", foundUser.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// UserByID re-fetches the account record for a verified token's subject.
// Used by the verify endpoint and the admin gate, both of which need current
// database state rather than the snapshot frozen into the token.
func (a *authService) UserByID(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByID(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, embeds the {id, role} identity snapshot, and
// expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	identity := models.TokenIdentity{ID: user.ID, Role: user.Role}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, identity, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
