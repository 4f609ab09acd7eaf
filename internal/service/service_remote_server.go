package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/crypto"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/internal/validators"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// remoteServerService is the concrete implementation of RemoteServerService.
//
// Peers that connect to us log in with the child username and password
// registered for them. A successful login yields a JWT whose subject is
// the local server id of the peer.
//
// The password we present to a peer is sealed before it is stored and
// opened again whenever a peer is read.
type remoteServerService struct {
	servers   store.RemoteServerRepository
	sealer    crypto.CredentialSealer
	validator validators.Validator
	generator *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify peer tokens.
	tokenSignKey string
	// tokenIssuer is the "iss" claim of every issued token.
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

func NewRemoteServerService(servers store.RemoteServerRepository, sealer crypto.CredentialSealer, cfg config.App, logger *logger.Logger) RemoteServerService {
	return &remoteServerService{
		servers:       servers,
		sealer:        sealer,
		validator:     validators.NewRemoteServerValidator(),
		generator:     utils.NewUUIDGenerator(),
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// CreateRemoteServer assigns a uuid when none is given, hashes
// childPassword and stores the peer. Only one PARENT may exist.
func (s *remoteServerService) CreateRemoteServer(ctx context.Context, server models.RemoteServer, childPassword string) (models.RemoteServer, error) {
	log := logger.FromContext(ctx)

	if server.UUID == "" {
		server.UUID = s.generator.Generate()
	}
	if err := s.validator.Validate(ctx, server); err != nil {
		log.Err(err).Str("server_uuid", server.UUID).Msg("invalid remote server")
		return models.RemoteServer{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := s.setChildPassword(&server, childPassword); err != nil {
		return models.RemoteServer{}, err
	}

	password := server.Password
	sealed, err := s.sealer.Seal(password)
	if err != nil {
		return models.RemoteServer{}, fmt.Errorf("failed to seal peer password: %w", err)
	}
	server.Password = sealed

	if err = s.servers.CreateRemoteServer(ctx, &server); err != nil {
		log.Err(err).
			Str("func", "remoteServerService.CreateRemoteServer").
			Str("server_uuid", server.UUID).
			Msg("remote server creation ended with error")
		return models.RemoteServer{}, fmt.Errorf("remote server creation ended with error: %w", err)
	}

	log.Info().
		Str("server_uuid", server.UUID).
		Str("type", string(server.Type)).
		Msg("remote server registered")
	server.Password = password
	return server, nil
}

// UpdateRemoteServer overwrites the peer definition. The stored child
// password hash is kept when childPassword is empty, the stored peer
// password when server.Password is empty.
func (s *remoteServerService) UpdateRemoteServer(ctx context.Context, server models.RemoteServer, childPassword string) (models.RemoteServer, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, server); err != nil {
		log.Err(err).Str("server_uuid", server.UUID).Msg("invalid remote server")
		return models.RemoteServer{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	current, err := s.servers.GetRemoteServer(ctx, server.UUID)
	if err != nil {
		return models.RemoteServer{}, err
	}
	server.ServerID = current.ServerID
	server.ChildPasswordHash = current.ChildPasswordHash
	if server.LastSync == nil {
		server.LastSync = current.LastSync
	}
	if err = s.setChildPassword(&server, childPassword); err != nil {
		return models.RemoteServer{}, err
	}

	password := server.Password
	if password == "" {
		server.Password = current.Password
		if password, err = s.sealer.Open(current.Password); err != nil {
			return models.RemoteServer{}, fmt.Errorf("failed to open peer password: %w", err)
		}
	} else if server.Password, err = s.sealer.Seal(password); err != nil {
		return models.RemoteServer{}, fmt.Errorf("failed to seal peer password: %w", err)
	}

	if err = s.servers.UpdateRemoteServer(ctx, &server); err != nil {
		log.Err(err).
			Str("func", "remoteServerService.UpdateRemoteServer").
			Str("server_uuid", server.UUID).
			Msg("remote server update ended with error")
		return models.RemoteServer{}, fmt.Errorf("remote server update ended with error: %w", err)
	}
	server.Password = password
	return server, nil
}

func (s *remoteServerService) setChildPassword(server *models.RemoteServer, childPassword string) error {
	if childPassword == "" {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(childPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash child password: %w", err)
	}
	server.ChildPasswordHash = string(hash)
	return nil
}

func (s *remoteServerService) DeleteRemoteServer(ctx context.Context, uuid string) error {
	if uuid == "" {
		return ErrInvalidDataProvided
	}
	return s.servers.DeleteRemoteServer(ctx, uuid)
}

func (s *remoteServerService) GetRemoteServer(ctx context.Context, uuid string) (*models.RemoteServer, error) {
	server, err := s.servers.GetRemoteServer(ctx, uuid)
	if err != nil {
		return nil, err
	}
	return server, s.openPassword(server)
}

func (s *remoteServerService) GetParentServer(ctx context.Context) (*models.RemoteServer, error) {
	parent, err := s.servers.GetParentServer(ctx)
	if errors.Is(err, store.ErrRemoteServerNotFound) {
		return nil, ErrNoParentDefined
	}
	if err != nil {
		return nil, err
	}
	return parent, s.openPassword(parent)
}

func (s *remoteServerService) GetRemoteServers(ctx context.Context) ([]models.RemoteServer, error) {
	servers, err := s.servers.GetRemoteServers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range servers {
		if err = s.openPassword(&servers[i]); err != nil {
			return nil, err
		}
	}
	return servers, nil
}

func (s *remoteServerService) openPassword(server *models.RemoteServer) error {
	password, err := s.sealer.Open(server.Password)
	if err != nil {
		return fmt.Errorf("failed to open password of peer %s: %w", server.UUID, err)
	}
	server.Password = password
	return nil
}

// Authenticate checks the credentials a peer logs in with.
//
// Returns:
//   - ErrInvalidDataProvided if username or password is empty.
//   - ErrUnknownSender if no peer is registered with that username.
//   - ErrWrongPassword if the password does not match.
//   - ErrServerDisabled if the peer is disabled.
func (s *remoteServerService) Authenticate(ctx context.Context, creds models.PeerCredentials) (*models.RemoteServer, error) {
	log := logger.FromContext(ctx)

	if creds.Username == "" || creds.Password == "" {
		return nil, ErrInvalidDataProvided
	}

	server, err := s.servers.GetRemoteServerByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, store.ErrRemoteServerNotFound) {
			log.Warn().Str("username", creds.Username).Msg("login from unknown peer")
			return nil, ErrUnknownSender
		}
		return nil, err
	}

	if server.ChildPasswordHash == "" ||
		bcrypt.CompareHashAndPassword([]byte(server.ChildPasswordHash), []byte(creds.Password)) != nil {
		log.Warn().
			Str("username", creds.Username).
			Str("server_uuid", server.UUID).
			Msg("wrong password")
		return nil, ErrWrongPassword
	}
	if server.Disabled {
		return nil, ErrServerDisabled
	}
	return server, nil
}

// CreateToken issues a signed JWT for server.
func (s *remoteServerService) CreateToken(ctx context.Context, server *models.RemoteServer) (models.Token, error) {
	if server == nil || server.ServerID <= 0 {
		return models.Token{}, ErrInvalidDataProvided
	}

	token, err := utils.GenerateJWTToken(s.tokenIssuer, server.ServerID, server.UUID, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "remoteServerService.CreateToken").
			Str("server_uuid", server.UUID).
			Msg("failed to sign token")
		return models.Token{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// ParseToken validates tokenString and loads the peer it was issued to.
func (s *remoteServerService) ParseToken(ctx context.Context, tokenString string) (*models.RemoteServer, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token validation failed")
		return nil, fmt.Errorf("%w: %w", ErrTokenIsExpired, err)
	}

	server, err := s.servers.GetRemoteServerByID(ctx, token.ServerID)
	if err != nil {
		if errors.Is(err, store.ErrRemoteServerNotFound) {
			return nil, ErrUnknownSender
		}
		return nil, err
	}
	if server.UUID != token.PeerUUID {
		logger.FromContext(ctx).Warn().
			Int64("server_id", token.ServerID).
			Str("token_peer", token.PeerUUID).
			Str("stored_peer", server.UUID).
			Msg("session token issued for a replaced peer")
		return nil, ErrUnknownSender
	}
	if server.Disabled {
		return nil, ErrServerDisabled
	}
	return server, nil
}
