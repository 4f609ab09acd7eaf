package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// remoteServerRepository is the SQL implementation of
// [RemoteServerRepository] over the remote_server table.
type remoteServerRepository struct {
	*DB
	logger *logger.Logger
}

func NewRemoteServerRepository(db *DB, logger *logger.Logger) RemoteServerRepository {
	logger.Debug().Msg("creating remote server repository")
	return &remoteServerRepository{
		DB:     db,
		logger: logger,
	}
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// CreateRemoteServer inserts server and sets its ServerID.
//
// Error handling:
//   - unique violation on the parent index → [ErrParentAlreadyDefined].
//   - any other unique violation → [ErrRemoteServerExists].
func (r *remoteServerRepository) CreateRemoteServer(ctx context.Context, server *models.RemoteServer) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Insert("remote_server").
		Columns("uuid", "nickname", "type", "address", "username", "password", "child_username",
			"child_password_hash", "last_sync", "classes_sent", "classes_received", "disabled").
		Values(server.UUID, server.Nickname, string(server.Type), server.Address, server.Username, server.Password,
			nullString(server.ChildUsername), server.ChildPasswordHash, server.LastSync,
			server.ClassesSent.String(), server.ClassesReceived.String(), server.Disabled).
		Suffix("RETURNING server_id").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.conn(ctx).QueryRowContext(ctx, query, args...).Scan(&server.ServerID); err != nil {
		log.Err(err).
			Str("func", "remoteServerRepository.CreateRemoteServer").
			Str("server_uuid", server.UUID).
			Msg("failed to insert remote server")
		if uniqueViolation(err) {
			if server.IsParent() {
				return ErrParentAlreadyDefined
			}
			return ErrRemoteServerExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *remoteServerRepository) UpdateRemoteServer(ctx context.Context, server *models.RemoteServer) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Update("remote_server").
		Set("nickname", server.Nickname).
		Set("type", string(server.Type)).
		Set("address", server.Address).
		Set("username", server.Username).
		Set("password", server.Password).
		Set("child_username", nullString(server.ChildUsername)).
		Set("child_password_hash", server.ChildPasswordHash).
		Set("last_sync", server.LastSync).
		Set("classes_sent", server.ClassesSent.String()).
		Set("classes_received", server.ClassesReceived.String()).
		Set("disabled", server.Disabled).
		Where(sq.Eq{"uuid": server.UUID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "remoteServerRepository.UpdateRemoteServer").
			Str("server_uuid", server.UUID).
			Msg("failed to update remote server")
		if uniqueViolation(err) {
			if server.IsParent() {
				return ErrParentAlreadyDefined
			}
			return ErrRemoteServerExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrRemoteServerNotFound
	}
	return nil
}

func (r *remoteServerRepository) DeleteRemoteServer(ctx context.Context, uuid string) error {
	query, args, err := r.builder().Delete("remote_server").Where(sq.Eq{"uuid": uuid}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "remoteServerRepository.DeleteRemoteServer").
			Str("server_uuid", uuid).
			Msg("failed to delete remote server")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrRemoteServerNotFound
	}
	return nil
}

func (r *remoteServerRepository) GetRemoteServer(ctx context.Context, uuid string) (*models.RemoteServer, error) {
	return r.getOne(ctx, "remoteServerRepository.GetRemoteServer", sq.Eq{"uuid": uuid})
}

func (r *remoteServerRepository) GetRemoteServerByID(ctx context.Context, serverID int64) (*models.RemoteServer, error) {
	return r.getOne(ctx, "remoteServerRepository.GetRemoteServerByID", sq.Eq{"server_id": serverID})
}

// GetRemoteServerByUsername finds the peer that authenticates to us as
// childUsername.
func (r *remoteServerRepository) GetRemoteServerByUsername(ctx context.Context, childUsername string) (*models.RemoteServer, error) {
	return r.getOne(ctx, "remoteServerRepository.GetRemoteServerByUsername", sq.Eq{"child_username": childUsername})
}

func (r *remoteServerRepository) GetParentServer(ctx context.Context) (*models.RemoteServer, error) {
	return r.getOne(ctx, "remoteServerRepository.GetParentServer", sq.Eq{"type": string(models.RemoteServerTypeParent)})
}

func (r *remoteServerRepository) GetRemoteServers(ctx context.Context) ([]models.RemoteServer, error) {
	return r.list(ctx, "remoteServerRepository.GetRemoteServers", nil)
}

func (r *remoteServerRepository) UpdateLastSync(ctx context.Context, serverID int64, at time.Time) error {
	query, args, err := r.builder().
		Update("remote_server").
		Set("last_sync", at.UTC()).
		Where(sq.Eq{"server_id": serverID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "remoteServerRepository.UpdateLastSync").
			Int64("server_id", serverID).
			Msg("failed to update last sync")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrRemoteServerNotFound
	}
	return nil
}

func (r *remoteServerRepository) getOne(ctx context.Context, fn string, where sq.Sqlizer) (*models.RemoteServer, error) {
	servers, err := r.list(ctx, fn, where)
	if err != nil {
		return nil, err
	}
	if len(servers) == 0 {
		return nil, ErrRemoteServerNotFound
	}
	return &servers[0], nil
}

func (r *remoteServerRepository) list(ctx context.Context, fn string, where sq.Sqlizer) ([]models.RemoteServer, error) {
	log := logger.FromContext(ctx)

	q := r.builder().Select(remoteServerColumns).From("remote_server")
	if where != nil {
		q = q.Where(where)
	}
	query, args, err := q.OrderBy("server_id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute query for remote servers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	servers := make([]models.RemoteServer, 0, 4)
	for rows.Next() {
		server, scanErr := scanRemoteServer(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", fn).Msg("failed to scan remote server row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		servers = append(servers, server)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return servers, nil
}

func scanRemoteServer(rows *sql.Rows) (models.RemoteServer, error) {
	var (
		server         models.RemoteServer
		serverType     string
		childUsername  sql.NullString
		lastSync       sql.NullTime
		sent, received string
	)
	err := rows.Scan(
		&server.ServerID,
		&server.UUID,
		&server.Nickname,
		&serverType,
		&server.Address,
		&server.Username,
		&server.Password,
		&childUsername,
		&server.ChildPasswordHash,
		&lastSync,
		&sent,
		&received,
		&server.Disabled,
	)
	if err != nil {
		return models.RemoteServer{}, err
	}

	server.Type = models.RemoteServerType(serverType)
	server.ChildUsername = childUsername.String
	if lastSync.Valid {
		t := lastSync.Time.UTC()
		server.LastSync = &t
	}
	server.ClassesSent = models.ParseContainedClasses(sent)
	server.ClassesReceived = models.ParseContainedClasses(received)
	return server, nil
}

