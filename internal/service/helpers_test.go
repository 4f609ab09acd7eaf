package service

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-keeper/internal/adapter"
	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/crypto"
	"github.com/MKhiriev/go-sync-keeper/internal/domain"
	"github.com/MKhiriev/go-sync-keeper/internal/interceptor"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/schema"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// node is one complete server over its own SQLite file.
type node struct {
	t    *testing.T
	name string
	uuid string

	storages   *store.Storages
	registry   *schema.Registry
	sessions   *store.SessionFactory
	properties PropertyService
	records    SyncRecordService
	servers    RemoteServerService
	ingest     IngestService
	indexer    *spyIndexer
}

func newNode(t *testing.T, name string, status models.SyncStatus) *node {
	t.Helper()
	ctx := context.Background()
	log := logger.Nop()

	cfg := config.DB{DSN: filepath.Join(t.TempDir(), name+".db"), Driver: config.DriverSQLite}
	db, err := store.NewConnectSQLite(ctx, cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())

	storages := store.NewStoragesFromDB(db, log)
	registry := domain.NewRegistry()

	properties := NewPropertyService(storages.GlobalPropertyRepository, log)
	require.NoError(t, properties.Init(ctx, name))
	require.NoError(t, properties.SetSyncStatus(ctx, status))

	records := NewSyncRecordService(storages.SyncRecordRepository, storages.RemoteServerRepository, properties, db, nil, log)
	ic := interceptor.New(registry, properties, storages.EntityRepository, records, utils.NewUUIDGenerator(), log)
	sessions := store.NewSessionFactory(db, storages.EntityRepository, registry, ic, log)

	indexer := &spyIndexer{next: NewConceptIndexer(storages.ConceptWordRepository)}

	return &node{
		t:          t,
		name:       name,
		uuid:       properties.ServerUUID(ctx),
		storages:   storages,
		registry:   registry,
		sessions:   sessions,
		properties: properties,
		records:    records,
		servers: NewRemoteServerService(storages.RemoteServerRepository, testSealer(t), config.App{
			TokenSignKey:  "test-key",
			TokenIssuer:   "test",
			TokenDuration: time.Hour,
		}, log),
		ingest: NewIngestService(properties, records, storages.ImportRecordRepository, sessions, registry,
			indexer, nil, nil, log),
		indexer: indexer,
	}
}

func (n *node) transmission(transport adapter.Transport) TransmissionService {
	return NewTransmissionService(n.properties, n.records, n.servers, n.storages.RemoteServerRepository,
		transport, n.ingest, nil, nil, logger.Nop())
}

// register stores peer as a remote server of n.
func (n *node) register(peer *node, typ models.RemoteServerType) *models.RemoteServer {
	n.t.Helper()

	server := models.RemoteServer{
		UUID:     peer.uuid,
		Nickname: peer.name,
		Type:     typ,
		Address:  "http://" + peer.name + ".example",
	}
	if typ == models.RemoteServerTypeChild {
		server.ChildUsername = "child-" + peer.name
	} else {
		server.Username = "child-" + n.name
		server.Password = "secret"
	}
	created, err := n.servers.CreateRemoteServer(context.Background(), server, "secret")
	require.NoError(n.t, err)
	return &created
}

// link registers parent on child and child on parent.
func link(child, parent *node) (parentOnChild, childOnParent *models.RemoteServer) {
	return child.register(parent, models.RemoteServerTypeParent), parent.register(child, models.RemoteServerTypeChild)
}

// write runs fn in a session of n and returns the journaled record.
func (n *node) write(fn func(ctx context.Context, s *store.EntitySession)) *models.SyncRecord {
	n.t.Helper()
	ctx := context.Background()

	s, err := n.sessions.Begin(ctx)
	require.NoError(n.t, err)
	defer s.Rollback(ctx)

	fn(ctx, s)
	record, err := s.Commit(ctx)
	require.NoError(n.t, err)
	return record
}

// load reads one entity of n in a throwaway session.
func (n *node) load(typ, uuid string) (schema.Entity, error) {
	ctx := context.Background()
	s, err := n.sessions.Begin(ctx)
	require.NoError(n.t, err)
	defer s.Rollback(ctx)
	return s.GetByUUID(ctx, typ, uuid)
}

// loopback delivers envelopes straight into the ingest service of the
// addressed node, the way the HTTP handler would.
type loopback struct {
	nodes map[string]*node
	sent  []*models.SyncTransmission
}

func newLoopback(nodes ...*node) *loopback {
	l := &loopback{nodes: make(map[string]*node)}
	for _, n := range nodes {
		l.nodes[n.uuid] = n
	}
	return l
}

func (l *loopback) Send(ctx context.Context, server *models.RemoteServer, env *models.SyncTransmission) (*models.SyncTransmissionResponse, error) {
	l.sent = append(l.sent, env)

	target, ok := l.nodes[server.UUID]
	if !ok {
		return nil, fmt.Errorf("no node %s", server.UUID)
	}
	sender, err := target.servers.GetRemoteServer(ctx, env.SyncSourceUUID)
	if err != nil {
		return nil, err
	}
	return target.ingest.ProcessTransmission(ctx, sender, env)
}

// failingTransport fails every send with state.
type failingTransport struct {
	err   error
	calls int
}

func (f *failingTransport) Send(context.Context, *models.RemoteServer, *models.SyncTransmission) (*models.SyncTransmissionResponse, error) {
	f.calls++
	return nil, f.err
}

// spyIndexer records the concepts it re-indexes and the names it drops.
type spyIndexer struct {
	next    ConceptIndexer
	indexed []string
	dropped []string
}

func (s *spyIndexer) UpdateConceptWords(ctx context.Context, concept *domain.Concept) error {
	s.indexed = append(s.indexed, concept.UUID)
	return s.next.UpdateConceptWords(ctx, concept)
}

func (s *spyIndexer) DropConceptNameWords(ctx context.Context, nameUUID string) error {
	s.dropped = append(s.dropped, nameUUID)
	return s.next.DropConceptNameWords(ctx, nameUUID)
}

// testSealer seals stored peer passwords, so every node exercises the
// sealed path.
func testSealer(t *testing.T) crypto.CredentialSealer {
	t.Helper()
	sealer, err := crypto.NewCredentialSealer("node-credential-key")
	require.NoError(t, err)
	return sealer
}

func ptr[T any](v T) *T {
	return &v
}
