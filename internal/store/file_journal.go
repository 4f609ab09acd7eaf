package store

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// ErrJournalFileNotFound is returned when no journal file exists for the
// requested envelope.
var ErrJournalFileNotFound = errors.New("journal file was not found")

// journalFileStorage writes every exchanged envelope as an XML file under
// one directory. Files are named after the envelope uuid and never
// rewritten in place.
type journalFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewJournalFileStorage creates dir if needed and returns the storage.
func NewJournalFileStorage(dir string, logger *logger.Logger) (JournalFileStorage, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("error creating journal directory: %w", err)
	}
	return &journalFileStorage{
		dir:    dir,
		logger: logger,
	}, nil
}

func (j *journalFileStorage) SaveTransmission(ctx context.Context, tx *models.SyncTransmission) error {
	return j.write(ctx, "transmission_"+tx.UUID+".xml", tx)
}

func (j *journalFileStorage) SaveResponse(ctx context.Context, resp *models.SyncTransmissionResponse) error {
	return j.write(ctx, "response_"+resp.UUID+".xml", resp)
}

func (j *journalFileStorage) LoadResponse(ctx context.Context, uuid string) (*models.SyncTransmissionResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(j.path("response_" + uuid + ".xml"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrJournalFileNotFound
		}
		return nil, fmt.Errorf("error reading journal file: %w", err)
	}

	var resp models.SyncTransmissionResponse
	if err = xml.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("error decoding journal file: %w", err)
	}
	return &resp, nil
}

func (j *journalFileStorage) write(ctx context.Context, name string, v any) error {
	log := logger.FromContext(ctx)
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Err(err).Str("func", "journalFileStorage.write").Str("file", name).Msg("failed to encode envelope")
		return fmt.Errorf("error encoding journal file: %w", err)
	}

	// temp file + rename
	tmp, err := os.CreateTemp(j.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("error creating journal file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(append([]byte(xml.Header), data...)); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing journal file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error writing journal file: %w", err)
	}
	if err = os.Rename(tmp.Name(), j.path(name)); err != nil {
		log.Err(err).Str("func", "journalFileStorage.write").Str("file", name).Msg("failed to move journal file")
		return fmt.Errorf("error writing journal file: %w", err)
	}

	log.Debug().Str("func", "journalFileStorage.write").Str("file", name).Msg("envelope journaled")
	return nil
}

func (j *journalFileStorage) path(name string) string {
	return filepath.Join(j.dir, filepath.Base(name))
}
