package interceptor

import (
	"github.com/MKhiriev/go-sync-keeper/models"
)

// UnitOfWork accumulates the changes of one transaction. It is owned by a
// single session and must not be shared between goroutines.
type UnitOfWork struct {
	record *models.SyncRecord
	// index maps an item key to its position in record.Items.
	index map[models.SyncItemKey]int
	// processed holds "type|uuid" of entities packaged in the current flush.
	processed map[string]struct{}

	suppressed   int
	originalUUID string
	creator      string
}

func newUnitOfWork() *UnitOfWork {
	return &UnitOfWork{
		record:    &models.SyncRecord{},
		index:     make(map[models.SyncItemKey]int),
		processed: make(map[string]struct{}),
	}
}

// WithoutSync suspends capture until the returned restore function is
// called. Guards nest; calling restore more than once has no effect.
//
//	restore := uow.WithoutSync()
//	defer restore()
func (u *UnitOfWork) WithoutSync() (restore func()) {
	u.suppressed++
	done := false
	return func() {
		if done {
			return
		}
		done = true
		u.suppressed--
	}
}

// Suppressed reports whether a WithoutSync guard is active.
func (u *UnitOfWork) Suppressed() bool {
	return u.suppressed > 0
}

// SetOriginalUUID marks the transaction as applying an ingested record whose
// original identity is uuid. The journaled record keeps that identity.
func (u *UnitOfWork) SetOriginalUUID(uuid string) {
	u.originalUUID = uuid
}

// OriginalUUID returns the inbound marker, if any.
func (u *UnitOfWork) OriginalUUID() string {
	return u.originalUUID
}

// SetCreator records the user on whose behalf the transaction runs.
func (u *UnitOfWork) SetCreator(uuid string) {
	u.creator = uuid
}

// StartFlush resets the per-flush working set.
func (u *UnitOfWork) StartFlush() {
	clear(u.processed)
}

// Record returns the record being accumulated.
func (u *UnitOfWork) Record() *models.SyncRecord {
	return u.record
}

// seen reports whether key was already packaged in this flush and marks it.
func (u *UnitOfWork) seen(key string) bool {
	if _, ok := u.processed[key]; ok {
		return true
	}
	u.processed[key] = struct{}{}
	return false
}

// put adds item, replacing an earlier item with the same key in place.
// Every type the item carries is added to the record's contained classes.
func (u *UnitOfWork) put(item models.SyncItem, containedTypes ...string) {
	if pos, ok := u.index[item.Key]; ok {
		u.record.Items[pos] = item
	} else {
		u.index[item.Key] = len(u.record.Items)
		u.record.Items = append(u.record.Items, item)
	}
	for _, t := range containedTypes {
		u.record.ContainedClasses.Add(t)
	}
}
