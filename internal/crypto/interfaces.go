package crypto

// CredentialSealer protects the credentials this server presents to its
// peers while they are at rest in the remote_server table.
//
// Sealed values carry a version prefix. Values without it are returned by
// Open unchanged, so rows written before a key was configured stay usable.
type CredentialSealer interface {
	// Seal encrypts plaintext. An empty plaintext stays empty.
	Seal(plaintext string) (string, error)

	// Open reverses Seal. It fails when the value was sealed with another
	// key or has been tampered with.
	Open(stored string) (string, error)
}
