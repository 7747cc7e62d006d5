package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher derives and checks the stored form of account passwords.
//
// Hashes are encoded in the PHC string format
//
//	$argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<salt>$<key>
//
// so that parameters can change without invalidating existing accounts.
type PasswordHasher interface {
	// Hash returns the encoded Argon2id hash of password with a fresh salt.
	Hash(password string) (string, error)

	// Verify reports whether password matches encoded. A malformed encoded
	// value yields [ErrMalformedHash].
	Verify(password, encoded string) (bool, error)
}
