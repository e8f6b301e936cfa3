package service

import "jobboard/internal/domain"

type PasswordService interface {
	Hash(password string) (hash, salt, paramsJSON []byte, algo string, ver int, err error)
	// Verify reports whether the password matches and whether the stored
	// credential should be transparently rehashed under the current policy.
	Verify(password string, cred *domain.PasswordCredential) (rehashNeeded bool, ok bool)
}
