package impl

import (
	"errors"
	"testing"

	"jobboard/internal/domain"
)

func hashCred(t *testing.T, svc *PasswordServiceImpl, password string) *domain.PasswordCredential {
	t.Helper()
	hash, salt, params, algo, ver, err := svc.Hash(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return &domain.PasswordCredential{
		Algo:        algo,
		Hash:        hash,
		Salt:        salt,
		ParamsJSON:  params,
		PasswordVer: ver,
	}
}

func TestPasswordHashVerify(t *testing.T) {
	svc := NewPasswordServiceArgon2id()
	cred := hashCred(t, svc, "hunter22 but longer")

	rehash, ok := svc.Verify("hunter22 but longer", cred)
	if !ok {
		t.Fatal("correct password rejected")
	}
	if rehash {
		t.Fatal("fresh hash should not need rehash")
	}

	if _, ok := svc.Verify("wrong password", cred); ok {
		t.Fatal("wrong password accepted")
	}
}

func TestPasswordHashIsSalted(t *testing.T) {
	svc := NewPasswordServiceArgon2id()
	a := hashCred(t, svc, "same password")
	b := hashCred(t, svc, "same password")
	if string(a.Hash) == string(b.Hash) {
		t.Fatal("two hashes of the same password must differ")
	}
}

func TestPasswordEmpty(t *testing.T) {
	svc := NewPasswordServiceArgon2id()
	if _, _, _, _, _, err := svc.Hash(""); !errors.Is(err, ErrEmptyPassword) {
		t.Fatalf("err = %v, want ErrEmptyPassword", err)
	}
}

func TestPasswordRehashOnPolicyChange(t *testing.T) {
	svc := NewPasswordServiceArgon2id()
	cred := hashCred(t, svc, "a perfectly fine password")

	// stored under an older, cheaper policy
	old := NewPasswordServiceArgon2id()
	old.cur.Time = 1
	oldCred := hashCred(t, old, "a perfectly fine password")

	rehash, ok := svc.Verify("a perfectly fine password", oldCred)
	if !ok {
		t.Fatal("old-policy hash should still verify")
	}
	if !rehash {
		t.Fatal("old-policy hash should trigger rehash")
	}

	// unknown algorithm forces a reset path
	cred.Algo = "bcrypt"
	if _, ok := svc.Verify("a perfectly fine password", cred); ok {
		t.Fatal("foreign algo must not verify")
	}
}
