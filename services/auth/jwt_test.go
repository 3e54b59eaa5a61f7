package auth

import "testing"

func newTestService() *JWTService {
    return NewJWTService("test-secret", "pagarme-payment-bridge", "admin", "hunter2")
}

func TestAuthenticate(t *testing.T) {
    j := newTestService()

    token, err := j.Authenticate("admin", "hunter2")
    if err != nil {
        t.Fatalf("Authenticate: %v", err)
    }

    claims, err := j.ValidateToken(token)
    if err != nil {
        t.Fatalf("ValidateToken: %v", err)
    }
    if claims.Username != "admin" {
        t.Errorf("Username = %q", claims.Username)
    }
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
    j := newTestService()

    cases := [][2]string{
        {"admin", "wrong"},
        {"someone", "hunter2"},
        {"", ""},
    }
    for _, c := range cases {
        if _, err := j.Authenticate(c[0], c[1]); err != ErrInvalidCredentials {
            t.Errorf("Authenticate(%q, %q) err = %v, want ErrInvalidCredentials", c[0], c[1], err)
        }
    }
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
    j := newTestService()

    if _, err := j.ValidateToken("not-a-token"); err != ErrInvalidToken {
        t.Errorf("err = %v, want ErrInvalidToken", err)
    }

    other := NewJWTService("other-secret", "pagarme-payment-bridge", "admin", "hunter2")
    token, err := other.GenerateToken("admin")
    if err != nil {
        t.Fatal(err)
    }
    if _, err := j.ValidateToken(token); err != ErrInvalidToken {
        t.Errorf("token signed with another key: err = %v, want ErrInvalidToken", err)
    }
}
