package credentials

import (
	"crypto/sha256"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy unavailable")
}

func TestGenerateSalt(t *testing.T) {
	a := GenerateSalt(SaltLength)
	b := GenerateSalt(SaltLength)

	assert.Len(t, a, SaltLength)
	assert.Len(t, b, SaltLength)
	assert.NotEqual(t, a, b)
}

func TestGenerateSalt_FallbackWhenRandomSourceFails(t *testing.T) {
	orig := randReader
	defer func() { randReader = orig }()
	randReader = failingReader{}

	a := GenerateSalt(SaltLength)
	b := GenerateSalt(SaltLength)

	// uuid string form
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

func TestHashPassword_SaltThenPassword(t *testing.T) {
	salt := []byte{0x01, 0x02, 0x03}
	want := sha256.Sum256(append([]byte{0x01, 0x02, 0x03}, []byte("secret1")...))

	assert.Equal(t, want[:], HashPassword("secret1", salt))

	swapped := sha256.Sum256(append([]byte("secret1"), salt...))
	assert.NotEqual(t, swapped[:], HashPassword("secret1", salt))
}

func TestTextRoundTrip(t *testing.T) {
	tests := [][]byte{
		{},
		{0x00},
		{0xff, 0x00, 0x10, 0x7f},
		[]byte("hello, kitchen"),
		GenerateSalt(32),
	}

	for _, in := range tests {
		out, ok := FromText(ToText(in))
		assert.True(t, ok)
		assert.Equal(t, len(in), len(out))
		if len(in) > 0 {
			assert.Equal(t, in, out)
		}
	}
}

func TestFromText_Malformed(t *testing.T) {
	for _, s := range []string{"%%%", "abc", "not base64!", "YWJj=="} {
		_, ok := FromText(s)
		assert.False(t, ok, s)
	}
}

func TestCreateCredential_FreshSaltEachTime(t *testing.T) {
	a := CreateCredential("secret1")
	b := CreateCredential("secret1")

	assert.NotEqual(t, a.Salt, b.Salt)
	assert.NotEqual(t, a.Hash, b.Hash)
	assert.True(t, Verify("secret1", a.Salt, a.Hash))
	assert.True(t, Verify("secret1", b.Salt, b.Hash))
}

func TestVerify(t *testing.T) {
	trimmed := CreateCredential("  secret1  ")
	empty := CreateCredential("")
	blank := CreateCredential(" \t\n ")

	tests := []struct {
		name     string
		password string
		cred     Credential
		want     bool
	}{
		{"trimmed on both sides", "secret1", trimmed, true},
		{"candidate also trimmed", "\tsecret1\n", trimmed, true},
		{"wrong password", "secret2", trimmed, false},
		{"case sensitive", "Secret1", trimmed, false},
		{"empty password", "", empty, true},
		{"whitespace only trims to empty", "   ", empty, true},
		{"blank stored as empty", "", blank, true},
		{"non empty against empty", "x", empty, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Verify(tt.password, tt.cred.Salt, tt.cred.Hash))
		})
	}
}

func TestVerify_MatchesDigestDefinition(t *testing.T) {
	salt := GenerateSalt(SaltLength)
	for _, p := range []string{"", " ", "pa ss", "  spaced  ", "ünïcödé"} {
		sum := sha256.Sum256(append(append([]byte{}, salt...), []byte(Normalize(p))...))
		assert.True(t, Verify(p, ToText(salt), ToText(sum[:])), p)
	}
}

func TestVerify_MalformedStoredData(t *testing.T) {
	cred := CreateCredential("secret1")

	tests := []struct {
		name string
		salt string
		hash string
	}{
		{"salt not base64", "***", cred.Hash},
		{"hash not base64", cred.Salt, "***"},
		{"empty salt", "", cred.Hash},
		{"empty hash", cred.Salt, ""},
		{"both empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				assert.False(t, Verify("secret1", tt.salt, tt.hash))
			})
		})
	}
}
