package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequestUsernameCharset(t *testing.T) {
	cases := map[string]bool{
		"alice":      true,
		"alice_99":   true,
		"A_b_C":      true,
		"":           false,
		"has space":  false,
		"dash-name":  false,
		"émile":      false,
		"semi;colon": false,
	}

	for username, want := range cases {
		req := RegisterRequest{Username: username, Password: "pw"}
		err := req.Validate()
		if want {
			assert.NoError(t, err, "username %q", username)
		} else {
			assert.Error(t, err, "username %q", username)
		}
	}
}

func TestRegisterRequestLengthBounds(t *testing.T) {
	req := RegisterRequest{Username: strings.Repeat("a", 50), Password: "pw"}
	assert.NoError(t, req.Validate())

	req.Username = strings.Repeat("a", 51)
	assert.Error(t, req.Validate())

	req = RegisterRequest{Username: "alice", Password: strings.Repeat("p", 200)}
	assert.NoError(t, req.Validate())

	req.Password = strings.Repeat("p", 201)
	assert.Error(t, req.Validate())

	req = RegisterRequest{Username: "alice", Password: ""}
	assert.Error(t, req.Validate())
}

func TestToDTONeverCarriesHash(t *testing.T) {
	u := User{ID: 1, Username: "alice", PasswordHash: "$argon2id$..."}
	dto := u.ToDTO()
	assert.Equal(t, int64(1), dto.ID)
	assert.Equal(t, "alice", dto.Username)
}
