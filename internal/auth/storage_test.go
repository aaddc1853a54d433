package auth_test

import (
	"errors"
	"testing"

	"github.com/homework-evaluation/backend/internal/auth"
)

func validTokenInfo() auth.TokenInfo {
	return auth.TokenInfo{
		AccountID: 1,
		Username:  "alice",
		Role:      "student",
		Machine:   "test",
		Scopes:    []string{"submission:answer"},
	}
}

func TestTokenInfo_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(info *auth.TokenInfo)
		want   error
	}{
		{
			name:   "valid token info",
			modify: func(info *auth.TokenInfo) {},
		},
		{
			name:   "account id is zero",
			modify: func(info *auth.TokenInfo) { info.AccountID = 0 },
			want:   auth.ErrValidationPositiveAccountID,
		},
		{
			name:   "account id is negative",
			modify: func(info *auth.TokenInfo) { info.AccountID = -1 },
			want:   auth.ErrValidationPositiveAccountID,
		},
		{
			name:   "username is empty",
			modify: func(info *auth.TokenInfo) { info.Username = "" },
			want:   auth.ErrValidationRequireUsername,
		},
		{
			name:   "role is empty",
			modify: func(info *auth.TokenInfo) { info.Role = "" },
			want:   auth.ErrValidationRequireRole,
		},
		{
			name:   "machine is empty",
			modify: func(info *auth.TokenInfo) { info.Machine = "" },
			want:   auth.ErrValidationRequireMachine,
		},
		{
			name:   "nil scopes slice",
			modify: func(info *auth.TokenInfo) { info.Scopes = nil },
			want:   auth.ErrValidationAtLeastOneScope,
		},
		{
			name:   "empty scopes slice",
			modify: func(info *auth.TokenInfo) { info.Scopes = []string{} },
			want:   auth.ErrValidationAtLeastOneScope,
		},
		{
			name:   "meta field with values",
			modify: func(info *auth.TokenInfo) { info.Meta = map[string]string{"key": "value"} },
		},
		{
			name: "first failure wins",
			modify: func(info *auth.TokenInfo) {
				*info = auth.TokenInfo{}
			},
			want: auth.ErrValidationPositiveAccountID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := validTokenInfo()
			tt.modify(&info)

			err := info.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}

			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
