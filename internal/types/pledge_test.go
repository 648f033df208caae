package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmitPledgeRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     SubmitPledgeRequest
		wantErr bool
	}{
		{
			name:    "valid request",
			req:     SubmitPledgeRequest{EmployeeID: "E001", PledgeAccepted: true},
			wantErr: false,
		},
		{
			name:    "missing employee id",
			req:     SubmitPledgeRequest{PledgeAccepted: true},
			wantErr: true,
		},
		{
			name:    "pledge not accepted",
			req:     SubmitPledgeRequest{EmployeeID: "E001", PledgeAccepted: false},
			wantErr: true,
		},
		{
			name:    "empty request",
			req:     SubmitPledgeRequest{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
