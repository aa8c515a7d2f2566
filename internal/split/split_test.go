package split

import (
	"errors"
	"math"
	"testing"

	"splitpal/internal/domain"
)

func users(ids ...uint) []domain.User {
	members := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		members = append(members, domain.User{ID: id})
	}
	return members
}

func TestAllocateEqual(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		paidBy   uint
		members  []domain.User
		wantOwed map[uint]float64
	}{
		{
			name:    "three members payer included",
			amount:  90,
			paidBy:  1,
			members: users(1, 2, 3),
			// Payer's own row is forced to zero, everyone else owes the share
			wantOwed: map[uint]float64{1: 0, 2: 30, 3: 30},
		},
		{
			name:    "payer not a member",
			amount:  60,
			paidBy:  9,
			members: users(1, 2),
			// No forced-zero row when the payer is outside the group
			wantOwed: map[uint]float64{1: 30, 2: 30},
		},
		{
			name:    "rounding per split",
			amount:  100,
			paidBy:  1,
			members: users(1, 2, 3),
			// 100/3 rounds to 33.33 independently for every member
			wantOwed: map[uint]float64{1: 0, 2: 33.33, 3: 33.33},
		},
		{
			name:    "single member payer",
			amount:  50,
			paidBy:  1,
			members: users(1),
			wantOwed: map[uint]float64{1: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			splits, err := Allocate(tt.amount, domain.SplitTypeEqual, tt.paidBy, tt.members, nil)
			if err != nil {
				t.Fatalf("Allocate() error = %v", err)
			}
			if len(splits) != len(tt.members) {
				t.Fatalf("got %d splits, want %d", len(splits), len(tt.members))
			}
			for _, s := range splits {
				want, ok := tt.wantOwed[s.UserID]
				if !ok {
					t.Errorf("unexpected split for user %d", s.UserID)
					continue
				}
				if math.Abs(s.AmountOwed-want) > 1e-9 {
					t.Errorf("user %d owes %v, want %v", s.UserID, s.AmountOwed, want)
				}
				if s.Percentage != nil {
					t.Errorf("user %d: equal split must not carry a percentage", s.UserID)
				}
			}
		})
	}
}

func TestAllocateEqualEmptyGroup(t *testing.T) {
	_, err := Allocate(100, domain.SplitTypeEqual, 1, nil, nil)
	var invalidState *domain.InvalidStateError
	if !errors.As(err, &invalidState) {
		t.Fatalf("Allocate() error = %v, want InvalidStateError", err)
	}
}

func TestAllocatePercentage(t *testing.T) {
	splits, err := Allocate(100, domain.SplitTypePercentage, 2, nil, []Input{
		{UserID: 1, Percentage: 50},
		{UserID: 2, Percentage: 30},
		{UserID: 3, Percentage: 20},
	})
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}
	if len(splits) != 3 {
		t.Fatalf("got %d splits, want 3", len(splits))
	}

	wantOwed := map[uint]float64{1: 50, 2: 0, 3: 20}
	wantPct := map[uint]float64{1: 50, 2: 30, 3: 20}
	for _, s := range splits {
		if math.Abs(s.AmountOwed-wantOwed[s.UserID]) > 1e-9 {
			t.Errorf("user %d owes %v, want %v", s.UserID, s.AmountOwed, wantOwed[s.UserID])
		}
		if s.Percentage == nil {
			t.Errorf("user %d: percentage split must store the input percentage", s.UserID)
			continue
		}
		// The payer's stored percentage stays as supplied even though the
		// owed amount is overridden to zero
		if *s.Percentage != wantPct[s.UserID] {
			t.Errorf("user %d percentage = %v, want %v", s.UserID, *s.Percentage, wantPct[s.UserID])
		}
	}
}

func TestAllocatePercentageSumValidation(t *testing.T) {
	tests := []struct {
		name    string
		inputs  []Input
		wantErr bool
	}{
		{
			name:    "exactly 100 passes",
			inputs:  []Input{{UserID: 1, Percentage: 60}, {UserID: 2, Percentage: 40}},
			wantErr: false,
		},
		{
			name:    "99.99 fails",
			inputs:  []Input{{UserID: 1, Percentage: 60}, {UserID: 2, Percentage: 39.99}},
			wantErr: true,
		},
		{
			name:    "100.01 fails",
			inputs:  []Input{{UserID: 1, Percentage: 60}, {UserID: 2, Percentage: 40.01}},
			wantErr: true,
		},
		{
			name:    "no inputs fails",
			inputs:  nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Allocate(80, domain.SplitTypePercentage, 1, nil, tt.inputs)
			var validation *domain.ValidationError
			if tt.wantErr {
				if !errors.As(err, &validation) {
					t.Fatalf("Allocate() error = %v, want ValidationError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Allocate() error = %v", err)
			}
		})
	}
}

func TestAllocateInvalidSplitType(t *testing.T) {
	_, err := Allocate(10, "shares", 1, users(1, 2), nil)
	var validation *domain.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("Allocate() error = %v, want ValidationError", err)
	}
	if validation.Msg != "invalid split type" {
		t.Errorf("message = %q, want %q", validation.Msg, "invalid split type")
	}
}
