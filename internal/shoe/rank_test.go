package shoe

import "testing"

func TestParseRanks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Rank
		wantErr  bool
	}{
		{
			name:     "hard sixteen",
			input:    "T6",
			expected: []Rank{Ten, Six},
		},
		{
			name:     "pair of aces",
			input:    "AA",
			expected: []Rank{Ace, Ace},
		},
		{
			name:     "all face cards",
			input:    "TJQK",
			expected: []Rank{Ten, Jack, Queen, King},
		},
		{
			name:     "case insensitive",
			input:    "aKqJt",
			expected: []Rank{Ace, King, Queen, Jack, Ten},
		},
		{
			name:     "low cards",
			input:    "23456789",
			expected: []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine},
		},
		{
			name:    "invalid rank",
			input:   "TX",
			wantErr: true,
		},
		{
			name:    "ten spelled out",
			input:   "10",
			wantErr: true,
		},
		{
			name:     "empty",
			input:    "",
			expected: []Rank{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRanks(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %d ranks, got %d", len(tt.expected), len(got))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("rank %d: expected %s, got %s", i, tt.expected[i], got[i])
				}
			}
		})
	}
}

func TestRankValue(t *testing.T) {
	tests := []struct {
		rank     Rank
		expected Value
	}{
		{Two, 2},
		{Five, 5},
		{Nine, 9},
		{Ten, 10},
		{Jack, 10},
		{Queen, 10},
		{King, 10},
		{Ace, 11},
	}

	for _, tt := range tests {
		if got := tt.rank.Value(); got != tt.expected {
			t.Errorf("%s: expected value %d, got %d", tt.rank, tt.expected, got)
		}
	}
}

func TestRankString(t *testing.T) {
	if got := King.String(); got != "K" {
		t.Errorf("expected K, got %s", got)
	}
	if got := Two.String(); got != "2" {
		t.Errorf("expected 2, got %s", got)
	}
	if got := Ace.Name(); got != "Aces" {
		t.Errorf("expected Aces, got %s", got)
	}
}
