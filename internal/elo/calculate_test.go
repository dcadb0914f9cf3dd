package elo

import (
	"testing"

	"github.com/goserg/tournament/internal/domain"
)

func TestCalculate(t *testing.T) {
	type args struct {
		Ra int
		Rb int
		K  int
		Sa Points
	}
	tests := []struct {
		name string
		args args
		want int
	}{
		{
			name: "same rating draw",
			args: args{
				Ra: 1000,
				Rb: 1000,
				K:  40,
				Sa: Draw,
			},
			want: 1000,
		},
		{
			name: "same rating win",
			args: args{
				Ra: 1000,
				Rb: 1000,
				K:  40,
				Sa: Win,
			},
			want: 1020,
		},
		{
			name: "same rating lose",
			args: args{
				Ra: 1000,
				Rb: 1000,
				K:  40,
				Sa: Lose,
			},
			want: 980,
		},
		{
			name: "top rating draw",
			args: args{
				Ra: 1100,
				Rb: 1000,
				K:  40,
				Sa: Draw,
			},
			want: 1094,
		},
		{
			name: "top rating win",
			args: args{
				Ra: 1100,
				Rb: 1000,
				K:  40,
				Sa: Win,
			},
			want: 1114,
		},
		{
			name: "top rating lose",
			args: args{
				Ra: 1100,
				Rb: 1000,
				K:  40,
				Sa: Lose,
			},
			want: 1074,
		},
		{
			name: "bottom rating draw",
			args: args{
				Ra: 1000,
				Rb: 1100,
				K:  40,
				Sa: Draw,
			},
			want: 1006,
		},
		{
			name: "bottom rating win",
			args: args{
				Ra: 1000,
				Rb: 1100,
				K:  40,
				Sa: Win,
			},
			want: 1026,
		},
		{
			name: "bottom rating lose",
			args: args{
				Ra: 1000,
				Rb: 1100,
				K:  40,
				Sa: Lose,
			},
			want: 986,
		},
		{
			name: "close rating draw",
			args: args{
				Ra: 944,
				Rb: 938,
				K:  40,
				Sa: Draw,
			},
			want: 944,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Calculate(tt.args.Ra, tt.args.Rb, tt.args.K, tt.args.Sa); got != tt.want {
				t.Errorf("Calculate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKFactor(t *testing.T) {
	tests := []struct {
		name       string
		matchCount int
		rating     int
		want       int
	}{
		{name: "new player", matchCount: 0, rating: 1000, want: KNew},
		{name: "new player with master rating", matchCount: 29, rating: 2500, want: KNew},
		{name: "regular", matchCount: 30, rating: 1500, want: KRegular},
		{name: "advanced", matchCount: 100, rating: 2100, want: KAdvanced},
		{name: "master", matchCount: 31, rating: 2400, want: KMaster},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KFactor(tt.matchCount, tt.rating); got != tt.want {
				t.Errorf("KFactor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpdateEqualEstablishedPlayers(t *testing.T) {
	winner := Update(1500, 1500, 40, Win)
	loser := Update(1500, 1500, 35, Lose)

	if winner.K != KRegular || loser.K != KRegular {
		t.Fatalf("expected K=%d for both players, got %d and %d", KRegular, winner.K, loser.K)
	}
	if winner.Delta <= 0 {
		t.Fatalf("winner delta must be positive, got %d", winner.Delta)
	}
	if diff := winner.Delta + loser.Delta; diff < -1 || diff > 1 {
		t.Fatalf("deltas are not symmetric: %d vs %d", winner.Delta, loser.Delta)
	}
	if winner.Rating != 1500+winner.Delta {
		t.Fatalf("rating %d does not match delta %d", winner.Rating, winner.Delta)
	}
}

func TestUpdateDeterministic(t *testing.T) {
	first := Update(1634, 1587, 12, Draw)
	for i := 0; i < 100; i++ {
		if got := Update(1634, 1587, 12, Draw); got != first {
			t.Fatalf("Update() = %+v, want %+v", got, first)
		}
	}
}

func TestRankFor(t *testing.T) {
	tests := []struct {
		rating int
		want   domain.RankCode
	}{
		{rating: 400, want: domain.RankK},
		{rating: 1000, want: domain.RankK},
		{rating: 1199, want: domain.RankKPlus},
		{rating: 1450, want: domain.RankH},
		{rating: 2100, want: domain.RankEPlus},
		{rating: 2900, want: domain.RankEPlus},
	}
	for _, tt := range tests {
		if got := RankFor(tt.rating); got != tt.want {
			t.Errorf("RankFor(%d) = %v, want %v", tt.rating, got, tt.want)
		}
	}
}
