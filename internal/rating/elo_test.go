package rating

import "testing"

func TestElo(t *testing.T) {
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
			name: "experienced player",
			args: args{
				Ra: 1000,
				Rb: 1000,
				K:  20,
				Sa: Win,
			},
			want: 1010,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Elo(tt.args.Ra, tt.args.Rb, tt.args.K, tt.args.Sa); got != tt.want {
				t.Errorf("Elo() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKFactor(t *testing.T) {
	tests := []struct {
		games, rating, want int
	}{
		{0, 1000, 40},
		{30, 2500, 40},
		{31, 1000, 20},
		{31, 2400, 10},
	}
	for _, tt := range tests {
		if got := kFactor(tt.games, tt.rating); got != tt.want {
			t.Errorf("kFactor(%d, %d) = %d, want %d", tt.games, tt.rating, got, tt.want)
		}
	}
}
