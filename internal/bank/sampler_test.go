package bank

import (
	"slices"
	"testing"
)

var sampleIDs = []string{"1", "2", "3", "4", "5", "6", "7", "8"}

func sorted(ids []string) []string {
	out := slices.Clone(ids)
	slices.Sort(out)
	return out
}

func TestRandomSampler_PicksWithoutReplacement(t *testing.T) {
	in := slices.Clone(sampleIDs)
	for i := 0; i < 50; i++ {
		got := RandomSampler{N: 2}.Sample(in)
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
		if got[0] == got[1] {
			t.Fatalf("duplicate pick %q", got[0])
		}
		for _, id := range got {
			if !slices.Contains(sampleIDs, id) {
				t.Fatalf("unknown id %q", id)
			}
		}
	}
	if !slices.Equal(in, sampleIDs) {
		t.Errorf("input was modified: %v", in)
	}
}

func TestRandomSampler_KeepsAllWhenShort(t *testing.T) {
	if got := sorted(RandomSampler{N: 5}.Sample([]string{"1", "2"})); !slices.Equal(got, []string{"1", "2"}) {
		t.Errorf("short input: got %v, want [1 2]", got)
	}
	if got := sorted(RandomSampler{}.Sample(sampleIDs)); !slices.Equal(got, sampleIDs) {
		t.Errorf("N=0: got %v, want every id", got)
	}
}

func TestSeededSampler_Reproducible(t *testing.T) {
	a := SeededSampler(3, 42).Sample(sampleIDs)
	b := SeededSampler(3, 42).Sample(sampleIDs)
	if !slices.Equal(a, b) {
		t.Errorf("same seed gave %v and %v", a, b)
	}
	if len(a) != 3 {
		t.Errorf("len = %d, want 3", len(a))
	}
}

func TestFirstN(t *testing.T) {
	if got := (FirstN{N: 3}).Sample(sampleIDs); !slices.Equal(got, []string{"1", "2", "3"}) {
		t.Errorf("FirstN{3} = %v", got)
	}
	if got := (FirstN{}).Sample(sampleIDs); !slices.Equal(got, sampleIDs) {
		t.Errorf("FirstN{} = %v, want every id", got)
	}
	if got := (FirstN{N: 3}).Sample(nil); len(got) != 0 {
		t.Errorf("FirstN{3}(nil) = %v, want empty", got)
	}
}

func TestNewSampler(t *testing.T) {
	tests := []struct {
		name     string
		strategy string
		n        int
		seed     uint64
		wantLen  int
		check    func(t *testing.T, s Sampler)
	}{
		{
			name:     "first defaults to three",
			strategy: "first",
			wantLen:  DefaultFirstN,
			check: func(t *testing.T, s Sampler) {
				if s != (FirstN{N: DefaultFirstN}) {
					t.Errorf("sampler = %#v, want FirstN{N: %d}", s, DefaultFirstN)
				}
			},
		},
		{
			name:     "random defaults to two",
			strategy: "random",
			wantLen:  DefaultSampleSize,
		},
		{
			name:     "unknown falls back to random",
			strategy: "bogus",
			n:        4,
			wantLen:  4,
		},
		{
			name:     "seeded",
			strategy: "random",
			n:        3,
			seed:     7,
			wantLen:  3,
			check: func(t *testing.T, s Sampler) {
				want := SeededSampler(3, 7).Sample(sampleIDs)
				if got := s.Sample(sampleIDs); !slices.Equal(got, want) {
					t.Errorf("seeded sample = %v, want %v", got, want)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSampler(tt.strategy, tt.n, tt.seed)
			if tt.check != nil {
				tt.check(t, s)
			}
			if got := len(NewSampler(tt.strategy, tt.n, tt.seed).Sample(sampleIDs)); got != tt.wantLen {
				t.Errorf("len = %d, want %d", got, tt.wantLen)
			}
		})
	}
}

func TestBuild_SeededSamplingIsDeterministic(t *testing.T) {
	raw, err := Default()
	if err != nil {
		t.Fatal(err)
	}

	ids := func(levels []PlayLevel) []string {
		var out []string
		for _, l := range levels {
			for _, q := range l.Questions {
				out = append(out, q.ID)
			}
		}
		return out
	}

	a := ids(Build(raw, SeededSampler(2, 99)))
	b := ids(Build(raw, SeededSampler(2, 99)))
	if !slices.Equal(a, b) {
		t.Errorf("same seed gave %v and %v", a, b)
	}
	if len(a) != 10 {
		t.Errorf("len = %d, want 10", len(a))
	}
}
