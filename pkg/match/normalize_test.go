package match

import "testing"

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"The Matrix", "matrix"},
		{"A Beautiful Mind", "beautiful mind"},
		{"An American Werewolf", "american werewolf"},
		{"Fast & Furious", "fast and furious"},
		{"Léon: The Professional", "leon professional"},
		{"Spider-Man: No Way Home", "spider man no way home"},
		{"THE_MATRIX", "matrix"},
		{"Rocky II", "rocky 2"},
		{"  Extra   Spaces  ", "extra spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := CleanTitle(tt.input)
			if got != tt.want {
				t.Errorf("CleanTitle(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeRomanNumerals(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"rocky ii", "rocky 2"},
		{"star wars episode iv", "star wars episode 4"},
		{"i robot", "i robot"},
		{"american history x", "american history x"},
		{"vii days", "vii days"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := NormalizeRomanNumerals(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeRomanNumerals(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTitleFromVolumeLabel(t *testing.T) {
	tests := []struct {
		label     string
		wantTitle string
		wantYear  int
	}{
		{"THE_MATRIX_1999_D1", "THE MATRIX", 1999},
		{"THE_MATRIX", "THE MATRIX", 0},
		{"FRIENDS_S1_DISC_2", "FRIENDS S1", 0},
		{"Heat.1995", "Heat", 1995},
		{"HEAT_1995_BONUS", "HEAT", 1995},
		{"  spaced  ", "spaced", 0},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			title, year := TitleFromVolumeLabel(tt.label)
			if title != tt.wantTitle || year != tt.wantYear {
				t.Errorf("TitleFromVolumeLabel(%q) = (%q, %d), want (%q, %d)",
					tt.label, title, year, tt.wantTitle, tt.wantYear)
			}
		})
	}
}
