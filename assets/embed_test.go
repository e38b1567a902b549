package assets

import "testing"

func TestCleanAssetPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"characters.png", "characters.png"},
		{"assets/characters.png", "characters.png"},
		{"./assets/characters.png", "characters.png"},
		{"/home/me/game/assets/characters.png", "characters.png"},
		{"/tmp/characters.png", "characters.png"},
	}
	for _, tt := range tests {
		if got := cleanAssetPath(tt.in); got != tt.want {
			t.Errorf("cleanAssetPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCharacterSheet(t *testing.T) {
	img, err := DecodeImage(CharacterSheet)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() < 128 || b.Dy() < 64 {
		t.Fatalf("sheet too small for the walk clip: %v", b)
	}
}

func TestMissingAsset(t *testing.T) {
	if _, err := DecodeImage("missing.png"); err == nil {
		t.Fatal("expected error for missing asset")
	}
}
