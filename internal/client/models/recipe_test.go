package models

import "testing"

func TestParseRecipeType(t *testing.T) {
	tests := []struct {
		in      string
		want    RecipeType
		wantErr bool
	}{
		{"meals", TypeMeals, false},
		{"drinks", TypeDrinks, false},
		{" Meals ", TypeMeals, false},
		{"DRINKS", TypeDrinks, false},
		{"cocktails", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseRecipeType(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseRecipeType(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Fatalf("ParseRecipeType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseRecipeID(t *testing.T) {
	id, err := ParseRecipeID(" 42 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 42 {
		t.Fatalf("got %d, want 42", id)
	}

	if _, err := ParseRecipeID("abc"); err == nil {
		t.Fatal("expected error for non-numeric id")
	}
	if _, err := ParseRecipeID(""); err == nil {
		t.Fatal("expected error for empty id")
	}
}
