package chat

import (
	"strings"
	"testing"

	"github.com/naijachef/osa/internal/services/generation"
)

func TestNormalizeVideoLink(t *testing.T) {
	tests := []struct {
		name string
		link string
		want string
	}{
		{"empty", "", ""},
		{"bare id", "dQw4w9WgXcQ", "https://www.youtube.com/watch?v=dQw4w9WgXcQ"},
		{"already a watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "https://www.youtube.com/watch?v=dQw4w9WgXcQ"},
		{"short link untouched", "https://youtu.be/dQw4w9WgXcQ", "https://youtu.be/dQw4w9WgXcQ"},
		{"http untouched", "http://www.youtube.com/watch?v=dQw4w9WgXcQ", "http://www.youtube.com/watch?v=dQw4w9WgXcQ"},
		{"unrecognizable dropped", "not a video", ""},
		{"short non-id dropped", "abc", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeVideoLink(tt.link); got != tt.want {
				t.Errorf("NormalizeVideoLink(%q) = %q, want %q", tt.link, got, tt.want)
			}
		})
	}
}

func TestNormalizeVideoLinkNeverLeaksNonURL(t *testing.T) {
	// Every non-empty result must be a well-formed HTTP(S) URL, whatever
	// the backend put in the field.
	inputs := []string{
		"not a video",
		"dQw4w9WgXcQ",
		"ftp://example.com/video",
		"youtube.com/watch?v=dQw4w9WgXcQ",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	}
	for _, in := range inputs {
		got := NormalizeVideoLink(in)
		if got == "" {
			continue
		}
		if !strings.HasPrefix(got, "http://") && !strings.HasPrefix(got, "https://") {
			t.Errorf("NormalizeVideoLink(%q) = %q, not an HTTP(S) URL", in, got)
		}
	}
}

func TestNormalizeVideoLinkIdempotent(t *testing.T) {
	once := NormalizeVideoLink("dQw4w9WgXcQ")
	if twice := NormalizeVideoLink(once); twice != once {
		t.Errorf("second pass changed link: %q -> %q", once, twice)
	}
}

func TestRecipeFromRetrieval(t *testing.T) {
	out := &generation.RetrieveRecipeOutput{
		DishName:          "Jollof Rice",
		CulturalOrigin:    "Popular across Nigeria",
		Ingredients:       "rice, tomatoes, peppers",
		Recipe:            "1. Blend the tomatoes.",
		VideoTutorialLink: "dQw4w9WgXcQ",
	}
	got := RecipeFromRetrieval(out)
	if got.DishName != "Jollof Rice" || got.Ingredients != "rice, tomatoes, peppers" {
		t.Errorf("fields not carried over: %+v", got)
	}
	if got.Instructions != "1. Blend the tomatoes." {
		t.Errorf("Instructions = %q", got.Instructions)
	}
	if got.VideoTutorialLink != "https://www.youtube.com/watch?v=dQw4w9WgXcQ" {
		t.Errorf("VideoTutorialLink = %q", got.VideoTutorialLink)
	}
	if got.VideoID != "dQw4w9WgXcQ" {
		t.Errorf("VideoID = %q", got.VideoID)
	}
}

func TestRecipeFromIdentification(t *testing.T) {
	out := &generation.IdentifyDishOutput{
		DishName:          "Pounded Yam",
		CulturalOrigin:    "Yoruba",
		IngredientList:    "yam, water",
		StepByStepRecipe:  "1. Boil the yam.",
		VideoTutorialLink: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	}
	got := RecipeFromIdentification(out)
	if got.Ingredients != "yam, water" {
		t.Errorf("Ingredients = %q", got.Ingredients)
	}
	if got.Instructions != "1. Boil the yam." {
		t.Errorf("Instructions = %q", got.Instructions)
	}
	if got.VideoTutorialLink != out.VideoTutorialLink {
		t.Errorf("VideoTutorialLink = %q", got.VideoTutorialLink)
	}
}
