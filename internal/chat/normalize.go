package chat

import (
	"strings"

	"github.com/naijachef/osa/internal/services/generation"
	"github.com/naijachef/osa/internal/services/youtube"
)

// Recipe is the unified recipe shape the conversation surface returns,
// regardless of whether the turn started from text or a photo.
type Recipe struct {
	DishName          string `json:"dishName"`
	CulturalOrigin    string `json:"culturalOrigin,omitempty"`
	Ingredients       string `json:"ingredients"`
	Instructions      string `json:"recipe"`
	VideoID           string `json:"videoId,omitempty"`
	VideoTutorialLink string `json:"videoTutorialLink,omitempty"`
}

// RecipeFromRetrieval maps a text-lookup result into the unified shape.
func RecipeFromRetrieval(out *generation.RetrieveRecipeOutput) *Recipe {
	r := &Recipe{
		DishName:          out.DishName,
		CulturalOrigin:    out.CulturalOrigin,
		Ingredients:       out.Ingredients,
		Instructions:      out.Recipe,
		VideoTutorialLink: NormalizeVideoLink(out.VideoTutorialLink),
	}
	r.VideoID, _ = youtube.ExtractVideoID(r.VideoTutorialLink)
	return r
}

// RecipeFromIdentification maps a photo-identification result into the
// unified shape.
func RecipeFromIdentification(out *generation.IdentifyDishOutput) *Recipe {
	r := &Recipe{
		DishName:          out.DishName,
		CulturalOrigin:    out.CulturalOrigin,
		Ingredients:       out.IngredientList,
		Instructions:      out.StepByStepRecipe,
		VideoTutorialLink: NormalizeVideoLink(out.VideoTutorialLink),
	}
	r.VideoID, _ = youtube.ExtractVideoID(r.VideoTutorialLink)
	return r
}

// NormalizeVideoLink turns a bare video ID into a full watch URL.
// Links that are already absolute URLs pass through unchanged, so the
// normalization is idempotent. A non-HTTP value with no extractable
// video ID is dropped; the link field only ever carries a well-formed
// HTTP(S) URL.
func NormalizeVideoLink(link string) string {
	if link == "" {
		return ""
	}
	if strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
		return link
	}
	if id, ok := youtube.ExtractVideoID(link); ok {
		return youtube.WatchURL(id)
	}
	return ""
}
