package ai

import (
	"strings"
	"testing"
)

func TestBuildIdentifyDishPrompt(t *testing.T) {
	prompt := BuildIdentifyDishPrompt()

	for _, s := range []string{
		"<PERSONA>",
		"<ACCURACY>",
		"<VIDEO_TUTORIAL>",
		"<TASK>",
		"Osakpolor",
		"Do not guess",
		"find_youtube_video",
		"return empty strings",
	} {
		if !strings.Contains(prompt, s) {
			t.Errorf("BuildIdentifyDishPrompt() missing %q", s)
		}
	}
}

func TestBuildRetrieveRecipePrompt(t *testing.T) {
	prompt := BuildRetrieveRecipePrompt("how do I make jollof rice")

	if !strings.Contains(prompt, `"how do I make jollof rice"`) {
		t.Error("expected raw user text embedded verbatim")
	}
	if !strings.Contains(prompt, "find_youtube_video") {
		t.Error("expected video tool instructions")
	}
	if !strings.Contains(prompt, "culturalOrigin") {
		t.Error("expected output field guidance")
	}
}

func TestBuildGeneralChatPrompt(t *testing.T) {
	prompt := BuildGeneralChatPrompt("hello")

	if !strings.Contains(prompt, `"hello"`) {
		t.Error("expected query embedded verbatim")
	}
	if !strings.Contains(prompt, "Osakpolor") {
		t.Error("expected persona in chat prompt")
	}
	if strings.Contains(prompt, "find_youtube_video") {
		t.Error("chat prompt must not mention the video tool")
	}
}

func TestBuildFindRestaurantPrompt(t *testing.T) {
	prompt := BuildFindRestaurantPrompt("jollof rice", 6.5244, 3.3792)

	for _, s := range []string{
		`"jollof rice"`,
		"6.5244",
		"3.3792",
		"up to 7",
		"Sort the results by proximity",
		"Google Maps URL",
	} {
		if !strings.Contains(prompt, s) {
			t.Errorf("BuildFindRestaurantPrompt() missing %q", s)
		}
	}
}
