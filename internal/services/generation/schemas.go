package generation

import (
	"fmt"

	"google.golang.org/genai"
)

// MaxRestaurants caps the restaurant suggestion list. The backend's
// ordering is kept as is; it encodes proximity.
const MaxRestaurants = 7

// IdentifyDishOutput is the structured result of identifying a dish from
// an uploaded photo. All fields empty means the dish was not identified,
// which is a legitimate outcome rather than an error.
type IdentifyDishOutput struct {
	DishName          string `json:"dishName"`
	CulturalOrigin    string `json:"culturalOrigin"`
	IngredientList    string `json:"ingredientList"`
	StepByStepRecipe  string `json:"stepByStepRecipe"`
	VideoTutorialLink string `json:"videoTutorialLink"`
}

// RetrieveRecipeOutput is the structured result of a recipe lookup by
// dish name. Empty dishName means the backend could not identify a dish
// in the user's text.
type RetrieveRecipeOutput struct {
	DishName          string `json:"dishName"`
	CulturalOrigin    string `json:"culturalOrigin"`
	Ingredients       string `json:"ingredients"`
	Recipe            string `json:"recipe"`
	VideoTutorialLink string `json:"videoTutorialLink"`
}

// GeneralChatOutput is a plain conversational reply.
type GeneralChatOutput struct {
	Response string `json:"response"`
}

// RestaurantSuggestion is one nearby place likely to serve the dish.
type RestaurantSuggestion struct {
	RestaurantName string `json:"restaurantName"`
	Address        string `json:"address"`
	DriveTime      string `json:"driveTime"`
	WalkTime       string `json:"walkTime"`
	MapsURL        string `json:"mapsUrl"`
}

// FindRestaurantsOutput is the structured result of the restaurant task,
// ordered by proximity with the closest first.
type FindRestaurantsOutput struct {
	Restaurants []RestaurantSuggestion `json:"restaurants"`
}

var identifyDishSchema = &genai.Schema{
	Type:        "object",
	Description: "Identification of a Nigerian dish from a photo.",
	Required:    []string{"dishName", "culturalOrigin", "ingredientList", "stepByStepRecipe", "videoTutorialLink"},
	Properties: map[string]*genai.Schema{
		"dishName": {
			Type:        "string",
			Description: "The name of the Nigerian dish. Empty if the dish could not be identified confidently.",
		},
		"culturalOrigin": {
			Type:        "string",
			Description: "The primary ethnic group(s) in Nigeria associated with the dish. Be specific.",
		},
		"ingredientList": {
			Type:        "string",
			Description: "A comprehensive list of all necessary ingredients with potential substitutes.",
		},
		"stepByStepRecipe": {
			Type:        "string",
			Description: "A clear, easy-to-follow guide for preparation.",
		},
		"videoTutorialLink": {
			Type:        "string",
			Description: "A link to a high-quality, publicly available YouTube video demonstrating how to cook the dish.",
		},
	},
}

var retrieveRecipeSchema = &genai.Schema{
	Type:        "object",
	Description: "A Nigerian recipe retrieved by dish name.",
	Required:    []string{"dishName", "culturalOrigin", "ingredients", "recipe", "videoTutorialLink"},
	Properties: map[string]*genai.Schema{
		"dishName": {
			Type:        "string",
			Description: "The name of the Nigerian dish. Empty if no dish could be identified in the request.",
		},
		"culturalOrigin": {
			Type:        "string",
			Description: "The primary ethnic group(s) in Nigeria associated with the dish.",
		},
		"ingredients": {
			Type:        "string",
			Description: "A comprehensive list of all necessary ingredients with potential substitutes.",
		},
		"recipe": {
			Type:        "string",
			Description: "A clear, easy-to-follow guide for preparation.",
		},
		"videoTutorialLink": {
			Type:        "string",
			Description: "A link to a high-quality, publicly available YouTube video demonstrating how to cook the dish.",
		},
	},
}

var generalChatSchema = &genai.Schema{
	Type:        "object",
	Description: "A conversational reply.",
	Required:    []string{"response"},
	Properties: map[string]*genai.Schema{
		"response": {
			Type:        "string",
			Description: "A friendly, conversational response.",
		},
	},
}

var findRestaurantsSchema = &genai.Schema{
	Type:        "object",
	Description: "Nearby restaurants serving a dish.",
	Required:    []string{"restaurants"},
	Properties: map[string]*genai.Schema{
		"restaurants": {
			Type:        "array",
			Description: "A list of up to 7 nearby Nigerian restaurants or fast food places, sorted by proximity.",
			Items: &genai.Schema{
				Type:        "object",
				Description: "A recommended restaurant or fast food place.",
				Required:    []string{"restaurantName", "address", "driveTime", "walkTime", "mapsUrl"},
				Properties: map[string]*genai.Schema{
					"restaurantName": {
						Type:        "string",
						Description: "The name of the recommended restaurant or fast food place.",
					},
					"address": {
						Type:        "string",
						Description: "The full address of the establishment.",
					},
					"driveTime": {
						Type:        "string",
						Description: "The estimated driving time from the user's location.",
					},
					"walkTime": {
						Type:        "string",
						Description: "The estimated walking time from the user's location.",
					},
					"mapsUrl": {
						Type:        "string",
						Description: "A Google Maps URL to the establishment.",
					},
				},
			},
		},
	},
}

// validate checks schema-level invariants the decoder cannot express.
// A failure here is fatal for the turn.

func (o *IdentifyDishOutput) validate() error {
	// All-empty is the not-identified outcome and passes.
	if o.DishName != "" && (o.IngredientList == "" || o.StepByStepRecipe == "") {
		return fmt.Errorf("identified dish %q is missing its ingredients or steps", o.DishName)
	}
	return nil
}

func (o *RetrieveRecipeOutput) validate() error {
	if o.DishName != "" && (o.Ingredients == "" || o.Recipe == "") {
		return fmt.Errorf("recipe for %q is missing its ingredients or steps", o.DishName)
	}
	return nil
}

func (o *GeneralChatOutput) validate() error {
	if o.Response == "" {
		return fmt.Errorf("chat response missing required field: response")
	}
	return nil
}

func (o *FindRestaurantsOutput) validate() error {
	for i, r := range o.Restaurants {
		if r.RestaurantName == "" || r.Address == "" {
			return fmt.Errorf("restaurant %d missing required fields", i)
		}
	}
	return nil
}
