// Package prompts assembles generation prompts for the three studio modes.
// Every prompt carries the identity-preservation preamble so the model does
// not redesign the jewelry itself; the textual contract here is load-bearing
// for the whole product.
package prompts

import (
	"fmt"
	"strings"
)

// Preset identifiers for quick mode.
const (
	PresetWhiteBackground = "white-background"
	PresetStillLife       = "still-life"
	PresetOnModel         = "on-model"
	PresetLifestyle       = "lifestyle"
	PresetLuxury          = "luxury"
	PresetCloseUp         = "close-up"
)

// DefaultAspectRatio is used when the caller does not choose one.
const DefaultAspectRatio = "9:16"

// NegativePrompt is shared by all generation modes. Advanced-mode user text
// is appended to it, never replaces it.
const NegativePrompt = `blurry, distorted, deformed, low quality, pixelated, grainy,
  watermark, text, logo, signature, amateur, unprofessional,
  wrong anatomy, disproportionate, unrealistic, fake-looking,
  oversaturated, overexposed, underexposed, bad lighting,
  duplicate jewelry, multiple items when single expected,
  damaged jewelry, tarnished, dirty, scratched beyond artistic intent`

// Options carries the inputs for prompt assembly.
type Options struct {
	JewelryType string // ring, necklace, earring, bracelet
	Gender      string // "women" or "men"
	AspectRatio string // optional, defaults to 9:16

	PresetID string // quick mode

	Model    string // selective mode: model style free text
	Location string // selective mode
	Mood     string // selective mode

	CustomPrompt   string // advanced mode
	NegativePrompt string // advanced mode: appended to the shared negative prompt
}

// Prompt is an assembled prompt pair.
type Prompt struct {
	Prompt         string
	NegativePrompt string
}

// PresetIDs lists the quick-mode presets in display order.
func PresetIDs() []string {
	return []string{
		PresetWhiteBackground,
		PresetStillLife,
		PresetOnModel,
		PresetLifestyle,
		PresetLuxury,
		PresetCloseUp,
	}
}

func (o Options) aspectRatio() string {
	if o.AspectRatio == "" {
		return DefaultAspectRatio
	}
	return o.AspectRatio
}

func (o Options) women() bool {
	return o.Gender == "women"
}

func pick(women bool, w, m string) string {
	if women {
		return w
	}
	return m
}

// BuildQuick maps a preset id, jewelry type, and gender into a long-form
// templated prompt. An unknown preset id falls back to white-background.
func BuildQuick(o Options) Prompt {
	ar := o.aspectRatio()
	women := o.women()

	presets := map[string]string{
		PresetWhiteBackground: fmt.Sprintf(`CRITICAL PRESERVATION RULES:
- EXACT jewelry design must remain 100%% identical
- Original gemstones, metals, patterns must not change
- Only background becomes pure white (RGB 255, 255, 255)

TASK:
Professional e-commerce product photo of the %s on clean white background.

STYLE: Clean, minimal, professional e-commerce
LIGHTING: Soft even studio lighting, no harsh shadows
COMPOSITION: Centered, %s
FOCUS: Product clarity, true colors, sharp details

OUTPUT: High-resolution product photo, Aspect ratio %s`,
			o.JewelryType,
			pick(women, "elegant feminine styling", "refined masculine styling"),
			ar),

		PresetStillLife: fmt.Sprintf(`CRITICAL PRESERVATION RULES:
- EXACT jewelry design must remain 100%% identical
- Original materials and craftsmanship preserved

TASK:
Artistic still life composition featuring the %s displayed on natural stone surfaces.

ENVIRONMENT: Natural stone display (marble, slate, or granite)
STYLING: Organic elements (dried flowers, crystals, natural textures)
LIGHTING: Soft natural daylight, elegant shadows
MOOD: Sophisticated, organic luxury
COMPOSITION: %s

OUTPUT: Editorial still life photo, Aspect ratio %s`,
			o.JewelryType,
			pick(women, "Feminine elegance", "Masculine refinement"),
			ar),

		PresetOnModel: fmt.Sprintf(`CRITICAL PRESERVATION RULES:
- EXACT jewelry design must remain 100%% identical
- Jewelry is THE FOCUS, not the model

TASK:
Professional lifestyle photo showing %s worn by %s.

MODEL: %s
STYLING: Timeless, elegant, complementing jewelry without competing
COMPOSITION: Jewelry as primary focus, %s
LIGHTING: Professional studio lighting, flattering and clear
BACKGROUND: Soft neutral tones (cream, taupe, soft grey)

OUTPUT: Professional lifestyle photo, Aspect ratio %s`,
			o.JewelryType,
			pick(women, "elegant woman", "sophisticated man"),
			pick(women, "Professional female model, 25-35 years old", "Professional male model, 28-40 years old"),
			pick(women, "graceful hand/body positioning", "confident masculine presence"),
			ar),

		PresetLifestyle: fmt.Sprintf(`CRITICAL PRESERVATION RULES:
- EXACT jewelry design must remain 100%% identical
- Natural setting enhances but doesn't overshadow

TASK:
Lifestyle photo of %s in natural, aspirational setting.

ENVIRONMENT: Natural outdoor or elegant indoor setting
MOOD: Aspirational, authentic, emotionally engaging
LIGHTING: Natural soft lighting (golden hour or diffused daylight)
STYLING: %s
COMPOSITION: Jewelry integrated naturally into lifestyle moment

OUTPUT: Lifestyle editorial photo, Aspect ratio %s`,
			o.JewelryType,
			pick(women, "Feminine, elegant, relatable luxury", "Masculine, refined, authentic sophistication"),
			ar),

		PresetLuxury: fmt.Sprintf(`CRITICAL PRESERVATION RULES:
- EXACT jewelry design must remain 100%% identical
- Luxury aesthetic enhances, never alters

TASK:
Ultra-luxury editorial photo of %s, highest-end presentation.

STYLE: Vogue, Harper's Bazaar editorial aesthetic
LIGHTING: Dramatic, sculptural, museum-quality
ENVIRONMENT: Luxurious setting (velvet, silk, marble, gold accents)
MOOD: Exclusive, sophisticated, timeless elegance
COMPOSITION: %s

OUTPUT: Luxury editorial photo, Aspect ratio %s`,
			o.JewelryType,
			pick(women, "Haute couture feminine luxury", "Distinguished masculine prestige"),
			ar),

		PresetCloseUp: fmt.Sprintf(`CRITICAL PRESERVATION RULES:
- EXACT jewelry design must remain 100%% identical
- Macro detail shows authentic craftsmanship

TASK:
Extreme close-up macro photography of %s, showcasing intricate details.

FOCUS: Gemstone facets, metal texture, craftsmanship details
LIGHTING: Precision lighting to reveal depth, sparkle, texture
COMPOSITION: %s
DEPTH: Shallow depth of field, artistic bokeh
QUALITY: Ultra-sharp focus on key details

OUTPUT: Macro detail photo, Aspect ratio %s`,
			o.JewelryType,
			pick(women, "Delicate feminine details", "Bold masculine craftsmanship"),
			ar),
	}

	prompt, found := presets[o.PresetID]
	if !found {
		prompt = presets[PresetWhiteBackground]
	}

	return Prompt{Prompt: prompt, NegativePrompt: NegativePrompt}
}

// BuildSelective interpolates model-style, location, and mood selections into
// a shorter templated prompt. Empty selections fall back to studio defaults.
func BuildSelective(o Options) Prompt {
	model := o.Model
	if model == "" {
		model = "professional"
	}
	location := o.Location
	if location == "" {
		location = "studio"
	}
	mood := o.Mood
	if mood == "" {
		mood = "natural"
	}

	prompt := fmt.Sprintf(`CRITICAL PRESERVATION RULES:
- EXACT jewelry design must remain 100%% identical
- Original design is sacred, only context changes

TASK:
Professional photo of %s for %s.

MODEL STYLE: %s
LOCATION: %s
MOOD: %s
COMPOSITION: Balanced, jewelry as focal point
QUALITY: High-end commercial photography

OUTPUT: Professional jewelry photo, Aspect ratio %s`,
		o.JewelryType, o.Gender, model, location, mood, o.aspectRatio())

	return Prompt{Prompt: prompt, NegativePrompt: NegativePrompt}
}

// BuildAdvanced wraps an optional user-supplied description in the minimal
// preservation template. User negative text is appended to the shared
// negative prompt, never replacing it.
func BuildAdvanced(o Options) Prompt {
	custom := strings.TrimSpace(o.CustomPrompt)
	if custom == "" {
		custom = "High-quality professional jewelry photography"
	}

	prompt := fmt.Sprintf(`CRITICAL PRESERVATION RULES:
- EXACT jewelry design must remain 100%% identical

TASK:
Professional photo of %s for %s.

%s

OUTPUT: Aspect ratio %s`,
		o.JewelryType, o.Gender, custom, o.aspectRatio())

	negative := NegativePrompt
	if extra := strings.TrimSpace(o.NegativePrompt); extra != "" {
		negative = negative + ", " + extra
	}

	return Prompt{Prompt: prompt, NegativePrompt: negative}
}
