package prompts

// UniversalImagePrompt asks for an exhaustive structured breakdown of an
// image, suitable for feeding back into an image generator.
const UniversalImagePrompt = `Analyze this image with extreme thoroughness and precision. Examine every single visual element, no matter how minute. Study the image as if you need to recreate it perfectly from memory. Provide output in this exact format:

Description: [4-5 line comprehensive description capturing the complete scene, all subjects, actions, and significant visual elements in detail]

Primary Subject(s): [main subject(s) with detailed description - pose, body language, facial expressions, age estimation, gender, ethnicity if apparent, clothing brand/style/condition, accessories, jewelry, footwear, hair style/color, makeup, gestures, what they're doing/holding]

Secondary Elements: [people, animals, or objects in background/periphery with their positions, actions, and details]

Environment/Setting: [specific location type, indoor/outdoor, architectural style, room type, landscape features, weather conditions, season indicators, time of day evidence, geographical clues, cultural context]

Colors & Visual Palette: [dominant colors, accent colors, color harmony, saturation levels, color temperature (warm/cool), specific color names, color distribution across image]

Lighting Analysis: [light source type (natural/artificial), direction (front/back/side), intensity (harsh/soft), quality (diffused/direct), shadows (hard/soft), highlights, reflections, ambient lighting, contrast levels]

Materials & Textures: [fabric types, surface materials, texture quality (smooth/rough/glossy/matte), material condition (new/worn/damaged), patterns, weaves, finishes]

Style & Technique: [photography style, artistic medium, visual technique, filter effects, processing style, camera type indicators, lens characteristics, depth of field, bokeh quality]

Composition & Framing: [camera angle (high/low/eye level), perspective (wide/close-up/macro), framing (tight/loose), rule of thirds application, leading lines, symmetry/asymmetry, balance, focal points, negative space usage]

Technical Quality: [image resolution indicators, sharpness, noise levels, compression artifacts, dynamic range, exposure quality] --ar [width:height ratio] --v 5.2

Text & Graphics: [any visible text (exact words), fonts, signs, labels, logos, brand names, symbols, graphics, artwork, posters, screens, digital displays]

Spatial Relationships: [how objects relate to each other, size comparisons, distance relationships, layering (foreground/midground/background), overlap patterns, perspective cues]

Motion & Action: [any movement indicators, blur patterns, action sequences, dynamic elements, static vs moving elements]

Mood & Atmosphere: [emotional tone, energy level, ambiance, psychological impact, cultural mood, formality level, tension/relaxation]

Temporal Indicators: [time period clues, historical markers, technology visible, fashion era, architectural period, anachronisms]

Fine Details: [small background objects, wear patterns, aging signs, scratches/damage, reflections in surfaces, shadows of unseen objects, partial text, edge details, corner elements, pattern specifics, brand markings, serial numbers, dates, signatures]

Anomalies & Unique Features: [anything unusual, unexpected, hidden elements, visual tricks, easter eggs, inconsistencies, artistic choices, creative elements, surreal aspects]

Do not use afterrisks in the output`

// UniversalImageSystemMessage accompanies UniversalImagePrompt.
const UniversalImageSystemMessage = "Generate precise image analysis following the universal prompt format."

// SocialCaptionPrompt asks for platform-specific social media captions.
const SocialCaptionPrompt = `Analyze this image and generate platform-specific captions in the following format, do not use asterisks::

Instagram:
[Write an engaging, conversational caption with emojis]
.
.
.
#[relevant hashtags, maximum 15]

Facebook:
[Write a longer, more detailed description that tells a story and encourages engagement]

Twitter/X:
[Write a concise, catchy caption within 280 characters, include 2-3 relevant hashtags]

LinkedIn:
[Write a professional caption that provides business context or insight]
→ [Add one key professional takeaway or insight]
---
#[3-4 relevant professional hashtags]`

// SocialCaptionSystemMessage accompanies SocialCaptionPrompt.
const SocialCaptionSystemMessage = "Generate engaging, platform-optimized social media captions."

// ImageVariation holds the reduced prompt used when image modes run
// through the mode-dispatched generate endpoint.
type ImageVariation struct {
	System    string
	MaxTokens int
}

// ImageVariationFor returns the variation settings for an image mode.
// Unknown image modes get a minimal default.
func ImageVariationFor(mode string) ImageVariation {
	switch mode {
	case "image_caption":
		return ImageVariation{System: "Generate a concise, descriptive caption for this image.", MaxTokens: 50}
	case "image_prompt":
		return ImageVariation{System: "Generate a detailed prompt that describes this image for AI image generation.", MaxTokens: 100}
	default:
		return ImageVariation{System: "Default image processing system message", MaxTokens: 50}
	}
}

// ImageVariationUserText is the text part paired with the image in
// variation requests.
const ImageVariationUserText = "Process this image:"
