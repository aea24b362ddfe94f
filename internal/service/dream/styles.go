package dream

import "github.com/heartmarshall/dreamr-backend/internal/domain"

// defaultStyle is used when a dream has no tone or an unknown one.
const defaultStyle = "Dreamlike oil painting, muted colors, smooth brush strokes"

var toneStyles = map[domain.Tone][]string{
	domain.TonePeaceful: {
		"Soft watercolor illustration, pastel tones, gentle lighting",
		"Dreamlike oil painting, muted colors, smooth brush strokes",
		"Minimalist fantasy illustration, airy composition, warm glow",
	},
	domain.ToneRomantic: {
		"Impressionist painting, warm light, nostalgic mood",
		"Soft-focus oil painting, romantic atmosphere",
		"Vintage storybook illustration, faded tones",
	},
	domain.ToneElegant: {
		"Art Nouveau inspired illustration, flowing lines",
		"Ornate oil painting, rich textures, classical elegance",
		"Decorative fantasy illustration, intricate detail",
	},
	domain.ToneWhimsical: {
		"Surreal storybook illustration, imaginative shapes, soft color",
		"Whimsical children's book art, dreamy proportions",
		"Painterly surreal fantasy, floating elements, gentle distortion",
	},
	domain.ToneAncient: {
		"Mythological fantasy illustration, classical composition",
		"Ancient fresco inspired painting, earthy tones",
		"Epic mythic oil painting, timeless atmosphere",
	},
	domain.ToneEpic: {
		"Cinematic fantasy concept art, dramatic lighting, painterly",
		"Mythic oil painting, heroic scale, rich color depth",
		"Illustrated epic fantasy poster, dynamic composition",
	},
	domain.ToneFuturistic: {
		"Retrofuturistic concept art, uncanny atmosphere",
		"Cyberdream illustration, neon accents, soft focus",
		"Surreal sci-fi painting, liminal spaces",
	},
	domain.ToneNightmarish: {
		"Dark fairytale illustration, shadow-heavy, painterly",
		"Surreal nightmare art, distorted forms, low light",
		"Moody cinematic illustration, dream-horror atmosphere",
	},
}

// pickStyle chooses one of the tone's styles using intn for the index.
func pickStyle(tone *domain.Tone, intn func(int) int) string {
	if tone == nil {
		return defaultStyle
	}
	styles, ok := toneStyles[*tone]
	if !ok || len(styles) == 0 {
		return defaultStyle
	}
	return styles[intn(len(styles))]
}
