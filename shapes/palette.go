package shapes

// Palette colors shared by the built-in shapes, packed 0xRRGGBB.
const (
	CyberBlue  uint32 = 0x0EA5E9
	NeonPurple uint32 = 0x8B5CF6
	GoldCert   uint32 = 0xF59E0B

	Skin     uint32 = 0xAC7339
	Blazer   uint32 = 0x334155
	Shirt    uint32 = 0xFFFFFF
	Trousers uint32 = 0x475569
	Shoes    uint32 = 0x1E293B
	RedTie   uint32 = 0xEF4444

	Wood  uint32 = 0x5D4037
	Green uint32 = 0x10B981
	White uint32 = 0xFFFFFF
	Black uint32 = 0x0F172A
	Glass uint32 = 0xE0F2FE
	Metal uint32 = 0x94A3B8

	Dark  uint32 = 0x475569
	Light uint32 = 0xF1F5F9
	Talon uint32 = 0xF59E0B
	Gold  uint32 = 0xFBBF24
)

// paletteNames lets shape files refer to palette entries by name.
var paletteNames = map[string]uint32{
	"cyber_blue":  CyberBlue,
	"neon_purple": NeonPurple,
	"gold_cert":   GoldCert,
	"skin":        Skin,
	"blazer":      Blazer,
	"shirt":       Shirt,
	"trousers":    Trousers,
	"shoes":       Shoes,
	"red_tie":     RedTie,
	"wood":        Wood,
	"green":       Green,
	"white":       White,
	"black":       Black,
	"glass":       Glass,
	"metal":       Metal,
	"dark":        Dark,
	"light":       Light,
	"talon":       Talon,
	"gold":        Gold,
}
