// internal/domain/catalog/catalog.go
package catalog

// Story represents a public catalog entry. The public catalog is a
// compile-time fixture: it is never mutated at runtime. The admin
// dashboard edits its own copy (see the product domain).
type Story struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Price       int64    `json:"price"` // Price in cents
	OldPrice    int64    `json:"old_price"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
	AgeRange    string   `json:"age_range"`
	Description string   `json:"description"`
}

// GetFormattedPrice returns the price as a float
func (s *Story) GetFormattedPrice() float64 {
	return float64(s.Price) / 100
}

// GetDiscountPercentage returns the discount against the old price
func (s *Story) GetDiscountPercentage() int {
	if s.OldPrice > 0 && s.Price < s.OldPrice {
		return int(((s.OldPrice - s.Price) * 100) / s.OldPrice)
	}
	return 0
}

// Stories is the main storefront list, in display order.
var Stories = []Story{
	{
		ID:          1,
		Name:        "La Princesse et le Dragon Magique",
		Price:       12000,
		OldPrice:    15000,
		Image:       "/p1.avif",
		Images:      []string{"/p1.avif", "/p1.avif", "/p1.avif"},
		Category:    "aventure",
		AgeRange:    "3-6 ans",
		Description: "Une histoire magique personnalisée où votre petite princesse vit une aventure extraordinaire avec un dragon bienveillant.",
	},
	{
		ID:          2,
		Name:        "L'Aventure de la Fée des Étoiles",
		Price:       9500,
		OldPrice:    12000,
		Image:       "/p1.avif",
		Images:      []string{"/p1.avif", "/p1.avif"},
		Category:    "aventure",
		AgeRange:    "0-3 ans",
		Description: "Votre enfant devient l'héroïne d'une aventure féerique parmi les étoiles.",
	},
	{
		ID:          3,
		Name:        "Le Royaume des Licornes",
		Price:       8000,
		OldPrice:    10000,
		Image:       "/p1.avif",
		Images:      []string{"/p1.avif", "/p1.avif"},
		Category:    "sommeil",
		AgeRange:    "3-6 ans",
		Description: "Une histoire enchantée dans un royaume peuplé de licornes magiques.",
	},
	{
		ID:          4,
		Name:        "La Ballerine et le Château Enchanté",
		Price:       11000,
		OldPrice:    14000,
		Image:       "/p1.avif",
		Images:      []string{"/p1.avif", "/p1.avif"},
		Category:    "sommeil",
		AgeRange:    "6 ans et +",
		Description: "Votre petite danseuse découvre un château magique rempli de surprises.",
	},
	{
		ID:          5,
		Name:        "Le Pirate et le Trésor Perdu",
		Price:       13000,
		OldPrice:    16000,
		Image:       "/p1.avif",
		Images:      []string{"/p1.avif", "/p1.avif"},
		Category:    "aventure",
		AgeRange:    "6 ans et +",
		Description: "Une aventure palpitante où votre petit pirate part à la recherche d'un trésor légendaire.",
	},
	{
		ID:          6,
		Name:        "L'Explorateur de la Jungle",
		Price:       11500,
		OldPrice:    14500,
		Image:       "/p1.avif",
		Images:      []string{"/p1.avif", "/p1.avif"},
		Category:    "aventure",
		AgeRange:    "Famille",
		Description: "Votre enfant devient un courageux explorateur dans une jungle mystérieuse.",
	},
	{
		ID:          7,
		Name:        "Le Chevalier et le Dragon",
		Price:       12500,
		OldPrice:    15500,
		Image:       "/p1.avif",
		Images:      []string{"/p1.avif", "/p1.avif"},
		Category:    "aventure",
		AgeRange:    "3-6 ans",
		Description: "Une épopée héroïque où votre petit chevalier affronte un dragon pour sauver le royaume.",
	},
	{
		ID:          8,
		Name:        "L'Astronaute et la Planète Mystérieuse",
		Price:       14000,
		OldPrice:    17000,
		Image:       "/p1.avif",
		Images:      []string{"/p1.avif", "/p1.avif"},
		Category:    "sommeil",
		AgeRange:    "Famille",
		Description: "Une aventure spatiale extraordinaire sur une planète pleine de mystères.",
	},
}

// SpecialStories is the promoted/featured list shown on the landing page.
var SpecialStories = []Story{
	{
		ID:          101,
		Name:        "Mon Aventure Personnalisée",
		Price:       12000,
		OldPrice:    15000,
		Image:       "/p1.avif",
		Images:      []string{"/p1.avif", "/p1.avif", "/p1.avif"},
		Category:    "aventure",
		AgeRange:    "3-6 ans",
		Description: "Une histoire unique où votre enfant devient le héros de sa propre aventure magique.",
	},
	{
		ID:          102,
		Name:        "Le Livre des Rêves Étoilés",
		Price:       10500,
		OldPrice:    13000,
		Image:       "/p1.avif",
		Images:      []string{"/p1.avif", "/p1.avif"},
		Category:    "sommeil",
		AgeRange:    "0-3 ans",
		Description: "Une douce histoire du soir qui emmène votre enfant vers des rêves merveilleux.",
	},
}

// FindByID looks up a story by id, scanning the main list first and
// then the special list. Returns nil when no story matches.
func FindByID(id int) *Story {
	for i := range Stories {
		if Stories[i].ID == id {
			return &Stories[i]
		}
	}
	for i := range SpecialStories {
		if SpecialStories[i].ID == id {
			return &SpecialStories[i]
		}
	}
	return nil
}

// All returns the full catalog: main list followed by the special list.
func All() []Story {
	all := make([]Story, 0, len(Stories)+len(SpecialStories))
	all = append(all, Stories...)
	all = append(all, SpecialStories...)
	return all
}
