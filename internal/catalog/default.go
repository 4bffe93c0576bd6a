package catalog

var defaultItems = []Item{
	{
		ID:    "look-1",
		Image: "https://images.unsplash.com/photo-1520975916090-3105956dac38?q=80&w=1200&auto=format&fit=crop",
		Alt:   "Linen shirt in soft beige",
		Tone:  "from-white to-amber-50",
	},
	{
		ID:    "look-2",
		Image: "https://images.unsplash.com/photo-1516826957135-700dedea698c?q=80&w=1200&auto=format&fit=crop",
		Alt:   "Minimal trench coat",
		Tone:  "from-amber-50 to-stone-50",
	},
	{
		ID:    "look-3",
		Image: "https://images.unsplash.com/photo-1520975693410-001d6025f660?q=80&w=1200&auto=format&fit=crop",
		Alt:   "Cotton tee and trousers",
		Tone:  "from-stone-50 to-amber-50",
	},
	{
		ID:    "look-4",
		Image: "https://images.unsplash.com/photo-1490481651871-ab68de25d43d?q=80&w=1200&auto=format&fit=crop",
		Alt:   "Pastel brown knit",
		Tone:  "from-amber-50 to-white",
	},
}

// Default returns the built-in curated looks.
func Default() *Catalog {
	return MustNew(defaultItems)
}
