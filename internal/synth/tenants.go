package synth

import (
	"github.com/deliverymart/catalog-seeder/internal/domain"
)

// BuiltinTenants returns the ten store archetypes the seeder loads by
// default. Each exercises a different corner of the catalog model: clothing
// sizes, supplement flavors, electronics voltages, and so on.
func BuiltinTenants() []domain.TenantSpec {
	return []domain.TenantSpec{
		{
			Name:      "FitStyle Brasil",
			StoreType: domain.StoreTypeFitnessApparel,
			Brands:    []string{"Nike", "Adidas", "Puma", "Under Armour", "Olympikus", "Fila"},
			Categories: []domain.CategoryGroup{
				{Name: "Women's Apparel", Subcategories: []string{"Leggings", "Tops", "Shorts", "Pants", "Jumpsuits"}},
				{Name: "Men's Apparel", Subcategories: []string{"T-Shirts", "Shorts", "Pants", "Tank Tops", "Jackets"}},
				{Name: "Accessories", Subcategories: []string{"Caps", "Socks", "Gloves", "Headbands"}},
			},
		},
		{
			Name:      "Skate Shop Brasil",
			StoreType: domain.StoreTypeBoardSports,
			Brands:    []string{"Element", "Santa Cruz", "Vans", "DC Shoes", "Flip", "Almost"},
			Categories: []domain.CategoryGroup{
				{Name: "Decks", Subcategories: []string{"Street", "Cruiser", "Longboard"}},
				{Name: "Wheels", Subcategories: []string{"Street 52mm", "Street 54mm", "Cruiser"}},
				{Name: "Trucks", Subcategories: []string{"Low", "Mid", "High"}},
				{Name: "Apparel", Subcategories: []string{"T-Shirts", "Hoodies", "Caps", "Sneakers"}},
			},
		},
		{
			Name:      "Suplementos Max",
			StoreType: domain.StoreTypeSupplements,
			Brands:    []string{"Optimum Nutrition", "Max Titanium", "Integralmedica", "Growth", "Probiotica", "Atlhetica"},
			Categories: []domain.CategoryGroup{
				{Name: "Proteins", Subcategories: []string{"Whey Protein", "Casein", "Albumin", "Plant Protein"}},
				{Name: "Pre-Workout", Subcategories: []string{"Stimulant", "Stimulant-Free", "Pump"}},
				{Name: "Amino Acids", Subcategories: []string{"BCAA", "Creatine", "Glutamine"}},
				{Name: "Vitamins", Subcategories: []string{"Multivitamins", "Omega 3", "Vitamin D"}},
			},
		},
		{
			Name:      "TechStore Brasil",
			StoreType: domain.StoreTypeElectronics,
			Brands:    []string{"Samsung", "Apple", "Xiaomi", "Motorola", "LG", "Sony"},
			Categories: []domain.CategoryGroup{
				{Name: "Smartphones", Subcategories: []string{"Android", "iPhone"}},
				{Name: "Accessories", Subcategories: []string{"Earphones", "Cases", "Chargers", "Screen Protectors"}},
				{Name: "Smart Home", Subcategories: []string{"Bulbs", "Plugs", "Cameras"}},
				{Name: "Audio", Subcategories: []string{"Bluetooth Headphones", "Speakers", "Soundbars"}},
			},
		},
		{
			Name:      "Petshop Amigo Fiel",
			StoreType: domain.StoreTypePetShop,
			Brands:    []string{"Pedigree", "Royal Canin", "Golden", "Premier", "Magnus", "Whiskas"},
			Categories: []domain.CategoryGroup{
				{Name: "Dog Food", Subcategories: []string{"Puppy Food", "Adult Food", "Senior Food", "Treats"}},
				{Name: "Cat Food", Subcategories: []string{"Kitten Food", "Adult Food", "Wet Pouches"}},
				{Name: "Accessories", Subcategories: []string{"Collars", "Feeders", "Toys", "Beds"}},
				{Name: "Hygiene", Subcategories: []string{"Shampoo", "Flea Control", "Cat Litter"}},
			},
		},
		{
			Name:      "Livros & Cultura",
			StoreType: domain.StoreTypeBookstore,
			Brands:    []string{"Companhia das Letras", "Record", "Intrinseca", "Rocco", "Suma", "Darkside"},
			Categories: []domain.CategoryGroup{
				{Name: "Fiction", Subcategories: []string{"Romance", "Fantasy", "Thriller", "Horror"}},
				{Name: "Non-Fiction", Subcategories: []string{"Biography", "History", "Science", "Philosophy"}},
				{Name: "Personal Growth", Subcategories: []string{"Self-Help", "Business", "Productivity"}},
				{Name: "Children", Subcategories: []string{"Ages 0-3", "Ages 4-7", "Ages 8-12"}},
			},
		},
		{
			Name:      "Gamer Zone",
			StoreType: domain.StoreTypeGaming,
			Brands:    []string{"Razer", "Logitech", "HyperX", "Corsair", "Redragon", "Dazz"},
			Categories: []domain.CategoryGroup{
				{Name: "Peripherals", Subcategories: []string{"Keyboards", "Mice", "Headsets", "Mousepads"}},
				{Name: "Chairs", Subcategories: []string{"Executive", "Racing", "Pro"}},
				{Name: "Consoles", Subcategories: []string{"PlayStation", "Xbox", "Nintendo"}},
				{Name: "PC Gaming", Subcategories: []string{"Graphics Cards", "Processors", "RAM"}},
			},
		},
		{
			Name:      "Cosméticos Bella",
			StoreType: domain.StoreTypeCosmetics,
			Brands:    []string{"Natura", "Boticário", "Avon", "Mary Kay", "Eudora", "Quem Disse Berenice"},
			Categories: []domain.CategoryGroup{
				{Name: "Makeup", Subcategories: []string{"Foundation", "Lipstick", "Mascara", "Eyeshadow", "Blush"}},
				{Name: "Skincare", Subcategories: []string{"Moisturizer", "Serum", "Sunscreen", "Cleanser"}},
				{Name: "Hair", Subcategories: []string{"Shampoo", "Conditioner", "Hair Mask", "Styling"}},
				{Name: "Fragrance", Subcategories: []string{"Women", "Men", "Unisex"}},
			},
		},
		{
			Name:      "Casa & Decoração",
			StoreType: domain.StoreTypeHomeDecor,
			Brands:    []string{"Tramontina", "Brinox", "Tok&Stok", "Camicado", "Santista", "Buddemeyer"},
			Categories: []domain.CategoryGroup{
				{Name: "Kitchen", Subcategories: []string{"Cookware", "Cutlery", "Glassware", "Plates"}},
				{Name: "Bedroom", Subcategories: []string{"Sheet Sets", "Duvets", "Pillows", "Blankets"}},
				{Name: "Bathroom", Subcategories: []string{"Towels", "Bath Mats", "Curtains"}},
				{Name: "Decor", Subcategories: []string{"Frames", "Vases", "Cushions", "Mirrors"}},
			},
		},
		{
			Name:      "Instrumentos Musicais Pro",
			StoreType: domain.StoreTypeInstruments,
			Brands:    []string{"Yamaha", "Fender", "Gibson", "Tagima", "Giannini", "Roland"},
			Categories: []domain.CategoryGroup{
				{Name: "Strings", Subcategories: []string{"Acoustic Guitars", "Electric Guitars", "Bass Guitars", "Ukuleles"}},
				{Name: "Keys", Subcategories: []string{"Keyboards", "Pianos", "Synthesizers"}},
				{Name: "Percussion", Subcategories: []string{"Drum Kits", "Cajons", "Tambourines"}},
				{Name: "Accessories", Subcategories: []string{"Strings", "Picks", "Cables", "Amplifiers"}},
			},
		},
	}
}
