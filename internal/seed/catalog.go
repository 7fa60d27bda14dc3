package seed

import "github.com/hitoshi/tabilog/internal/model"

// catalogEntry はシード用ロケーションの定義。
type catalogEntry struct {
	Name        string
	City        string
	Country     string
	Description string
	PriceLevel  int
	Category    model.Category
	Rating      float64
	Latitude    float64
	Longitude   float64
}

func (e catalogEntry) toLocation() model.Location {
	priceLevel := e.PriceLevel
	rating := e.Rating
	return model.Location{
		Name:        e.Name,
		City:        e.City,
		Country:     e.Country,
		Description: e.Description,
		PriceLevel:  &priceLevel,
		Category:    e.Category,
		Rating:      &rating,
		Latitude:    e.Latitude,
		Longitude:   e.Longitude,
	}
}

// catalog は初期投入するロケーション。カテゴリごとに6件。
var catalog = []catalogEntry{
	// nature
	{Name: "Grand Canyon", City: "Arizona", Country: "USA", Description: "Steep-sided canyon carved by the Colorado River.", PriceLevel: 2, Category: model.CategoryNature, Rating: 4.9, Latitude: 36.1069, Longitude: -112.1129},
	{Name: "Amazon Rainforest", City: "Manaus", Country: "Brazil", Description: "Largest tropical rainforest in the world.", PriceLevel: 4, Category: model.CategoryNature, Rating: 4.8, Latitude: -3.4653, Longitude: -62.2159},
	{Name: "Uluru", City: "Northern Territory", Country: "Australia", Description: "Large sandstone rock formation sacred to indigenous people.", PriceLevel: 3, Category: model.CategoryNature, Rating: 4.8, Latitude: -25.3444, Longitude: 131.0369},
	{Name: "Mount Everest", City: "Solukhumbu", Country: "Nepal", Description: "Earth's highest mountain above sea level.", PriceLevel: 5, Category: model.CategoryNature, Rating: 4.9, Latitude: 27.9881, Longitude: 86.925},
	{Name: "Northern Lights", City: "Tromsø", Country: "Norway", Description: "Natural light display in the sky, particularly in high-latitude regions.", PriceLevel: 3, Category: model.CategoryNature, Rating: 4.9, Latitude: 69.6492, Longitude: 18.9553},
	{Name: "Great Barrier Reef", City: "Queensland", Country: "Australia", Description: "The world's largest coral reef system, visible from space.", PriceLevel: 4, Category: model.CategoryNature, Rating: 4.9, Latitude: -18.2871, Longitude: 147.6992},
	// recreational
	{Name: "Walt Disney World", City: "Orlando", Country: "USA", Description: "Entertainment complex with theme parks and resorts.", PriceLevel: 4, Category: model.CategoryRecreational, Rating: 4.7, Latitude: 28.3852, Longitude: -81.5639},
	{Name: "Bondi Beach", City: "Sydney", Country: "Australia", Description: "Popular beach known for surfing and swimming.", PriceLevel: 1, Category: model.CategoryRecreational, Rating: 4.5, Latitude: -33.8915, Longitude: 151.2767},
	{Name: "Ski Dubai", City: "Dubai", Country: "UAE", Description: "Indoor ski resort with 22,500 square meters of indoor ski area.", PriceLevel: 4, Category: model.CategoryRecreational, Rating: 4.4, Latitude: 25.1182, Longitude: 55.2004},
	{Name: "Central Park", City: "New York", Country: "USA", Description: "Urban park offering various recreational activities.", PriceLevel: 1, Category: model.CategoryRecreational, Rating: 4.8, Latitude: 40.7812, Longitude: -73.9665},
	{Name: "Universal Studios", City: "Los Angeles", Country: "USA", Description: "Film studio and theme park with various attractions.", PriceLevel: 4, Category: model.CategoryRecreational, Rating: 4.6, Latitude: 34.1381, Longitude: -118.3534},
	{Name: "Tokyo Disneyland", City: "Tokyo", Country: "Japan", Description: "The first Disney park outside the United States.", PriceLevel: 4, Category: model.CategoryRecreational, Rating: 4.6, Latitude: 35.6329, Longitude: 139.8804},
	// nightlife
	{Name: "Berghain", City: "Berlin", Country: "Germany", Description: "World-famous techno club known for its intense nightlife.", PriceLevel: 3, Category: model.CategoryNightlife, Rating: 4.8, Latitude: 52.5111, Longitude: 13.4432},
	{Name: "Pacha", City: "Ibiza", Country: "Spain", Description: "Iconic nightclub established in 1973, known for electronic music.", PriceLevel: 4, Category: model.CategoryNightlife, Rating: 4.7, Latitude: 38.9181, Longitude: 1.4492},
	{Name: "Cavo Paradiso", City: "Mykonos", Country: "Greece", Description: "Open-air club perched on a cliff with views of the Aegean Sea.", PriceLevel: 5, Category: model.CategoryNightlife, Rating: 4.8, Latitude: 37.4088, Longitude: 25.3454},
	{Name: "XS Nightclub", City: "Las Vegas", Country: "USA", Description: "Luxurious nightclub at the Encore hotel with indoor and outdoor space.", PriceLevel: 5, Category: model.CategoryNightlife, Rating: 4.6, Latitude: 36.1293, Longitude: -115.1686},
	{Name: "Omnia", City: "Las Vegas", Country: "USA", Description: "Multilevel venue with electronic music and world-renowned DJs.", PriceLevel: 5, Category: model.CategoryNightlife, Rating: 4.5, Latitude: 36.116, Longitude: -115.174},
	{Name: "Ministry of Sound", City: "London", Country: "UK", Description: "Iconic nightclub dedicated to house music and other electronic genres.", PriceLevel: 3, Category: model.CategoryNightlife, Rating: 4.6, Latitude: 51.4926, Longitude: -0.0998},
	// culture
	{Name: "Louvre Museum", City: "Paris", Country: "France", Description: "World's largest art museum and historic monument.", PriceLevel: 3, Category: model.CategoryCulture, Rating: 4.7, Latitude: 48.8606, Longitude: 2.3376},
	{Name: "British Museum", City: "London", Country: "UK", Description: "Museum with a vast collection of world art and artifacts.", PriceLevel: 1, Category: model.CategoryCulture, Rating: 4.7, Latitude: 51.5194, Longitude: -0.1269},
	{Name: "Acropolis", City: "Athens", Country: "Greece", Description: "Ancient citadel with Parthenon temple.", PriceLevel: 2, Category: model.CategoryCulture, Rating: 4.8, Latitude: 37.9715, Longitude: 23.7267},
	{Name: "Smithsonian Museums", City: "Washington DC", Country: "USA", Description: "World's largest museum and research complex.", PriceLevel: 1, Category: model.CategoryCulture, Rating: 4.8, Latitude: 38.8921, Longitude: -77.0241},
	{Name: "Sydney Opera House", City: "Sydney", Country: "Australia", Description: "Iconic performing arts center with distinctive sail-like design.", PriceLevel: 3, Category: model.CategoryCulture, Rating: 4.6, Latitude: -33.8568, Longitude: 151.2153},
	{Name: "Machu Picchu", City: "Cusco Region", Country: "Peru", Description: "Ancient Incan citadel set high in the Andes Mountains.", PriceLevel: 4, Category: model.CategoryCulture, Rating: 4.9, Latitude: -13.1631, Longitude: -72.545},
	// food
	{Name: "Borough Market", City: "London", Country: "UK", Description: "One of London's oldest food markets with various vendors.", PriceLevel: 2, Category: model.CategoryFood, Rating: 4.6, Latitude: 51.5055, Longitude: -0.0911},
	{Name: "Tsukiji Outer Market", City: "Tokyo", Country: "Japan", Description: "Market area with shops and restaurants specializing in fresh seafood.", PriceLevel: 3, Category: model.CategoryFood, Rating: 4.7, Latitude: 35.6654, Longitude: 139.7707},
	{Name: "Pike Place Market", City: "Seattle", Country: "USA", Description: "Historic farmers market overlooking Elliott Bay.", PriceLevel: 2, Category: model.CategoryFood, Rating: 4.7, Latitude: 47.6097, Longitude: -122.3422},
	{Name: "Mercado de San Miguel", City: "Madrid", Country: "Spain", Description: "Historic covered market with tapas bars and food stalls.", PriceLevel: 3, Category: model.CategoryFood, Rating: 4.5, Latitude: 40.4153, Longitude: -3.7091},
	{Name: "Jemaa el-Fnaa", City: "Marrakech", Country: "Morocco", Description: "Square with food stalls, performers, and market vendors.", PriceLevel: 2, Category: model.CategoryFood, Rating: 4.6, Latitude: 31.6258, Longitude: -7.9891},
	{Name: "La Boqueria Market", City: "Barcelona", Country: "Spain", Description: "Famous public market with fresh food, tapas bars, and restaurants.", PriceLevel: 2, Category: model.CategoryFood, Rating: 4.7, Latitude: 41.3818, Longitude: 2.1724},
}
