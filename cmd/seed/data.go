package main

import "github.com/nkiryanov/masakin/internal/models"

const chefPassword = "password123"

type chef struct {
	Name  string
	Email string
	Bio   string
}

type chefRecipe struct {
	AuthorEmail string
	Params      models.RecipeParams
}

var chefs = []chef{
	{Name: "Chef Lanisa", Email: "lanisa@masakin.com", Bio: "Passionate about creating delicious pasta dishes"},
	{Name: "Chef Jisoo", Email: "jisoo@masakin.com", Bio: "Rice and Asian cuisine specialist"},
	{Name: "Chef Jennie", Email: "jennie@masakin.com", Bio: "Health and wellness food advocate"},
	{Name: "Chef Rose", Email: "rose@masakin.com", Bio: "Curry and spice master"},
	{Name: "Chef Lalisa", Email: "lalisa@masakin.com", Bio: "Italian pizza artisan"},
}

func video(url string) *string { return &url }

var chefRecipes = []chefRecipe{
	{
		AuthorEmail: "lanisa@masakin.com",
		Params: models.RecipeParams{
			Title:       "Creamy Salmon Macaroni with Lemon Sour Crunchy Cheese",
			Description: "Spice is a highlight of this simple soup recipe from a variety of spices and seasonings. Nutmeg provides an earthy sweetness, while ground pepper provides a bit of peppery notes to balance the richness.",
			Category:    "Dinner",
			CookingTime: 45,
			Portion:     4,
			Difficulty:  models.DifficultyMedium,
			Tags:        []string{"pasta", "salmon", "cheese", "lemon"},
			Ingredients: []string{"400g macaroni", "200g smoked salmon", "200ml heavy cream", "100g crunchy cheese", "2 lemons", "Salt & pepper", "Fresh dill"},
			Steps:       []string{"Boil macaroni until al dente", "Prepare cream sauce with lemon zest", "Fold in smoked salmon", "Top with crunchy cheese", "Bake at 180°C for 15 minutes"},
			Images:      []string{"https://images.unsplash.com/photo-1621996346565-e3dbc646d9a9?w=800&q=80"},
			VideoURL:    video("https://youtu.be/OMn5wkE2zJU?si=row0vEfSaBRFRfZb"),
			Status:      models.RecipeStatusPublished,
		},
	},
	{
		AuthorEmail: "jisoo@masakin.com",
		Params: models.RecipeParams{
			Title:       "Rice with Chili Sauce and Chicken",
			Description: "Chili oil and red sauce is a staple of rice as an easy appetizer in a restaurant. A balance of spice with the freshness of green beans make it a great side dish.",
			Category:    "Lunch",
			CookingTime: 35,
			Portion:     2,
			Difficulty:  models.DifficultyEasy,
			Tags:        []string{"rice", "chicken", "spicy", "asian"},
			Ingredients: []string{"300g jasmine rice", "250g chicken breast", "3 tbsp chili sauce", "Green onions", "Soy sauce", "Garlic"},
			Steps:       []string{"Cook rice until fluffy", "Marinate chicken with soy sauce", "Grill chicken until golden", "Prepare chili sauce", "Serve rice topped with chicken and sauce"},
			Images:      []string{"https://images.unsplash.com/photo-1603133872878-684f208fb84b?w=800&q=80"},
			VideoURL:    video("https://youtu.be/ahFCDNEog9o?si=jH6f0lPAlRhcw9tR"),
			Status:      models.RecipeStatusPublished,
		},
	},
	{
		AuthorEmail: "jennie@masakin.com",
		Params: models.RecipeParams{
			Title:       "Healthy Oat with Almond",
			Description: "According to what nutritionists tell us, oatmeal contains a high amount of fiber and nutrients that is good for a healthy lifestyle. Perfect breakfast recipe.",
			Category:    "Breakfast",
			CookingTime: 15,
			Portion:     1,
			Difficulty:  models.DifficultyEasy,
			Tags:        []string{"breakfast", "healthy", "oat", "almond"},
			Ingredients: []string{"100g rolled oats", "50g sliced almonds", "Fresh blueberries", "Honey", "Almond milk", "Cinnamon"},
			Steps:       []string{"Warm almond milk", "Add oats and cook for 5 minutes", "Top with almonds and berries", "Drizzle with honey", "Sprinkle cinnamon"},
			Images:      []string{"https://images.unsplash.com/photo-1517673400267-0251440c45dc?w=800&q=80"},
			VideoURL:    video("https://youtu.be/VZOHHCosuzY?si=A0wxQ5TwaSH4rCcf"),
			Status:      models.RecipeStatusPublished,
		},
	},
	{
		AuthorEmail: "rose@masakin.com",
		Params: models.RecipeParams{
			Title:       "Spicy Curry with Chili Powder",
			Description: "Spice is a highlight of this simple curry recipe. The combination of vegetables such as meat, chicken and vegetables makes this dish incredibly flavorful.",
			Category:    "Dinner",
			CookingTime: 25,
			Portion:     4,
			Difficulty:  models.DifficultyMedium,
			Tags:        []string{"curry", "spicy", "indian", "chicken"},
			Ingredients: []string{"500g chicken thighs", "2 tbsp curry powder", "1 can coconut milk", "Chili flakes", "Onion", "Garlic", "Ginger"},
			Steps:       []string{"Sauté onion, garlic and ginger", "Add curry powder and chili", "Add chicken pieces", "Pour coconut milk", "Simmer for 20 minutes"},
			Images:      []string{"https://images.unsplash.com/photo-1565557623262-b51c2513a641?w=800&q=80"},
			VideoURL:    video("https://youtu.be/mzZKAa4GUcc?si=EIgkQiiiY_3iHKTI"),
			Status:      models.RecipeStatusPublished,
		},
	},
	{
		AuthorEmail: "lalisa@masakin.com",
		Params: models.RecipeParams{
			Title:       "Mushroom Pizza and Onion with Vegetables Topping",
			Description: "Treat yourself with a satisfying combination of mushrooms and family-style pizza crust. The parchment of golden-brown crust is a signature of satisfying texture and flavor.",
			Category:    "Lunch",
			CookingTime: 30,
			Portion:     6,
			Difficulty:  models.DifficultyMedium,
			Tags:        []string{"pizza", "italian", "mushroom", "vegetarian"},
			Ingredients: []string{"Pizza dough", "200g mushrooms", "1 onion", "Mozzarella", "Tomato sauce", "Olive oil", "Fresh basil"},
			Steps:       []string{"Roll out dough", "Spread tomato sauce", "Add sliced mushrooms and onions", "Top with mozzarella", "Bake at 220°C for 12 minutes"},
			Images:      []string{"https://images.unsplash.com/photo-1574071318508-1cdbab80d002?w=800&q=80"},
			VideoURL:    video("https://youtu.be/dvd1-b21MxY?si=S8MrVqPZ_NosQJJ2"),
			Status:      models.RecipeStatusPublished,
		},
	},
	{
		AuthorEmail: "rose@masakin.com",
		Params: models.RecipeParams{
			Title:       "Cow Steak with Vegetables and Sauce",
			Description: "Perfectly seared steak with a creamy garlic sauce. This high-protein dish is perfect for meat lovers and pairs well with seasonal vegetables.",
			Category:    "Dinner",
			CookingTime: 40,
			Portion:     2,
			Difficulty:  models.DifficultyHard,
			Tags:        []string{"steak", "beef", "meat", "premium"},
			Ingredients: []string{"300g beef steak", "Mixed vegetables", "Garlic butter", "Green herb sauce", "Salt & pepper", "Olive oil"},
			Steps:       []string{"Season steak with salt and pepper", "Sear on high heat 3 min each side", "Rest for 5 minutes", "Grill vegetables", "Serve with green sauce"},
			Images:      []string{"https://images.unsplash.com/photo-1600891964092-4316c288032e?w=800&q=80"},
			VideoURL:    video("https://youtu.be/SGqal-DGPNo?si=lc5w8aUvem8iQQRl"),
			Status:      models.RecipeStatusPublished,
		},
	},
	{
		AuthorEmail: "jisoo@masakin.com",
		Params: models.RecipeParams{
			Title:       "Fish Meat and Vegetables with Potato",
			Description: "Salmon and vegetables that perfectly balance a gourmet protein dish. It pairs well with potatoes, making it both comforting and wholesome.",
			Category:    "Dinner",
			CookingTime: 35,
			Portion:     3,
			Difficulty:  models.DifficultyMedium,
			Tags:        []string{"fish", "seafood", "healthy", "potato"},
			Ingredients: []string{"400g white fish fillet", "Baby potatoes", "Cherry tomatoes", "Fresh rosemary", "Lemon", "Olive oil"},
			Steps:       []string{"Season fish with herbs", "Roast potatoes at 200°C", "Pan-sear fish 4 min each side", "Roast tomatoes", "Plate and garnish with rosemary"},
			Images:      []string{"https://images.unsplash.com/photo-1560070094-e1f2ddec4337?w=800&q=80"},
			VideoURL:    video("https://youtu.be/DXqO6qUh5FA?si=qjO4pZyYq6Kz2opM"),
			Status:      models.RecipeStatusPublished,
		},
	},
	{
		AuthorEmail: "lanisa@masakin.com",
		Params: models.RecipeParams{
			Title:       "Tropical Fruit Salad",
			Description: "A refreshing mix of seasonal tropical fruits, perfect for a light dessert or healthy snack. Drizzled with a lime-honey dressing.",
			Category:    "Dessert",
			CookingTime: 10,
			Portion:     4,
			Difficulty:  models.DifficultyEasy,
			Tags:        []string{"fruit", "salad", "dessert", "healthy"},
			Ingredients: []string{"1 mango, cubed", "1 cup pineapple chunks", "2 kiwis, sliced", "1 cup strawberries", "Mint leaves", "Honey", "Lime juice"},
			Steps:       []string{"Prepare all fruits by peeling and chopping", "Mix honey and lime juice for dressing", "Combine fruits in a large bowl", "Drizzle dressing over fruit", "Garnish with fresh mint leaves"},
			Images:      []string{"https://images.unsplash.com/photo-1567620905732-2d1ec7ab7445?w=800&q=80"},
			VideoURL:    video("https://youtu.be/OX1Bxv5Hw3U?si=qjkgcjkmHCexc__6"),
			Status:      models.RecipeStatusPublished,
		},
	},
}
