package models

// MenuItem is one entry of the fixed catalog. Prices are integer yen.
type MenuItem struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
	Desc  string `json:"desc"`
	Image string `json:"image"`
}

// Menu is the whole catalog. There is no restaurant management in this demo;
// the four biryanis are the product.
var Menu = []MenuItem{
	{
		ID:    1,
		Name:  "Hyderabadi Chicken Dum",
		Price: 1600,
		Desc:  "Slow-cooked with saffron.",
		Image: "https://images.unsplash.com/photo-1563379091339-03b21ab4a4f8?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
	},
	{
		ID:    2,
		Name:  "Kolkata Mutton Biryani",
		Price: 1850,
		Desc:  "Classic recipe with potato.",
		Image: "https://images.unsplash.com/photo-1633945274405-b6c8069047b0?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
	},
	{
		ID:    3,
		Name:  "Vegetable Paneer Special",
		Price: 1350,
		Desc:  "Loaded with fresh veggies.",
		Image: "https://images.unsplash.com/photo-1642821373181-696a5462e445?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
	},
	{
		ID:    4,
		Name:  "Egg Biryani",
		Price: 1200,
		Desc:  "Spicy masala rice with eggs.",
		Image: "https://images.unsplash.com/photo-1589302168068-964664d93dc0?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
	},
}
