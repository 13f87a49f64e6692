package repository

import "farmdirect/marketplace/internal/model"

// SeedUsers returns the demo user directory. Any password signs these
// accounts in; only email and role are matched.
func SeedUsers() []model.User {
	return []model.User{
		{
			ID:       "1",
			Name:     "John Smith",
			Email:    "john@example.com",
			Role:     model.RoleFarmer,
			Location: "California, USA",
			Phone:    "+1 (555) 123-4567",
			JoinDate: "2023-03-15",
			Avatar:   "https://images.pexels.com/photos/2379004/pexels-photo-2379004.jpeg?auto=compress&cs=srgb&dpr=1&w=200",
		},
		{
			ID:       "2",
			Name:     "Sarah Johnson",
			Email:    "sarah@example.com",
			Role:     model.RoleBuyer,
			Location: "New York, USA",
			Phone:    "+1 (555) 987-6543",
			JoinDate: "2023-05-22",
			Avatar:   "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=srgb&dpr=1&w=200",
		},
	}
}

// SeedProducts returns the demo catalog.
func SeedProducts() []model.Product {
	return []model.Product{
		{
			ID:          "1",
			Name:        "Organic Heirloom Tomatoes",
			Description: "Fresh, vine-ripened heirloom tomatoes grown with organic practices. Perfect for salads, cooking, or fresh eating.",
			Price:       6.99,
			Unit:        "lb",
			Category:    "Vegetables",
			FarmerID:    "1",
			FarmerName:  "Green Valley Farm",
			Images: []string{
				"https://images.pexels.com/photos/533280/pexels-photo-533280.jpeg?auto=compress&cs=srgb&dpr=1&w=500",
				"https://images.pexels.com/photos/1327838/pexels-photo-1327838.jpeg?auto=compress&cs=srgb&dpr=1&w=500",
			},
			InStock:     true,
			Quantity:    150,
			HarvestDate: "2024-01-15",
			Location:    "California, USA",
			Organic:     true,
			Rating:      4.8,
			ReviewCount: 32,
		},
		{
			ID:          "2",
			Name:        "Fresh Spinach Leaves",
			Description: "Crisp, nutritious spinach leaves perfect for salads, smoothies, or cooking. Harvested this morning.",
			Price:       4.50,
			Unit:        "bunch",
			Category:    "Leafy Greens",
			FarmerID:    "1",
			FarmerName:  "Green Valley Farm",
			Images: []string{
				"https://images.pexels.com/photos/2255935/pexels-photo-2255935.jpeg?auto=compress&cs=srgb&dpr=1&w=500",
			},
			InStock:     true,
			Quantity:    80,
			HarvestDate: "2024-01-20",
			Location:    "California, USA",
			Organic:     true,
			Rating:      4.6,
			ReviewCount: 18,
		},
		{
			ID:          "3",
			Name:        "Sweet Corn",
			Description: "Sweet, tender corn on the cob. Perfect for grilling or boiling. Non-GMO and pesticide-free.",
			Price:       0.75,
			Unit:        "ear",
			Category:    "Vegetables",
			FarmerID:    "1",
			FarmerName:  "Sunny Acres Farm",
			Images: []string{
				"https://images.pexels.com/photos/1266002/pexels-photo-1266002.jpeg?auto=compress&cs=srgb&dpr=1&w=500",
			},
			InStock:     true,
			Quantity:    200,
			HarvestDate: "2024-01-18",
			Location:    "Iowa, USA",
			Organic:     false,
			Rating:      4.9,
			ReviewCount: 45,
		},
		{
			ID:          "4",
			Name:        "Farm Fresh Eggs",
			Description: "Free-range chicken eggs from happy hens. Rich, golden yolks and superior taste.",
			Price:       5.99,
			Unit:        "dozen",
			Category:    "Dairy & Eggs",
			FarmerID:    "1",
			FarmerName:  "Happy Hen Farm",
			Images: []string{
				"https://images.pexels.com/photos/162712/egg-white-food-protein-162712.jpeg?auto=compress&cs=srgb&dpr=1&w=500",
			},
			InStock:     true,
			Quantity:    120,
			HarvestDate: "2024-01-21",
			Location:    "Vermont, USA",
			Organic:     true,
			Rating:      4.7,
			ReviewCount: 28,
		},
	}
}

// SeedOrders returns the demo order history. Items reference the seeded
// catalog by value, same as an order would snapshot products at checkout.
func SeedOrders() []model.Order {
	products := SeedProducts()

	return []model.Order{
		{
			ID:              "3",
			BuyerID:         "2",
			FarmerID:        "1",
			Items:           []model.CartItem{{Product: products[2], Quantity: 6}},
			Total:           4.50,
			Status:          model.OrderPending,
			OrderDate:       "2024-01-23",
			ShippingAddress: "123 Main St, New York, NY 10001",
		},
		{
			ID:              "2",
			BuyerID:         "2",
			FarmerID:        "1",
			Items:           []model.CartItem{{Product: products[1], Quantity: 3}},
			Total:           13.50,
			Status:          model.OrderShipped,
			OrderDate:       "2024-01-22",
			ShippingAddress: "123 Main St, New York, NY 10001",
		},
		{
			ID:              "1",
			BuyerID:         "2",
			FarmerID:        "1",
			Items:           []model.CartItem{{Product: products[0], Quantity: 2}},
			Total:           13.98,
			Status:          model.OrderDelivered,
			OrderDate:       "2024-01-20",
			DeliveryDate:    "2024-01-22",
			ShippingAddress: "123 Main St, New York, NY 10001",
		},
	}
}
