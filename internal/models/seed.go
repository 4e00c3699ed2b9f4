package models

import (
	"time"

	"github.com/everafter-planner/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Seed fills an empty database with the demo planning data. Databases that
// already have a budget configuration are left alone.
func Seed(db *gorm.DB) error {
	var count int64
	err := db.Model(&BudgetConfig{}).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Create(&BudgetConfig{Total: decimal.NewFromInt(25000)}).Error
		if err != nil {
			return err
		}

		categories := []Category{
			{Name: "Venue", Allocation: decimal.NewFromInt(10000), Percentage: 40},
			{Name: "Catering", Allocation: decimal.NewFromInt(5000), Percentage: 20},
			{Name: "Photography", Allocation: decimal.NewFromInt(3000), Percentage: 12},
			{Name: "Flowers", Allocation: decimal.NewFromInt(2000), Percentage: 8},
			{Name: "Music", Allocation: decimal.NewFromInt(1500), Percentage: 6},
			{Name: "Attire", Allocation: decimal.NewFromInt(2000), Percentage: 8},
			{Name: "Cake", Allocation: decimal.NewFromInt(500), Percentage: 2},
			{Name: "Invitations", Allocation: decimal.NewFromInt(500), Percentage: 2},
			{Name: "Decorations", Allocation: decimal.NewFromInt(500), Percentage: 2},
		}

		byName := make(map[string]Category, len(categories))
		for i := range categories {
			err = tx.Create(&categories[i]).Error
			if err != nil {
				return err
			}
			byName[categories[i].Name] = categories[i]
		}

		expenses := []struct {
			category    string
			vendor      string
			description string
			amount      int64
			date        types.Date
		}{
			{"Venue", "Grand Venue", "Venue deposit", 5000, types.NewDate(2023, 5, 15)},
			{"Catering", "Sunset Catering", "Catering deposit", 2500, types.NewDate(2023, 5, 20)},
			{"Photography", "Dreamy Photography", "Photography package", 1500, types.NewDate(2023, 6, 1)},
			{"Flowers", "Elegant Flowers", "Floral arrangements", 1000, types.NewDate(2023, 6, 10)},
			{"Music", "Melody Makers", "DJ services", 750, types.NewDate(2023, 6, 15)},
			{"Attire", "Bridal Boutique", "Wedding dress", 1000, types.NewDate(2023, 7, 1)},
			{"Cake", "Sweet Delights Bakery", "Wedding cake", 250, types.NewDate(2023, 7, 10)},
			{"Invitations", "Paper Co.", "Wedding invitations", 250, types.NewDate(2023, 7, 15)},
			{"Decorations", "Decor Plus", "Table centerpieces", 200, types.NewDate(2023, 7, 20)},
		}

		for _, e := range expenses {
			err = tx.Create(&Expense{
				CategoryID:  byName[e.category].ID,
				Vendor:      e.vendor,
				Description: e.description,
				Amount:      decimal.NewFromInt(e.amount),
				Date:        e.date,
			}).Error
			if err != nil {
				return err
			}
		}

		datePtr := func(d types.Date) *types.Date { return &d }

		payments := []Payment{
			{Vendor: "Grand Venue", Description: "Venue deposit", Amount: decimal.NewFromInt(5000), DueDate: types.NewDate(2023, 5, 15), Status: PaymentStatusPaid, PaymentDate: datePtr(types.NewDate(2023, 5, 10)), PaymentMethod: "Credit Card"},
			{Vendor: "Grand Venue", Description: "Venue final payment", Amount: decimal.NewFromInt(5000), DueDate: types.NewDate(2023, 12, 15), Status: PaymentStatusPending},
			{Vendor: "Sunset Catering", Description: "Catering deposit", Amount: decimal.NewFromInt(2500), DueDate: types.NewDate(2023, 5, 20), Status: PaymentStatusPaid, PaymentDate: datePtr(types.NewDate(2023, 5, 18)), PaymentMethod: "Bank Transfer"},
			{Vendor: "Sunset Catering", Description: "Catering final payment", Amount: decimal.NewFromInt(2500), DueDate: types.NewDate(2023, 12, 1), Status: PaymentStatusPending},
			{Vendor: "Dreamy Photography", Description: "Photography package", Amount: decimal.NewFromInt(3000), DueDate: types.NewDate(2023, 6, 1), Status: PaymentStatusPaid, PaymentDate: datePtr(types.NewDate(2023, 5, 30)), PaymentMethod: "Credit Card"},
			{Vendor: "Elegant Flowers", Description: "Floral arrangements deposit", Amount: decimal.NewFromInt(1000), DueDate: types.NewDate(2023, 6, 10), Status: PaymentStatusPaid, PaymentDate: datePtr(types.NewDate(2023, 6, 8)), PaymentMethod: "Credit Card"},
			{Vendor: "Elegant Flowers", Description: "Floral arrangements final payment", Amount: decimal.NewFromInt(1000), DueDate: types.NewDate(2023, 11, 10), Status: PaymentStatusPending},
			{Vendor: "Melody Makers", Description: "DJ services", Amount: decimal.NewFromInt(1500), DueDate: types.NewDate(2023, 7, 15), Status: PaymentStatusPending},
		}

		for i := range payments {
			err = tx.Create(&payments[i]).Error
			if err != nil {
				return err
			}
		}

		contracts := []Contract{
			{Vendor: "Grand Venue", Type: "Venue", SignedDate: types.NewDate(2023, 5, 15), ExpirationDate: types.NewDate(2024, 6, 30), FileName: "grand_venue_contract.pdf"},
			{Vendor: "Sunset Catering", Type: "Catering", SignedDate: types.NewDate(2023, 5, 20), ExpirationDate: types.NewDate(2024, 6, 15), FileName: "sunset_catering_contract.pdf"},
			{Vendor: "Dreamy Photography", Type: "Photography", SignedDate: types.NewDate(2023, 6, 1), ExpirationDate: types.NewDate(2024, 6, 20), FileName: "dreamy_photography_contract.pdf"},
			{Vendor: "Elegant Flowers", Type: "Florist", SignedDate: types.NewDate(2023, 6, 10), ExpirationDate: types.NewDate(2024, 6, 10), FileName: "elegant_flowers_contract.pdf"},
			{Vendor: "Melody Makers", Type: "Music", SignedDate: types.NewDate(2023, 6, 15), ExpirationDate: types.NewDate(2024, 6, 25), FileName: "melody_makers_contract.pdf"},
		}

		for i := range contracts {
			err = tx.Create(&contracts[i]).Error
			if err != nil {
				return err
			}
		}

		appointments := []Appointment{
			{Vendor: "Grand Venue", Type: "Venue Visit", Date: types.NewDate(2023, 6, 15), Time: "10:00 AM", Notes: "Final walkthrough of the venue"},
			{Vendor: "Sunset Catering", Type: "Food Tasting", Date: types.NewDate(2023, 7, 10), Time: "2:00 PM", Notes: "Tasting for main course options"},
			{Vendor: "Sweet Delights Bakery", Type: "Cake Tasting", Date: types.NewDate(2023, 7, 15), Time: "11:00 AM", Notes: "Tasting for wedding cake flavors"},
			{Vendor: "Elegant Flowers", Type: "Floral Consultation", Date: types.NewDate(2023, 7, 20), Time: "3:00 PM", Notes: "Discuss centerpiece and bouquet options"},
		}

		for i := range appointments {
			err = tx.Create(&appointments[i]).Error
			if err != nil {
				return err
			}
		}

		vendors := []Vendor{
			{Name: "Elegant Flowers", Category: "Florist", Rating: 5, Image: "/placeholder.svg?height=200&width=200", Description: "Specializing in elegant floral arrangements for weddings.", Favorite: true, Notes: "Met with them on March 15. They have great options for centerpieces."},
			{Name: "Dreamy Photography", Category: "Photographer", Rating: 4, Image: "/placeholder.svg?height=200&width=200", Description: "Capturing your special moments with artistic flair.", Notes: "Portfolio looks amazing. Need to discuss package options."},
			{Name: "Grand Venue", Category: "Venue", Rating: 4, Image: "/placeholder.svg?height=200&width=200", Description: "Luxurious wedding venue with stunning views.", Favorite: true, Notes: "Visited on April 2. Beautiful location but check availability for June."},
			{Name: "Sunset Catering", Category: "Catering", Rating: 3, Image: "/placeholder.svg?height=200&width=200", Description: "Delicious food options for your wedding reception.", Notes: "Food tasting scheduled for next month. Ask about dietary restrictions."},
			{Name: "Melody Makers", Category: "Music", Rating: 5, Image: "/placeholder.svg?height=200&width=200", Description: "Live band and DJ services for wedding entertainment.", Notes: "Heard them play at Sarah's wedding. Great playlist options."},
			{Name: "Sweet Delights Bakery", Category: "Cake", Rating: 4, Image: "/placeholder.svg?height=200&width=200", Description: "Custom wedding cakes and dessert tables.", Favorite: true, Notes: "Cake tasting was amazing. Considering the 3-tier option with fondant."},
		}

		vendorByName := make(map[string]Vendor, len(vendors))
		for i := range vendors {
			err = tx.Create(&vendors[i]).Error
			if err != nil {
				return err
			}
			vendorByName[vendors[i].Name] = vendors[i]
		}

		ts := func(value string) time.Time {
			t, _ := time.Parse("2006-01-02T15:04:05", value)
			return t
		}

		messages := []struct {
			vendor    string
			sender    MessageSender
			text      string
			timestamp string
		}{
			{"Elegant Flowers", MessageSenderVendor, "Hello! Thank you for your interest in our floral services. How can we help with your wedding?", "2023-05-15T10:30:00"},
			{"Elegant Flowers", MessageSenderUser, "Hi! I'm interested in discussing centerpiece options for my wedding in June.", "2023-05-15T10:35:00"},
			{"Elegant Flowers", MessageSenderVendor, "Great! We have several beautiful options for June weddings. Would you prefer seasonal flowers or a specific color scheme?", "2023-05-15T10:40:00"},
			{"Elegant Flowers", MessageSenderUser, "I'm thinking of a blush and ivory color scheme. Do you have any examples you could share?", "2023-05-15T10:45:00"},
			{"Elegant Flowers", MessageSenderVendor, "Blush and ivory is a beautiful combination. I'll send over some examples of centerpieces we've done in those colors. Would you also like to see some bouquet options?", "2023-05-15T10:50:00"},
			{"Grand Venue", MessageSenderVendor, "Thank you for your interest in Grand Venue! We'd be honored to host your special day.", "2023-05-10T14:00:00"},
			{"Grand Venue", MessageSenderUser, "Thanks for getting back to me. I'm wondering if you have availability on June 15th next year?", "2023-05-10T14:10:00"},
			{"Grand Venue", MessageSenderVendor, "Let me check our calendar. Yes, we do have that date available! Would you like to schedule a tour of the venue?", "2023-05-10T14:15:00"},
			{"Grand Venue", MessageSenderUser, "That would be great. What times do you have available for tours next week?", "2023-05-10T14:20:00"},
			{"Sunset Catering", MessageSenderUser, "Hello, I'm interested in your catering services for my wedding next June.", "2023-05-20T09:00:00"},
			{"Sunset Catering", MessageSenderVendor, "Hi there! We'd love to cater your wedding. Our team specializes in creating memorable dining experiences. Do you have a specific cuisine in mind?", "2023-05-20T09:15:00"},
			{"Sunset Catering", MessageSenderUser, "We're thinking of a Mediterranean-inspired menu. Do you offer that?", "2023-05-20T09:20:00"},
		}

		for _, m := range messages {
			err = tx.Create(&Message{
				VendorID:  vendorByName[m.vendor].ID,
				Sender:    m.sender,
				Text:      m.text,
				Timestamp: ts(m.timestamp),
			}).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}
