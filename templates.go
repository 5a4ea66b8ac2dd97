package savings

import "github.com/shopspring/decimal"

// A Template is a ready-made goal preset: pick one, get a sensible name,
// target and currency without typing them out.
type Template struct {
	ID          string
	Name        string
	Description string
	Target      decimal.Decimal
	Currency    Currency
	Category    string
	Tip         string
}

// AllTemplates returns the built-in goal presets in display order.
func AllTemplates() []Template {
	return []Template{
		{
			ID:          "emergency_fund",
			Name:        "Emergency Fund",
			Description: "6 months of expenses for financial security",
			Target:      decimal.NewFromInt(600000),
			Currency:    INR,
			Category:    "security",
			Tip:         "Start with ₹10,000/month. Keep it in a liquid fund for easy access.",
		},
		{
			ID:          "japan_trip",
			Name:        "Trip to Japan",
			Description: "Dream vacation to the Land of the Rising Sun",
			Target:      decimal.NewFromInt(3000),
			Currency:    USD,
			Category:    "travel",
			Tip:         "Best time to visit: Spring (March-May) or Fall (September-November).",
		},
		{
			ID:          "home_down_payment",
			Name:        "Home Down Payment",
			Description: "20% down payment for your dream home",
			Target:      decimal.NewFromInt(2000000),
			Currency:    INR,
			Category:    "property",
			Tip:         "Consider PPF and ELSS for tax benefits while saving.",
		},
		{
			ID:          "car_purchase",
			Name:        "New Car",
			Description: "Upgrade to your dream vehicle",
			Target:      decimal.NewFromInt(800000),
			Currency:    INR,
			Category:    "lifestyle",
			Tip:         "Factor in insurance, registration, and maintenance costs.",
		},
		{
			ID:          "wedding_fund",
			Name:        "Wedding Fund",
			Description: "Perfect celebration for your special day",
			Target:      decimal.NewFromInt(1500000),
			Currency:    INR,
			Category:    "lifestyle",
			Tip:         "Start 2-3 years early. Consider fixed deposits for guaranteed returns.",
		},
		{
			ID:          "education_fund",
			Name:        "Education Fund",
			Description: "Invest in knowledge and skills",
			Target:      decimal.NewFromInt(25000),
			Currency:    USD,
			Category:    "education",
			Tip:         "Research scholarships and education loans as well.",
		},
		{
			ID:          "business_startup",
			Name:        "Business Startup",
			Description: "Launch your entrepreneurial dreams",
			Target:      decimal.NewFromInt(1000000),
			Currency:    INR,
			Category:    "business",
			Tip:         "Create a detailed business plan first. Consider angel investors too.",
		},
		{
			ID:          "gadget_fund",
			Name:        "Latest iPhone",
			Description: "Stay updated with the latest technology",
			Target:      decimal.NewFromInt(1200),
			Currency:    USD,
			Category:    "technology",
			Tip:         "Wait for festival sales or consider exchange offers.",
		},
		{
			ID:          "europe_trip",
			Name:        "Europe Backpacking",
			Description: "Explore the historic cities of Europe",
			Target:      decimal.NewFromInt(4500),
			Currency:    USD,
			Category:    "travel",
			Tip:         "Book flights 3-4 months early. Consider Eurail passes.",
		},
		{
			ID:          "retirement_fund",
			Name:        "Retirement Corpus",
			Description: "Secure your golden years",
			Target:      decimal.NewFromInt(10000000),
			Currency:    INR,
			Category:    "retirement",
			Tip:         "Start early with SIP in mutual funds. Power of compounding!",
		},
	}
}

// TemplateByID looks a preset up by its identifier.
func TemplateByID(id string) (Template, error) {
	for _, t := range AllTemplates() {
		if t.ID == id {
			return t, nil
		}
	}
	return Template{}, validationErrorf("unknown template %q", id)
}
