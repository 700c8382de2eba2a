package persistence

import (
	"context"
	"fmt"

	"github.com/emporium/backend/internal/domain/cart"
	"github.com/emporium/backend/internal/domain/catalog"
	"github.com/emporium/backend/internal/domain/identity"
	"github.com/emporium/backend/internal/domain/order"
	"github.com/emporium/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type seedProduct struct {
	name        string
	category    string
	price       string
	stock       int
	image       string
	description string
	rating      float64
	reviews     []seedReview
}

type seedReview struct {
	reviewer string
	comment  string
	rating   int
}

var seedCatalog = []seedProduct{
	{
		name: "Colombian Dark Roast Coffee", category: "Pantry", price: "14.50", stock: 40,
		image:       "/images/coffee-dark-roast.jpg",
		description: "Whole beans from the Huila region, roasted in small batches.",
		rating:      4.7,
		reviews: []seedReview{
			{reviewer: "Priya N.", comment: "Rich without being bitter. My daily cup.", rating: 5},
			{reviewer: "Tom W.", comment: "Good, though I prefer a lighter roast.", rating: 4},
		},
	},
	{
		name: "Wildflower Honey Jar", category: "Pantry", price: "8.25", stock: 25,
		image:       "/images/wildflower-honey.jpg",
		description: "Raw, unfiltered honey from a single apiary. 340g jar.",
		rating:      4.9,
		reviews: []seedReview{
			{reviewer: "Dana R.", comment: "Tastes like summer. Crystallizes slowly.", rating: 5},
		},
	},
	{
		name: "Extra Virgin Olive Oil", category: "Pantry", price: "18.00", stock: 18,
		image:       "/images/olive-oil.jpg",
		description: "Cold-pressed, first harvest. 750ml dark glass bottle.",
		rating:      4.6,
	},
	{
		name: "Sourdough Starter Kit", category: "Pantry", price: "12.99", stock: 0,
		image:       "/images/sourdough-kit.jpg",
		description: "Dried starter culture with feeding instructions and a jar.",
		rating:      4.2,
	},
	{
		name: "Cast Iron Skillet 10in", category: "Kitchen", price: "34.95", stock: 12,
		image:       "/images/cast-iron-skillet.jpg",
		description: "Pre-seasoned cast iron, oven safe to 260C.",
		rating:      4.8,
		reviews: []seedReview{
			{reviewer: "Marco S.", comment: "Heavy, heats evenly, will outlive me.", rating: 5},
			{reviewer: "Lena K.", comment: "Handle gets hot fast, use a mitt.", rating: 4},
		},
	},
	{
		name: "Bamboo Cutting Board", category: "Kitchen", price: "19.50", stock: 30,
		image:       "/images/bamboo-board.jpg",
		description: "End-grain bamboo, 40x30cm, with a juice groove.",
		rating:      4.4,
	},
	{
		name: "French Press 1L", category: "Kitchen", price: "27.00", stock: 15,
		image:       "/images/french-press.jpg",
		description: "Borosilicate glass carafe with a stainless steel frame.",
		rating:      4.5,
		reviews: []seedReview{
			{reviewer: "Priya N.", comment: "Pairs well with the dark roast beans.", rating: 5},
		},
	},
	{
		name: "Chef's Knife 8in", category: "Kitchen", price: "62.00", stock: 8,
		image:       "/images/chefs-knife.jpg",
		description: "High-carbon stainless blade, full tang, walnut handle.",
		rating:      4.9,
	},
	{
		name: "Linen Throw Blanket", category: "Home", price: "44.00", stock: 20,
		image:       "/images/linen-throw.jpg",
		description: "Stonewashed linen, 130x170cm, oat colour.",
		rating:      4.3,
	},
	{
		name: "Soy Wax Candle - Cedar", category: "Home", price: "16.50", stock: 35,
		image:       "/images/cedar-candle.jpg",
		description: "Hand-poured soy wax with a wooden wick. 45 hour burn.",
		rating:      4.6,
		reviews: []seedReview{
			{reviewer: "Dana R.", comment: "Subtle scent, crackles nicely.", rating: 5},
		},
	},
	{
		name: "Ceramic Plant Pot Set", category: "Home", price: "29.99", stock: 14,
		image:       "/images/plant-pots.jpg",
		description: "Three matte ceramic pots with drainage, 10/13/16cm.",
		rating:      4.1,
	},
	{
		name: "Merino Wool Socks", category: "Apparel", price: "13.75", stock: 50,
		image:       "/images/merino-socks.jpg",
		description: "Midweight merino blend, one pair, sizes 39-46.",
		rating:      4.7,
	},
	{
		name: "Canvas Tote Bag", category: "Apparel", price: "21.00", stock: 28,
		image:       "/images/canvas-tote.jpg",
		description: "Heavy 12oz canvas with an interior zip pocket.",
		rating:      4.2,
	},
	{
		name: "Waxed Canvas Apron", category: "Apparel", price: "48.00", stock: 9,
		image:       "/images/waxed-apron.jpg",
		description: "Water-resistant waxed canvas with leather straps.",
		rating:      4.8,
		reviews: []seedReview{
			{reviewer: "Marco S.", comment: "Wearing it every weekend in the workshop.", rating: 5},
		},
	},
	{
		name: "Field Notebook 3-Pack", category: "Stationery", price: "11.25", stock: 60,
		image:       "/images/field-notebooks.jpg",
		description: "Pocket-sized dot grid notebooks, 48 pages each.",
		rating:      4.5,
	},
	{
		name: "Brass Fountain Pen", category: "Stationery", price: "38.50", stock: 11,
		image:       "/images/brass-pen.jpg",
		description: "Machined brass body, fine steel nib, converter included.",
		rating:      4.6,
	},
	{
		name: "Desk Organizer Tray", category: "Stationery", price: "24.00", stock: 0,
		image:       "/images/desk-tray.jpg",
		description: "Walnut veneer tray with felt-lined compartments.",
		rating:      3.9,
	},
	{
		name: "Herbal Tea Sampler", category: "Wellness", price: "15.99", stock: 22,
		image:       "/images/tea-sampler.jpg",
		description: "Six loose-leaf blends, 20g each, caffeine free.",
		rating:      4.4,
		reviews: []seedReview{
			{reviewer: "Lena K.", comment: "The chamomile mint is the standout.", rating: 4},
		},
	},
	{
		name: "Lavender Bath Salts", category: "Wellness", price: "9.50", stock: 33,
		image:       "/images/bath-salts.jpg",
		description: "Epsom salt with dried lavender, 500g resealable pouch.",
		rating:      4.3,
	},
}

// Seed populates an empty database with the demo catalog, a demo customer
// and one historical order. It is a no-op when products already exist.
func Seed(ctx context.Context, db *Database, logger *zap.Logger) error {
	products := NewGormProductRepository(db.DB)
	users := NewGormUserRepository(db.DB)
	orders := NewGormOrderRepository(db.DB)

	count, err := products.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check catalog: %w", err)
	}
	if count > 0 {
		logger.Debug("catalog already seeded", zap.Int64("products", count))
		return nil
	}

	seeded := make([]*catalog.Product, 0, len(seedCatalog))
	for _, sp := range seedCatalog {
		product, err := catalog.NewProduct(sp.name, sp.category, decimal.RequireFromString(sp.price), sp.stock, sp.image, sp.description)
		if err != nil {
			return fmt.Errorf("invalid seed product %q: %w", sp.name, err)
		}
		if err := product.SetRating(sp.rating); err != nil {
			return fmt.Errorf("invalid seed rating for %q: %w", sp.name, err)
		}
		for _, rv := range sp.reviews {
			if err := product.AddReview(rv.reviewer, rv.comment, rv.rating); err != nil {
				return fmt.Errorf("invalid seed review for %q: %w", sp.name, err)
			}
		}
		if err := products.Save(ctx, product); err != nil {
			return fmt.Errorf("failed to save seed product %q: %w", sp.name, err)
		}
		seeded = append(seeded, product)
	}

	demo, err := seedDemoUser(ctx, users, seeded)
	if err != nil {
		return err
	}

	if err := seedDemoOrder(ctx, orders, demo, seeded); err != nil {
		return err
	}

	logger.Info("seeded demo data",
		zap.Int("products", len(seeded)),
		zap.String("demo_user", demo.Email),
	)
	return nil
}

func seedDemoUser(ctx context.Context, users identity.UserRepository, products []*catalog.Product) (*identity.User, error) {
	demo, err := identity.NewUser("Alex Harper", "alex@example.com", "password123")
	if err != nil {
		return nil, fmt.Errorf("invalid seed user: %w", err)
	}
	demo.LoyaltyStatus = "Gold Member"

	if _, err := demo.AddAddress("42 Willow Lane", "Portland", "OR", "97204", "USA"); err != nil {
		return nil, err
	}
	if _, err := demo.AddAddress("8 Harbor View, Apt 3B", "Seattle", "WA", "98101", "USA"); err != nil {
		return nil, err
	}

	if err := demo.SetPaymentMethods([]identity.PaymentMethod{
		{Type: identity.PaymentCreditCard, Last4: "4242"},
		{Type: identity.PaymentNetBanking, BankName: "Cascade Credit Union"},
	}); err != nil {
		return nil, err
	}

	// Monthly coffee replenishment for the demo account
	demo.AutoReplenishment = []identity.ReplenishmentRule{
		{
			BaseEntity: shared.NewBaseEntity(),
			UserID:     demo.ID,
			ProductID:  products[0].ID,
			Frequency:  identity.ReplenishMonthly,
			Quantity:   1,
		},
	}

	if err := users.Save(ctx, demo); err != nil {
		return nil, fmt.Errorf("failed to save seed user: %w", err)
	}
	return demo, nil
}

func seedDemoOrder(ctx context.Context, orders order.Repository, demo *identity.User, products []*catalog.Product) error {
	skillet := products[4]
	candle := products[9]

	c := cart.New()
	c.Add(skillet, 1)
	c.Add(candle, 2)

	placed, err := order.New(demo.ID, c.Lines(), demo.Addresses[0], order.DeliverySlot{
		Date:   "2026-08-20",
		Window: order.DeliveryWindows[0],
	}, identity.PaymentCreditCard)
	if err != nil {
		return fmt.Errorf("invalid seed order: %w", err)
	}
	placed.OrderDate = "2026-08-18"

	if err := orders.Save(ctx, placed); err != nil {
		return fmt.Errorf("failed to save seed order: %w", err)
	}
	return nil
}
