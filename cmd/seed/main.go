// Seeder: wipes the catalog and loads demo products plus the default admin
// user. Run it against an empty or disposable database.
package main

import (
	"os"

	"go-shop-api/internal/model"
	"go-shop-api/internal/repository"
	"go-shop-api/pkg/database"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

var demoProducts = []struct {
	Title       string
	Description string
	Price       float64
	Stock       int
	Images      []string
}{
	{
		Title:       "Men's Chill Crew Neck Sweatshirt",
		Description: "Introducing the softest crew neck in the collection.",
		Price:       75,
		Stock:       7,
		Images:      []string{"1740176-00-A_0_2000.jpg", "1740176-00-A_1.jpg"},
	},
	{
		Title:       "Men's Quilted Shirt Jacket",
		Description: "A versatile layer for daily wear.",
		Price:       200,
		Stock:       5,
		Images:      []string{"1740507-00-A_0_2000.jpg", "1740507-00-A_1.jpg"},
	},
	{
		Title:       "Women's Cropped Puffer Jacket",
		Description: "Cropped puffer with a cinched waist.",
		Price:       225,
		Stock:       85,
		Images:      []string{"1740535-00-A_0_2000.jpg", "1740535-00-A_1.jpg"},
	},
	{
		Title:       "Kids Cyberquad Bomber Jacket",
		Description: "Bomber jacket with custom graphics.",
		Price:       65,
		Stock:       10,
		Images:      []string{"1742702-00-A_0_2000.jpg", "1742702-00-A_1.jpg"},
	},
}

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	if err := db.AutoMigrate(&model.User{}, &model.Product{}, &model.ProductImage{}); err != nil {
		log.Fatal().Err(err).Msg("auto migration failed")
	}

	productRepo := repository.NewProductRepo(db)
	userRepo := repository.NewUserRepo(db)

	// 3. Wipe the catalog
	if err := productRepo.DeleteAll(); err != nil {
		log.Fatal().Err(err).Msg("failed to wipe products")
	}
	log.Info().Msg("catalog wiped")

	// 4. Load demo products
	for _, demo := range demoProducts {
		images := make([]model.ProductImage, len(demo.Images))
		for i, url := range demo.Images {
			images[i] = model.ProductImage{URL: url}
		}
		product := &model.Product{
			Title:       demo.Title,
			Slug:        model.Slugify(demo.Title),
			Description: demo.Description,
			Price:       demo.Price,
			Stock:       demo.Stock,
			Images:      images,
		}
		if err := productRepo.Create(product); err != nil {
			log.Fatal().Err(err).Str("title", demo.Title).Msg("failed to seed product")
		}
	}
	log.Info().Int("count", len(demoProducts)).Msg("demo products loaded")

	// 5. Ensure admin user
	email := "admin@example.com"
	if _, err := userRepo.FindByEmail(email); err != nil {
		admin := &model.User{
			Email:    email,
			FullName: "Shop Administrator",
			IsActive: true,
			Roles:    []string{model.RoleAdmin, model.RoleUser},
		}
		if err := admin.SetPassword("Admin123"); err != nil {
			log.Fatal().Err(err).Msg("failed to hash admin password")
		}
		if err := userRepo.Create(admin); err != nil {
			log.Fatal().Err(err).Msg("failed to create admin user")
		}
		log.Info().Str("email", email).Msg("admin user created")
	}

	log.Info().Msg("seed complete")
}
