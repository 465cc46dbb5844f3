package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/agrofix/storefront-api/config"
	"github.com/agrofix/storefront-api/pkg/helpers"
)

type demoProduct struct {
	name     string
	price    float64
	imageURL string
}

var demoProducts = []demoProduct{
	{"Tomato", 25, "https://res.cloudinary.com/di9qg5ka6/image/upload/v1744986180/tomatoes-canva_ljqvzv.jpg"},
	{"Potato", 20, "https://res.cloudinary.com/di9qg5ka6/image/upload/v1744986269/iiygg5i1zwp6mfimdvdc.jpg"},
	{"Onion", 30, "https://res.cloudinary.com/di9qg5ka6/image/upload/v1744986294/d3ni2knizsuzso04ilox.jpg"},
	{"Carrot", 35, "https://res.cloudinary.com/di9qg5ka6/image/upload/v1744986319/mz2upk8znsiwjum9fp5r.jpg"},
	{"Capsicum", 40, "https://res.cloudinary.com/di9qg5ka6/image/upload/v1744986348/dx4qwkgsfyroaaes0k7a.jpg"},
	{"Cabbage", 28, "https://res.cloudinary.com/di9qg5ka6/image/upload/v1744986371/fwtlthg9aynepm6xmwz4.jpg"},
	{"Broccoli", 50, "https://res.cloudinary.com/di9qg5ka6/image/upload/v1744986394/ac44psjg0yhdtzqbavad.jpg"},
	{"Spinach", 15, "https://res.cloudinary.com/di9qg5ka6/image/upload/v1744986401/olorj4bnd6uabdj0c2uv.jpg"},
	{"Apple", 100, "https://res.cloudinary.com/di9qg5ka6/image/upload/v1744986438/cu6yo2hpe82sk1ng041x.jpg"},
	{"Banana", 60, "https://res.cloudinary.com/di9qg5ka6/image/upload/v1744986447/quusjerp9p8k5stjykb3.jpg"},
}

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "admin@agrofix.com"
	password := "admin123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO admins (email, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET updated_at = now()
		RETURNING id
	`, email, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%s email=%s password=%s\n", id, email, password)

	var productCount int64
	if err := db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&productCount); err != nil {
		log.Fatalf("failed to count products: %v", err)
	}
	if productCount > 0 {
		fmt.Printf("catalog already has %d products, skipping demo data\n", productCount)
		return
	}

	for _, p := range demoProducts {
		if _, err := db.Exec(`
			INSERT INTO products (name, price, image_url)
			VALUES ($1, $2, $3)
		`, p.name, p.price, p.imageURL); err != nil {
			log.Fatalf("failed to seed product %q: %v", p.name, err)
		}
	}
	fmt.Printf("seeded %d demo products\n", len(demoProducts))
}
