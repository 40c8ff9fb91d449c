package main

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"sportfy/internal/config"
	"sportfy/internal/database"
	"sportfy/internal/domain"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	// Cleanup old data (bookings first, they reference users and courts)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM courts")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Name:         "Admin",
		Email:        "admin@sportfy.id",
		Phone:        "+62811111111",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@sportfy.id / admin123")

	users := []domain.User{}
	emails := []string{"andi@gmail.com", "budi@gmail.com", "citra@gmail.com"}
	for i, email := range emails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("user123"), bcrypt.DefaultCost)
		u := domain.User{
			Name:         fmt.Sprintf("Player %d", i+1),
			Email:        email,
			Phone:        fmt.Sprintf("+62812345%04d", i+1),
			PasswordHash: string(hash),
			Role:         domain.RoleUser,
		}
		db.Create(&u)
		users = append(users, u)
	}

	// ================== COURTS ==================
	log.Println("Creating courts...")

	courtSeeds := []domain.Court{
		{
			Name:         "Lapangan Futsal A",
			Location:     "Jl. Sudirman No. 10, Jakarta",
			SportType:    "futsal",
			PricePerHour: 150000,
			Description:  "Indoor futsal court with vinyl flooring",
			Facilities:   "Locker, Shower, Parking",
			IsActive:     true,
		},
		{
			Name:         "Badminton Hall 1",
			Location:     "Jl. Gatot Subroto No. 5, Jakarta",
			SportType:    "badminton",
			PricePerHour: 50000,
			Description:  "BWF standard mat, 4 courts",
			Facilities:   "Locker, Canteen",
			IsActive:     true,
		},
		{
			Name:         "Basket Arena",
			Location:     "Jl. Thamrin No. 21, Jakarta",
			SportType:    "basketball",
			PricePerHour: 200000,
			Description:  "Full court, outdoor",
			Facilities:   "Parking",
			IsActive:     true,
		},
	}
	for i := range courtSeeds {
		db.Create(&courtSeeds[i])
	}

	// ================== BOOKINGS ==================
	log.Println("Creating sample bookings...")

	tomorrow := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	bookings := []domain.Booking{
		{
			CourtID:       courtSeeds[0].ID,
			UserID:        users[0].ID,
			StartTime:     tomorrow,
			EndTime:       tomorrow.Add(2 * time.Hour),
			TotalPrice:    300000,
			Status:        domain.BookingPaid,
			PaymentStatus: domain.PaymentPaid,
			TeamName:      "Garuda FC",
			FindOpponent:  true,
		},
		{
			CourtID:       courtSeeds[1].ID,
			UserID:        users[1].ID,
			StartTime:     tomorrow.Add(3 * time.Hour),
			EndTime:       tomorrow.Add(4 * time.Hour),
			TotalPrice:    50000,
			Status:        domain.BookingPending,
			PaymentStatus: domain.PaymentPending,
		},
	}
	for i := range bookings {
		db.Create(&bookings[i])
	}

	log.Println("Seed complete.")
}
