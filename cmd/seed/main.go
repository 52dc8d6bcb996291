package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/bryerblack/projeto-principios-dev-web/internal/database"
	"github.com/bryerblack/projeto-principios-dev-web/internal/domain"
	"github.com/bryerblack/projeto-principios-dev-web/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "coworking.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM ratings")
	db.Exec("DELETE FROM rent_schedules")
	db.Exec("DELETE FROM rents")
	db.Exec("DELETE FROM equipments")
	db.Exec("DELETE FROM places")
	db.Exec("DELETE FROM addresses")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	places := repository.NewPlaceRepository(db)
	equipments := repository.NewEquipmentRepository(db)
	rents := repository.NewRentRepository(db)
	ratings := repository.NewRatingRepository(db)

	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("Admin@123"), bcrypt.DefaultCost)
	admin := &domain.User{
		Name:         "Administrador",
		Email:        "admin@coworking.com.br",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatal("seed admin:", err)
	}

	ownerHash, _ := bcrypt.GenerateFromPassword([]byte("Dono@123"), bcrypt.DefaultCost)
	owner := &domain.User{
		Name:         "Mariana Costa",
		Email:        "mariana@coworking.com.br",
		PasswordHash: string(ownerHash),
		Phone:        "+55 81 99999-0001",
		Profession:   "Arquiteta",
		Role:         domain.RoleUser,
	}
	if err := users.Create(ctx, owner); err != nil {
		log.Fatal("seed owner:", err)
	}

	renterHash, _ := bcrypt.GenerateFromPassword([]byte("Locatario@123"), bcrypt.DefaultCost)
	renter := &domain.User{
		Name:         "Pedro Lima",
		Email:        "pedro@coworking.com.br",
		PasswordHash: string(renterHash),
		Phone:        "+55 81 99999-0002",
		Profession:   "Desenvolvedor",
		Role:         domain.RoleUser,
	}
	if err := users.Create(ctx, renter); err != nil {
		log.Fatal("seed renter:", err)
	}

	log.Println("Creating places...")

	address := &domain.Address{
		Cep:    "50030-230",
		Pais:   "Brasil",
		Estado: "PE",
		Cidade: "Recife",
		Bairro: "Recife Antigo",
		Rua:    "Av. Rio Branco",
		Numero: "155",
	}
	sala := &domain.Place{
		Name:         "Sala Mar Aberto",
		Description:  "Sala de reunião com vista para o porto",
		PricePerHour: 60,
		OwnerID:      owner.ID,
		Availability: []domain.Availability{
			{Day: "segunda", AvailableTurns: []domain.Turn{domain.TurnManha, domain.TurnTarde}},
			{Day: "quarta", AvailableTurns: []domain.Turn{domain.TurnTarde, domain.TurnNoite}},
		},
	}
	if err := places.CreateWithAddress(ctx, address, sala); err != nil {
		log.Fatal("seed place:", err)
	}

	for _, name := range []string{"Projetor", "Quadro branco", "Cafeteira"} {
		if err := equipments.Create(ctx, &domain.Equipment{
			PlaceID: sala.ID,
			Name:    name,
		}); err != nil {
			log.Fatal("seed equipment:", err)
		}
	}

	log.Println("Creating rents...")

	start := time.Now().AddDate(0, 0, 7).Truncate(time.Hour)
	rt := &domain.Rent{
		PlaceID:       sala.ID,
		OwnerID:       owner.ID,
		RenterID:      renter.ID,
		TotalValue:    120,
		Status:        domain.RentConfirmado,
		PaymentMethod: "pix",
		Schedules: []domain.RentSchedule{
			{StartDate: start, EndDate: start.Add(2 * time.Hour)},
		},
	}
	if err := rents.Create(ctx, rt); err != nil {
		log.Fatal("seed rent:", err)
	}

	log.Println("Creating ratings...")

	if err := ratings.CreateForPlace(ctx, &domain.Rating{
		ReviewerID:  renter.ID,
		ReviewedID:  sala.ID,
		RentID:      rt.ID,
		Rating:      5,
		Description: "Espaço impecável, internet rápida.",
	}); err != nil {
		log.Fatal("seed place rating:", err)
	}
	if err := ratings.CreateForUser(ctx, &domain.Rating{
		ReviewerID:  owner.ID,
		ReviewedID:  renter.ID,
		RentID:      rt.ID,
		Rating:      4.5,
		Description: "Locatário pontual e cuidadoso.",
	}); err != nil {
		log.Fatal("seed user rating:", err)
	}

	log.Println("Seed completed!")
	log.Println("Admin: admin@coworking.com.br / Admin@123")
	log.Println("Owner: mariana@coworking.com.br / Dono@123")
	log.Println("Renter: pedro@coworking.com.br / Locatario@123")
}
